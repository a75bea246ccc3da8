package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("API_KEYS", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("API_BASE_URL", "http://localhost:8000/")
	t.Setenv("WS_URL", "ws://localhost:8000/ws")
	t.Setenv("RECONNECT_DELAY", "3s")
	t.Setenv("DEFAULT_RADIUS_MILES", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.ReconnectDelay)
	assert.Equal(t, 3, cfg.DefaultRadiusMiles)
	assert.Nil(t, cfg.APIKeys)
	assert.Nil(t, cfg.KafkaBrokers)
}

func TestLoadConfig_Lists(t *testing.T) {
	t.Setenv("API_KEYS", " key-1, ,key-2 ")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("DEFAULT_RADIUS_MILES", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"key-1", "key-2"}, cfg.APIKeys)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 5, cfg.DefaultRadiusMiles)
}

func TestLoadConfig_RadiusOutOfRange(t *testing.T) {
	t.Setenv("DEFAULT_RADIUS_MILES", "30")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEFAULT_RADIUS_MILES")
}

func TestValidate_MissingWSURL(t *testing.T) {
	cfg := &Config{APIBaseURL: "http://x", DefaultRadiusMiles: 3, TombstoneCapacity: 10}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WS_URL")
}
