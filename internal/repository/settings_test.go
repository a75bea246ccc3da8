package repository

import (
	"testing"

	"github.com/shenikar/geo_incident_sync/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlertSettings(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]string
		want    *models.AlertSettings
		wantErr bool
	}{
		{name: "nothing saved", fields: map[string]string{}, want: nil},
		{
			name:   "full",
			fields: map[string]string{"enabled": "true", "radius_miles": "5"},
			want:   &models.AlertSettings{Enabled: true, RadiusMiles: 5},
		},
		{
			name:   "only flag",
			fields: map[string]string{"enabled": "false"},
			want:   &models.AlertSettings{},
		},
		{name: "bad flag", fields: map[string]string{"enabled": "maybe"}, wantErr: true},
		{name: "bad radius", fields: map[string]string{"radius_miles": "far"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAlertSettings(tt.fields)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
