package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/geo_incident_sync/internal/config"
	"github.com/shenikar/geo_incident_sync/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(url, secret string) *WebhookWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewWebhookWorker(nil, logger, &config.Config{
		WebhookURL:        url,
		WebhookSecret:     secret,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})
}

func testEvent() WebhookEvent {
	incident := models.Incident{ID: 9, Category: models.CategoryCarAccident, Priority: models.PriorityHigh}
	return NewEvent("user_1", models.Notification{
		ID:        "n1",
		Type:      models.NotificationArea,
		Title:     "Incident Nearby",
		CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}, models.AreaAlert{Incident: incident, Distance: 804.67})
}

func TestProcessWebhookEvent_SignsPayload(t *testing.T) {
	event := testEvent()
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	type delivery struct {
		signature string
		body      []byte
	}
	received := make(chan delivery, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- delivery{signature: r.Header.Get(signatureHeader), body: body}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL, "s3cret")
	assert.True(t, w.processWebhookEvent(context.Background(), event, string(payload)))

	got := <-received
	assert.Equal(t, generateHMACSHA256(string(payload), "s3cret"), got.signature)
	assert.JSONEq(t, string(payload), string(got.body))
}

func TestProcessWebhookEvent_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL, "")
	assert.True(t, w.processWebhookEvent(context.Background(), testEvent(), "{}"))
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessWebhookEvent_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL, "")
	assert.False(t, w.processWebhookEvent(context.Background(), testEvent(), "{}"))
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessWebhookEvent_NoURL(t *testing.T) {
	w := newTestWorker("", "")
	assert.False(t, w.processWebhookEvent(context.Background(), testEvent(), "{}"))
}

func TestNewEvent(t *testing.T) {
	event := testEvent()
	assert.Equal(t, "user_1", event.UserID)
	assert.Equal(t, int64(9), event.Incident.ID)
	assert.Equal(t, 804.67, event.DistanceMeters)
	assert.Equal(t, event.Notification.CreatedAt, event.Timestamp)
}
