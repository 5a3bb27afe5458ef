package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bloodlink/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushEnvelope
	var traceHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceHeader = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &service.RequestCreatedEvent{
		TraceID: "trace-1",
		EventID: "evt-1",
		Request: service.RequestSnapshot{RequestID: "r1", BloodType: "O+", Units: 2},
	}

	require.NoError(t, publisher.PublishRequestCreated(context.Background(), event))

	assert.Equal(t, "trace-1", traceHeader)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, EventTypeRequestCreated, received.Message.Attributes["event_type"])
	assert.Equal(t, "r1", received.Message.Attributes["blood_request_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.RequestCreatedEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_FailsOnWorkerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishRequestCreated(context.Background(), &service.RequestCreatedEvent{EventID: "evt-1"})
	assert.Error(t, err)
}
