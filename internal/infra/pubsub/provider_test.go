package pubsub

import (
	"context"
	"testing"

	"bloodlink/config"
	"bloodlink/internal/domain/constants"
	"bloodlink/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
		check   func(t *testing.T, publisher service.EventPublisher)
	}{
		{
			name: "nil config drops events",
			cfg:  nil,
			check: func(t *testing.T, publisher service.EventPublisher) {
				assert.IsType(t, &noopPublisher{}, publisher)
			},
		},
		{
			name: "empty provider drops events",
			cfg:  &config.PubSubConfig{},
			check: func(t *testing.T, publisher service.EventPublisher) {
				assert.IsType(t, &noopPublisher{}, publisher)
			},
		},
		{
			name: "local provider",
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"},
			check: func(t *testing.T, publisher service.EventPublisher) {
				local, ok := publisher.(*localHTTPPublisher)
				require.True(t, ok)
				assert.Equal(t, "http://localhost:8081/push", local.endpoint)
			},
		},
		{
			name:    "local provider without endpoint",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			wantErr: "pubsub.localEndpoint is required",
		},
		{
			name:    "google provider without topic",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"},
			wantErr: "pubsub.projectId and pubsub.topicId are required",
		},
		{
			name:    "unknown provider",
			cfg:     &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider: kafka",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newPublisher(context.Background(), tt.cfg, newDiscardLogger())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			tt.check(t, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}

func TestNoopPublisher_DropsEvent(t *testing.T) {
	publisher := &noopPublisher{logger: newDiscardLogger()}

	err := publisher.PublishRequestCreated(context.Background(), &service.RequestCreatedEvent{EventID: "evt-1"})
	assert.NoError(t, err)
}

func TestEncodeRequestCreated_Attributes(t *testing.T) {
	event := &service.RequestCreatedEvent{
		EventID: "evt-1",
		Request: service.RequestSnapshot{RequestID: "r1", BloodType: "A-"},
	}

	encoded, err := encodeRequestCreated(event)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"event_type":       EventTypeRequestCreated,
		"event_id":         "evt-1",
		"blood_request_id": "r1",
		"blood_type":       "A-",
	}, encoded.attributes)
	assert.NotEmpty(t, encoded.data)

	event.TraceID = "trace-1"
	encoded, err = encodeRequestCreated(event)
	require.NoError(t, err)
	assert.Equal(t, "trace-1", encoded.attributes["request_id"])
}
