package pubsub

import (
	"encoding/json"

	"bloodlink/internal/domain/service"

	"github.com/pkg/errors"
)

// EventTypeRequestCreated is the event_type attribute of request-created messages.
const EventTypeRequestCreated = "request.created"

// encodedEvent is a request-created event in its wire form: a JSON body plus the attributes
// subscriptions filter on and the worker reads its trace id from.
type encodedEvent struct {
	data       []byte
	attributes map[string]string
}

func encodeRequestCreated(event *service.RequestCreatedEvent) (*encodedEvent, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request created event")
	}

	attributes := map[string]string{
		"event_type":       EventTypeRequestCreated,
		"event_id":         event.EventID,
		"blood_request_id": event.Request.RequestID,
		"blood_type":       event.Request.BloodType,
	}
	if event.TraceID != "" {
		attributes["request_id"] = event.TraceID
	}

	return &encodedEvent{data: data, attributes: attributes}, nil
}
