package service

import (
	"context"
)

// RequestSnapshot is the field snapshot of a newly created blood request.
type RequestSnapshot struct {
	RequestID        string `json:"requestId"`
	BloodBankID      string `json:"bloodBankId"`
	BloodBankName    string `json:"bloodBankName"`
	BloodType        string `json:"bloodType"`
	Units            int    `json:"units"`
	IsUrgent         bool   `json:"isUrgent"`
	Details          string `json:"details,omitempty"`
	HospitalLocation string `json:"hospitalLocation"`
	CreatedAtMillis  int64  `json:"createdAt,omitempty"`
}

// RequestCreatedEvent is published after a blood request document is written
type RequestCreatedEvent struct {
	TraceID string          `json:"trace_id,omitempty"` // For distributed tracing
	EventID string          `json:"event_id"`
	Request RequestSnapshot `json:"request"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRequestCreated publishes a request-created event for async fan-out
	PublishRequestCreated(ctx context.Context, event *RequestCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
