package repository

import (
	"context"

	"bloodlink/internal/domain/entity"
)

// MessageRepository defines the persistence operations for request messages.
type MessageRepository interface {
	// Add appends one message to a request and returns its id.
	Add(ctx context.Context, message *entity.Message) (string, error)

	// CommitBatch writes up to constants.MaxBatchWrites messages atomically.
	CommitBatch(ctx context.Context, messages []*entity.Message) error

	// ListByRequest returns every message of a request, newest first.
	ListByRequest(ctx context.Context, requestID string) ([]*entity.Message, error)

	// HasTargeted reports whether at least one message of the request has a recipient.
	HasTargeted(ctx context.Context, requestID string) (bool, error)

	// DeleteByRequest removes every message of a request in bounded batches.
	DeleteByRequest(ctx context.Context, requestID string) (int, error)

	// ListOrphanedRequestIDs returns ids of requests that have messages but no request document.
	ListOrphanedRequestIDs(ctx context.Context) ([]string, error)
}
