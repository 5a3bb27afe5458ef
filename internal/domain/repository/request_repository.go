package repository

import (
	"context"
	"time"

	"bloodlink/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for request persistence.
var (
	// ErrRequestNotFound is returned when a request document does not exist.
	ErrRequestNotFound = errors.New("request not found")
)

// RequestRepository defines the persistence operations for blood requests.
type RequestRepository interface {
	// Create writes the request with a pending fan-out record. An existing request with the same id is overwritten.
	Create(ctx context.Context, request *entity.BloodRequest) error

	// FindByID retrieves a request.
	FindByID(ctx context.Context, id string) (*entity.BloodRequest, error)

	// Exists reports whether a request document exists.
	Exists(ctx context.Context, id string) (bool, error)

	// List returns one page of requests, newest first.
	List(ctx context.Context, page entity.RequestPage) ([]*entity.BloodRequest, error)

	// ListByOwner returns every request of one hospital, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.BloodRequest, error)

	// Delete removes the request document only.
	Delete(ctx context.Context, id string) error

	// ClaimFanout transactionally takes ownership of the request's fan-out for claimant.
	// Claims older than lease are considered abandoned and may be taken over.
	ClaimFanout(ctx context.Context, id, claimant string, lease time.Duration, now time.Time) (*entity.FanoutClaim, error)

	// ReleaseFanout returns a claim held by claimant to the pending state so another run can take it.
	ReleaseFanout(ctx context.Context, id, claimant string) error

	// CompleteFanout marks the fan-out completed if claimant still holds the claim.
	CompleteFanout(ctx context.Context, id, claimant string, at time.Time) error
}
