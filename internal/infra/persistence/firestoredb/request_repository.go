package firestoredb

import (
	"context"
	"time"

	"bloodlink/internal/domain/constants"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/errors"
	"bloodlink/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	client *firestore.Client
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(client *firestore.Client) repository.RequestRepository {
	return &requestRepository{
		client: client,
	}
}

func (repo *requestRepository) requests() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionRequests)
}

// Create writes the request with a pending fan-out record.
func (repo *requestRepository) Create(ctx context.Context, request *entity.BloodRequest) error {
	requestM := fromRequestDomain(request)
	requestM.Fanout = &model.FanoutModel{State: string(entity.FanoutPending)}

	if _, err := repo.requests().Doc(request.ID).Set(ctx, requestM); err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	request.Fanout = &entity.FanoutRecord{State: entity.FanoutPending}

	return nil
}

// FindByID retrieves a request.
func (repo *requestRepository) FindByID(ctx context.Context, id string) (*entity.BloodRequest, error) {
	snap, err := repo.requests().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request")
	}

	return decodeRequest(snap)
}

// Exists reports whether a request document exists.
func (repo *requestRepository) Exists(ctx context.Context, id string) (bool, error) {
	snap, err := repo.requests().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check request")
	}

	return snap.Exists(), nil
}

// List returns one page of requests, newest first.
func (repo *requestRepository) List(ctx context.Context, page entity.RequestPage) ([]*entity.BloodRequest, error) {
	q := repo.requests().OrderBy("createdAt", firestore.Desc).Limit(page.Limit)

	if page.AfterID != "" {
		cursor, err := repo.requests().Doc(page.AfterID).Get(ctx)
		switch {
		case err == nil && cursor.Exists():
			q = q.StartAfter(cursor)
		case err != nil && !isNotFound(err):
			return nil, errors.Wrap(err, "failed to read request cursor")
		}
	}

	return repo.collect(ctx, q, "failed to list requests")
}

// ListByOwner returns every request of one hospital, newest first.
func (repo *requestRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.BloodRequest, error) {
	q := repo.requests().
		Where("bloodBankId", "==", ownerID).
		OrderBy("createdAt", firestore.Desc)

	return repo.collect(ctx, q, "failed to list requests by owner")
}

// Delete removes the request document only.
func (repo *requestRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.requests().Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete request")
	}

	return nil
}

// ClaimFanout transactionally takes ownership of the request's fan-out for claimant.
func (repo *requestRepository) ClaimFanout(
	ctx context.Context,
	id, claimant string,
	lease time.Duration,
	now time.Time,
) (*entity.FanoutClaim, error) {
	ref := repo.requests().Doc(id)

	var claim *entity.FanoutClaim

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return repository.ErrRequestNotFound
			}

			return errors.Wrap(err, "failed to read request")
		}

		var requestM model.RequestModel
		if err := snap.DataTo(&requestM); err != nil {
			return errors.Wrap(err, "failed to decode request")
		}

		claim = decideClaim(requestM.Fanout, lease, now)
		if !claim.Acquired {
			return nil
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "fanout.state", Value: string(entity.FanoutClaimed)},
			{Path: "fanout.claimedBy", Value: claimant},
			{Path: "fanout.claimedAt", Value: now},
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to claim fan-out")
	}

	return claim, nil
}

// ReleaseFanout returns a claim held by claimant to the pending state.
func (repo *requestRepository) ReleaseFanout(ctx context.Context, id, claimant string) error {
	ref := repo.requests().Doc(id)

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return nil
			}

			return errors.Wrap(err, "failed to read request")
		}

		var requestM model.RequestModel
		if err := snap.DataTo(&requestM); err != nil {
			return errors.Wrap(err, "failed to decode request")
		}
		if !holdsClaim(requestM.Fanout, claimant) {
			return nil
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "fanout.state", Value: string(entity.FanoutPending)},
			{Path: "fanout.claimedBy", Value: firestore.Delete},
			{Path: "fanout.claimedAt", Value: firestore.Delete},
		})
	})
	if err != nil {
		return errors.Wrap(err, "failed to release fan-out")
	}

	return nil
}

// CompleteFanout marks the fan-out completed if claimant still holds the claim.
func (repo *requestRepository) CompleteFanout(ctx context.Context, id, claimant string, at time.Time) error {
	ref := repo.requests().Doc(id)

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return repository.ErrRequestNotFound
			}

			return errors.Wrap(err, "failed to read request")
		}

		var requestM model.RequestModel
		if err := snap.DataTo(&requestM); err != nil {
			return errors.Wrap(err, "failed to decode request")
		}
		if !holdsClaim(requestM.Fanout, claimant) {
			return nil
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "fanout.state", Value: string(entity.FanoutCompleted)},
			{Path: "fanout.completedAt", Value: at},
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return repository.ErrRequestNotFound
		}

		return errors.Wrap(err, "failed to complete fan-out")
	}

	return nil
}

func (repo *requestRepository) collect(ctx context.Context, q firestore.Query, failure string) ([]*entity.BloodRequest, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	requests := make([]*entity.BloodRequest, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, failure)
		}

		request, err := decodeRequest(snap)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}

// decideClaim applies the fan-out claim rules to the stored record.
// Requests without a record predate fan-out tracking and are claimable.
func decideClaim(record *model.FanoutModel, lease time.Duration, now time.Time) *entity.FanoutClaim {
	if record == nil || record.State == "" {
		return &entity.FanoutClaim{Acquired: true}
	}

	previous := entity.FanoutState(record.State)
	switch previous {
	case entity.FanoutPending:
		return &entity.FanoutClaim{Acquired: true, Previous: previous}
	case entity.FanoutClaimed:
		stale := record.ClaimedAt == nil || now.Sub(*record.ClaimedAt) >= lease

		return &entity.FanoutClaim{Acquired: stale, Previous: previous}
	default:
		return &entity.FanoutClaim{Acquired: false, Previous: previous}
	}
}

func holdsClaim(record *model.FanoutModel, claimant string) bool {
	return record != nil && record.State == string(entity.FanoutClaimed) && record.ClaimedBy == claimant
}

// --- Mapper Functions ---

func decodeRequest(snap *firestore.DocumentSnapshot) (*entity.BloodRequest, error) {
	var requestM model.RequestModel
	if err := snap.DataTo(&requestM); err != nil {
		return nil, errors.Wrapf(err, "failed to decode request %s", snap.Ref.ID)
	}

	return toRequestDomain(snap.Ref.ID, &requestM), nil
}

// toRequestDomain converts a RequestModel to a domain BloodRequest entity.
func toRequestDomain(id string, data *model.RequestModel) *entity.BloodRequest {
	request := &entity.BloodRequest{
		ID:               id,
		BloodBankID:      data.BloodBankID,
		BloodBankName:    data.BloodBankName,
		BloodType:        entity.BloodType(data.BloodType),
		Units:            data.Units,
		IsUrgent:         data.IsUrgent,
		Details:          data.Details,
		HospitalLocation: data.HospitalLocation,
	}
	if !data.CreatedAt.IsZero() {
		createdAt := data.CreatedAt
		request.CreatedAt = &createdAt
	}
	if data.Fanout != nil {
		request.Fanout = &entity.FanoutRecord{
			State:       entity.FanoutState(data.Fanout.State),
			ClaimedBy:   data.Fanout.ClaimedBy,
			ClaimedAt:   data.Fanout.ClaimedAt,
			CompletedAt: data.Fanout.CompletedAt,
		}
	}

	return request
}

// fromRequestDomain converts a domain BloodRequest entity to a RequestModel.
// A nil creation time is filled in by the server.
func fromRequestDomain(data *entity.BloodRequest) *model.RequestModel {
	requestM := &model.RequestModel{
		BloodBankID:      data.BloodBankID,
		BloodBankName:    data.BloodBankName,
		BloodType:        data.BloodType.String(),
		Units:            data.Units,
		IsUrgent:         data.IsUrgent,
		Details:          data.Details,
		HospitalLocation: data.HospitalLocation,
	}
	if data.CreatedAt != nil {
		requestM.CreatedAt = *data.CreatedAt
	}

	return requestM
}
