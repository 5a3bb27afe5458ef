package impl

import (
	"context"
	"log/slog"

	"bloodlink/internal/domain/repository"
	"bloodlink/internal/errors"
)

// purgeStrategy removes every notification referencing a request.
type purgeStrategy interface {
	Name() string
	Purge(ctx context.Context, requestID string) (int, error)
}

// indexedPurge uses the cross-user notification index.
type indexedPurge struct {
	notificationRepo repository.NotificationRepository
}

func (indexedPurge) Name() string { return "indexed" }

func (p indexedPurge) Purge(ctx context.Context, requestID string) (int, error) {
	return p.notificationRepo.DeleteByRequest(ctx, requestID)
}

// ownerScanPurge visits every notification owner in turn. Owners that fail are skipped
// and reported in the joined error.
type ownerScanPurge struct {
	notificationRepo repository.NotificationRepository
}

func (ownerScanPurge) Name() string { return "owner-scan" }

func (p ownerScanPurge) Purge(ctx context.Context, requestID string) (int, error) {
	owners, err := p.notificationRepo.ListOwnerIDs(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list notification owners")
	}

	var (
		deleted int
		errs    []error
	)
	for _, uid := range owners {
		n, err := p.notificationRepo.DeleteByRequestForUser(ctx, uid, requestID)
		deleted += n
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "owner %s", uid))
		}
	}

	return deleted, errors.Join(errs...)
}

// notificationPurger runs its strategies in order, moving to the next one only when the
// current one reports a missing index.
type notificationPurger struct {
	strategies []purgeStrategy
	logger     *slog.Logger
}

func newNotificationPurger(notificationRepo repository.NotificationRepository, logger *slog.Logger) *notificationPurger {
	return &notificationPurger{
		strategies: []purgeStrategy{
			indexedPurge{notificationRepo: notificationRepo},
			ownerScanPurge{notificationRepo: notificationRepo},
		},
		logger: logger,
	}
}

func (p *notificationPurger) Purge(ctx context.Context, requestID string) (int, error) {
	var lastErr error
	for _, strategy := range p.strategies {
		deleted, err := strategy.Purge(ctx, requestID)
		if err == nil {
			return deleted, nil
		}
		if !errors.Is(err, repository.ErrIndexUnavailable) {
			return deleted, errors.Wrapf(err, "%s notification purge", strategy.Name())
		}

		p.logger.WarnContext(ctx, "Notification index unavailable, falling back",
			slog.String("strategy", strategy.Name()),
			slog.String("blood_request_id", requestID),
		)
		lastErr = err
	}

	return 0, lastErr
}
