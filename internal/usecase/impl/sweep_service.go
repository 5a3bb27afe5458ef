package impl

import (
	"context"
	"log/slog"
	"time"

	"bloodlink/config"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/usecase"
	"bloodlink/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountPageSize is the number of identity accounts fetched per page.
const accountPageSize = 1000

type sweepService struct {
	retention        time.Duration
	identity         service.IdentityDirectory
	profileRepo      repository.ProfileRepository
	messageRepo      repository.MessageRepository
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
	now              func() time.Time
}

// SweepServiceParams holds dependencies for SweepService, injected by Fx.
type SweepServiceParams struct {
	fx.In

	Config           *config.Config
	Identity         service.IdentityDirectory
	ProfileRepo      repository.ProfileRepository
	MessageRepo      repository.MessageRepository
	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewSweepService creates the scheduled cleanup jobs.
func NewSweepService(params SweepServiceParams) usecase.SweepUsecase {
	retention := 48 * time.Hour
	if params.Config.Sweeps != nil && params.Config.Sweeps.UnverifiedRetention > 0 {
		retention = params.Config.Sweeps.UnverifiedRetention
	}

	return &sweepService{
		retention:        retention,
		identity:         params.Identity,
		profileRepo:      params.ProfileRepo,
		messageRepo:      params.MessageRepo,
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// CleanupUnverifiedAccounts deletes the profile data and account of users that did not verify
// their email within the retention window.
func (srv *sweepService) CleanupUnverifiedAccounts(ctx context.Context) (*usecase.SweepReport, error) {
	start := srv.now()
	report := &usecase.SweepReport{Name: usecase.SweepUnverifiedAccounts}
	cutoff := start.Add(-srv.retention)

	pageToken := ""
	for {
		page, err := srv.identity.ListAccounts(ctx, accountPageSize, pageToken)
		if err != nil {
			return srv.finish(report, start), errors.Wrap(err, "failed to list accounts")
		}

		for _, account := range page.Accounts {
			report.Scanned++
			if account.EmailVerified || account.CreatedAt.IsZero() || !account.CreatedAt.Before(cutoff) {
				continue
			}

			if err := srv.deleteAccount(ctx, account.UID); err != nil {
				report.Failed++
				srv.logger.WarnContext(ctx, "Failed to delete unverified account",
					slog.String("uid", account.UID),
					slog.Any("error", err),
				)

				continue
			}
			report.Deleted++
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	srv.logger.InfoContext(ctx, "Unverified account sweep finished",
		slog.Int("scanned", report.Scanned),
		slog.Int("deleted", report.Deleted),
		slog.Int("failed", report.Failed),
		slog.Float64("retention_days", srv.retention.Hours()/24),
	)

	return srv.finish(report, start), nil
}

func (srv *sweepService) deleteAccount(ctx context.Context, uid string) error {
	if err := srv.profileRepo.DeleteAccountData(ctx, uid); err != nil {
		return errors.Wrap(err, "failed to delete profile data")
	}
	if err := srv.identity.DeleteAccount(ctx, uid); err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	return nil
}

// CleanupOrphanMessages deletes the messages stored under requests that no longer exist.
func (srv *sweepService) CleanupOrphanMessages(ctx context.Context) (*usecase.SweepReport, error) {
	start := srv.now()
	report := &usecase.SweepReport{Name: usecase.SweepOrphanMessages}

	requestIDs, err := srv.messageRepo.ListOrphanedRequestIDs(ctx)
	if err != nil {
		return srv.finish(report, start), errors.Wrap(err, "failed to list orphaned message owners")
	}

	for _, requestID := range requestIDs {
		report.Scanned++
		deleted, err := srv.messageRepo.DeleteByRequest(ctx, requestID)
		report.Deleted += deleted
		if err != nil {
			report.Failed++
			srv.logger.WarnContext(ctx, "Failed to delete orphaned messages",
				slog.String("blood_request_id", requestID),
				slog.Any("error", err),
			)
		}
	}

	srv.logger.InfoContext(ctx, "Orphan message sweep finished",
		slog.Int("requests", report.Scanned),
		slog.Int("deleted", report.Deleted),
		slog.Int("failed", report.Failed),
	)

	return srv.finish(report, start), nil
}

// CleanupOrphanNotifications deletes the notifications whose request reference is null.
func (srv *sweepService) CleanupOrphanNotifications(ctx context.Context) (*usecase.SweepReport, error) {
	start := srv.now()
	report := &usecase.SweepReport{Name: usecase.SweepOrphanNotifications}

	owners, err := srv.notificationRepo.ListOwnerIDs(ctx)
	if err != nil {
		return srv.finish(report, start), errors.Wrap(err, "failed to list notification owners")
	}

	for _, uid := range owners {
		report.Scanned++
		deleted, err := srv.notificationRepo.DeleteOrphaned(ctx, uid)
		report.Deleted += deleted
		if err != nil {
			report.Failed++
			srv.logger.WarnContext(ctx, "Failed to delete orphaned notifications",
				slog.String("uid", uid),
				slog.Any("error", err),
			)
		}
	}

	srv.logger.InfoContext(ctx, "Orphan notification sweep finished",
		slog.Int("users", report.Scanned),
		slog.Int("deleted", report.Deleted),
		slog.Int("failed", report.Failed),
	)

	return srv.finish(report, start), nil
}

func (srv *sweepService) finish(report *usecase.SweepReport, start time.Time) *usecase.SweepReport {
	report.Duration = srv.now().Sub(start)
	srv.logger.Debug("Sweep took", slog.String("sweep", report.Name), slog.String("duration", util.FormatDuration(report.Duration)))

	return report
}
