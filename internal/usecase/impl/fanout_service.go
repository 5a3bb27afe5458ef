package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"bloodlink/config"
	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/constants"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/usecase"
	"bloodlink/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultBloodBankName = "Blood Bank"
	pushTitleUrgent      = "Urgent blood request"
	pushTitleRegular     = "New blood request"
	pushDataTypeRequest  = "request"
)

// Skip reasons reported by the dispatcher.
const (
	skipAlreadyCompleted = "already completed"
	skipClaimHeld        = "claimed by another run"
	skipClaimFailed      = "claim failed"
	skipMatchFailed      = "donor match failed"
	skipRequestGone      = "request no longer exists"
	skipNoBloodType      = "request has no known blood type"
)

type fanoutService struct {
	fanoutCfg        *config.FanoutConfig
	donors           usecase.DonorUsecase
	profileRepo      repository.ProfileRepository
	requestRepo      repository.RequestRepository
	messageRepo      repository.MessageRepository
	notificationRepo repository.NotificationRepository
	push             service.PushService
	logger           *slog.Logger
	now              func() time.Time
	newClaimant      func(trigger usecase.FanoutTrigger) string
}

// FanoutServiceParams holds dependencies for FanoutService, injected by Fx.
type FanoutServiceParams struct {
	fx.In

	Config           *config.Config
	Donors           usecase.DonorUsecase
	ProfileRepo      repository.ProfileRepository
	RequestRepo      repository.RequestRepository
	MessageRepo      repository.MessageRepository
	NotificationRepo repository.NotificationRepository
	Push             service.PushService
	Logger           *slog.Logger
}

// NewFanoutService creates the donor fan-out dispatcher.
func NewFanoutService(params FanoutServiceParams) usecase.FanoutUsecase {
	fanoutCfg := params.Config.Fanout
	if fanoutCfg == nil {
		fanoutCfg = &config.FanoutConfig{MatchBloodType: true, ActiveOnly: true}
	}

	return &fanoutService{
		fanoutCfg:        fanoutCfg,
		donors:           params.Donors,
		profileRepo:      params.ProfileRepo,
		requestRepo:      params.RequestRepo,
		messageRepo:      params.MessageRepo,
		notificationRepo: params.NotificationRepo,
		push:             params.Push,
		logger:           params.Logger,
		now:              time.Now,
		newClaimant: func(trigger usecase.FanoutTrigger) string {
			return string(trigger) + "/" + uuid.NewString()
		},
	}
}

func (srv *fanoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dispatch claims the request's fan-out, writes the per-donor records and pushes to the donors' devices.
func (srv *fanoutService) Dispatch(ctx context.Context, request *entity.BloodRequest, trigger usecase.FanoutTrigger) *usecase.FanoutReport {
	report := &usecase.FanoutReport{RequestID: request.ID, Trigger: trigger}
	logger := srv.log(ctx).With(
		slog.String("blood_request_id", request.ID),
		slog.String("trigger", string(trigger)),
	)

	if srv.fanoutCfg.MatchBloodType && !request.BloodType.IsValid() {
		logger.Warn("Fan-out skipped, blood type missing or unknown",
			slog.String("blood_type", request.BloodType.String()),
		)
		report.Skipped, report.SkipReason = true, skipNoBloodType

		return report
	}

	claimant := srv.newClaimant(trigger)
	claim, err := srv.requestRepo.ClaimFanout(ctx, request.ID, claimant, srv.fanoutCfg.ClaimLease, srv.now())
	if errors.Is(err, repository.ErrRequestNotFound) {
		logger.Info("Fan-out skipped, request deleted before delivery")
		report.Skipped, report.SkipReason = true, skipRequestGone

		return report
	}
	if err != nil {
		logger.Error("Failed to claim fan-out", slog.Any("error", err))
		report.Skipped, report.SkipReason, report.Retryable = true, skipClaimFailed, true

		return report
	}
	if !claim.Acquired {
		report.Skipped = true
		if claim.Previous == entity.FanoutCompleted {
			report.SkipReason = skipAlreadyCompleted
		} else {
			// A live claim either completes or expires, so the delivery comes back later.
			report.SkipReason, report.Retryable = skipClaimHeld, true
		}
		logger.Info("Fan-out skipped", slog.String("reason", report.SkipReason))

		return report
	}

	donors, err := srv.donors.MatchDonors(ctx, srv.criteriaFor(request))
	if err != nil {
		logger.Error("Failed to match donors", slog.Any("error", err))
		if releaseErr := srv.requestRepo.ReleaseFanout(ctx, request.ID, claimant); releaseErr != nil {
			logger.Warn("Failed to release fan-out claim", slog.Any("error", releaseErr))
		}
		report.Skipped, report.SkipReason, report.Retryable = true, skipMatchFailed, true

		return report
	}
	report.DonorsMatched = len(donors)

	if len(donors) > 0 {
		srv.writeRecords(ctx, logger, request, donors, report)
		srv.pushToDonors(ctx, logger, request, donors, report)
	}

	// Failed batches leave the claim in place until the lease expires; the redelivery then re-runs.
	report.Retryable = report.BatchFailures > 0
	if report.BatchFailures == 0 {
		if err := srv.requestRepo.CompleteFanout(ctx, request.ID, claimant, srv.now()); err != nil {
			logger.Error("Failed to mark fan-out completed", slog.Any("error", err))
		} else {
			report.Completed = true
		}
	}

	logger.Info("Fan-out finished",
		slog.Int("donors", report.DonorsMatched),
		slog.Int("notifications", report.NotificationsWritten),
		slog.Int("messages", report.MessagesWritten),
		slog.Bool("messages_suppressed", report.MessagesSuppressed),
		slog.Int("batch_failures", report.BatchFailures),
		slog.Int("tokens", report.TokensTargeted),
		slog.Int("push_sent", report.PushSent),
		slog.Int("push_failed", report.PushFailed),
		slog.Int("tokens_pruned", report.TokensPruned),
		slog.Bool("completed", report.Completed),
		slog.Bool("retryable", report.Retryable),
	)

	return report
}

func (srv *fanoutService) criteriaFor(request *entity.BloodRequest) usecase.DonorCriteria {
	criteria := usecase.DonorCriteria{ActiveOnly: srv.fanoutCfg.ActiveOnly}
	if srv.fanoutCfg.MatchBloodType {
		criteria.BloodType = request.BloodType
	}

	return criteria
}

// writeRecords commits one notification and one targeted message per donor in concurrent batches.
// Committed batches are kept when others fail.
func (srv *fanoutService) writeRecords(
	ctx context.Context,
	logger *slog.Logger,
	request *entity.BloodRequest,
	donors []*entity.Profile,
	report *usecase.FanoutReport,
) {
	suppress, err := srv.messageRepo.HasTargeted(ctx, request.ID)
	if err != nil {
		logger.Warn("Targeted message probe failed, writing messages", slog.Any("error", err))
		suppress = false
	}
	report.MessagesSuppressed = suppress

	notifications := make([]*entity.Notification, 0, len(donors))
	messages := make([]*entity.Message, 0, len(donors))
	for _, donor := range donors {
		body := donationBody(donor)
		notifications = append(notifications, newRequestNotification(request, donor.UID, body))
		if !suppress {
			messages = append(messages, newTargetedMessage(request, donor.UID, body))
		}
	}

	var (
		notificationsWritten atomic.Int64
		messagesWritten      atomic.Int64
		failures             atomic.Int64
	)

	g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
	for i, batch := range util.Chunk(notifications, constants.MaxBatchWrites) {
		g.Go(func() error {
			if err := srv.notificationRepo.CommitBatch(gctx, batch); err != nil {
				failures.Add(1)
				logger.Error("Notification batch failed",
					slog.Int("batch", i),
					slog.Int("size", len(batch)),
					slog.Any("error", err),
				)

				return nil
			}
			notificationsWritten.Add(int64(len(batch)))

			return nil
		})
	}
	for i, batch := range util.Chunk(messages, constants.MaxBatchWrites) {
		g.Go(func() error {
			if err := srv.messageRepo.CommitBatch(gctx, batch); err != nil {
				failures.Add(1)
				logger.Error("Message batch failed",
					slog.Int("batch", i),
					slog.Int("size", len(batch)),
					slog.Any("error", err),
				)

				return nil
			}
			messagesWritten.Add(int64(len(batch)))

			return nil
		})
	}
	_ = g.Wait()

	report.NotificationsWritten = int(notificationsWritten.Load())
	report.MessagesWritten = int(messagesWritten.Load())
	report.BatchFailures = int(failures.Load())
}

// pushToDonors sends the request alert to every distinct donor token, one chunk at a time.
func (srv *fanoutService) pushToDonors(
	ctx context.Context,
	logger *slog.Logger,
	request *entity.BloodRequest,
	donors []*entity.Profile,
	report *usecase.FanoutReport,
) {
	raw := make([]string, 0, len(donors))
	for _, donor := range donors {
		raw = append(raw, donor.FCMToken)
	}
	tokens := util.UniqueNonEmpty(raw)
	report.TokensTargeted = len(tokens)
	if len(tokens) == 0 {
		return
	}

	msg := newRequestPush(request)

	var invalid []string
	for i, chunk := range util.Chunk(tokens, constants.MaxMulticastTokens) {
		result, err := srv.push.SendMulticast(ctx, chunk, msg)
		if err != nil {
			logger.Warn("Multicast failed, sending individually",
				slog.Int("chunk", i),
				slog.Int("size", len(chunk)),
				slog.Any("error", err),
			)
			result = srv.sendIndividually(ctx, chunk, msg)
		}

		report.PushSent += result.SuccessCount
		report.PushFailed += result.FailureCount
		for _, failure := range result.Failures {
			logger.Warn("Push delivery failed",
				slog.String("token", maskToken(failure.Token)),
				slog.Bool("invalid", failure.Invalid),
				slog.Any("error", failure.Err),
			)
		}
		invalid = append(invalid, result.InvalidTokens()...)
	}

	if !srv.fanoutCfg.PruneInvalidTokens || len(invalid) == 0 {
		return
	}

	pruned, err := srv.profileRepo.ClearFCMTokens(ctx, invalid)
	if err != nil {
		logger.Warn("Failed to prune invalid push tokens", slog.Any("error", err))
	}
	report.TokensPruned = pruned
}

func (srv *fanoutService) sendIndividually(ctx context.Context, tokens []string, msg *service.PushMessage) *service.PushResult {
	result := &service.PushResult{}
	for _, token := range tokens {
		if err := srv.push.Send(ctx, token, msg); err != nil {
			result.FailureCount++
			result.Failures = append(result.Failures, service.PushFailure{
				Token:   token,
				Err:     err,
				Invalid: errors.Is(err, service.ErrInvalidPushToken),
			})

			continue
		}
		result.SuccessCount++
	}

	return result
}

func donationBody(donor *entity.Profile) string {
	return fmt.Sprintf("Please %s donate as soon as possible ❤️", donor.DisplayName())
}

func newRequestNotification(request *entity.BloodRequest, uid, body string) *entity.Notification {
	requestID := request.ID
	urgent := request.IsUrgent

	return &entity.Notification{
		UserID:        uid,
		Title:         "Blood request: " + string(request.BloodType),
		Body:          body,
		RequestID:     &requestID,
		BloodType:     request.BloodType,
		BloodBankName: request.BloodBankName,
		IsUrgent:      &urgent,
		SchemaVersion: entity.NotificationSchemaVersion,
	}
}

func newTargetedMessage(request *entity.BloodRequest, uid, body string) *entity.Message {
	return &entity.Message{
		RequestID:     request.ID,
		Text:          body,
		SenderID:      request.BloodBankID,
		SenderRole:    entity.RoleHospital,
		RecipientID:   uid,
		SchemaVersion: entity.MessageSchemaVersion,
	}
}

func newRequestPush(request *entity.BloodRequest) *service.PushMessage {
	title := pushTitleRegular
	if request.IsUrgent {
		title = pushTitleUrgent
	}

	bank := request.BloodBankName
	if bank == "" {
		bank = defaultBloodBankName
	}
	body := fmt.Sprintf("%s needs %d units (%s)", bank, request.Units, request.BloodType)

	return &service.PushMessage{
		Title: title,
		Body:  body,
		Data: map[string]string{
			"type":      pushDataTypeRequest,
			"requestId": request.ID,
			"bloodType": string(request.BloodType),
			"isUrgent":  strconv.FormatBool(request.IsUrgent),
			"title":     title,
			"body":      body,
		},
		HighPriority: true,
	}
}

// maskToken keeps device tokens out of logs.
func maskToken(token string) string {
	if len(token) <= 8 {
		return "***"
	}

	return token[:4] + "..." + token[len(token)-4:]
}
