package impl

import (
	"context"
	"log/slog"
	"time"

	"bloodlink/config"
	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	msgRequestCreated = "Blood request created."
	msgRequestDeleted = "Request deleted."
)

type requestService struct {
	inlineFanout bool
	profileRepo  repository.ProfileRepository
	requestRepo  repository.RequestRepository
	messageRepo  repository.MessageRepository
	publisher    service.EventPublisher
	fanout       usecase.FanoutUsecase
	qrcode       service.QRCodeService
	purger       *notificationPurger
	logger       *slog.Logger
	now          func() time.Time
}

// RequestServiceParams holds dependencies for RequestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	Config           *config.Config
	ProfileRepo      repository.ProfileRepository
	RequestRepo      repository.RequestRepository
	MessageRepo      repository.MessageRepository
	NotificationRepo repository.NotificationRepository
	Publisher        service.EventPublisher
	Fanout           usecase.FanoutUsecase
	QRCode           service.QRCodeService
	Logger           *slog.Logger
}

// NewRequestService creates the blood request lifecycle service.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		inlineFanout: params.Config.Fanout != nil && params.Config.Fanout.Inline,
		profileRepo:  params.ProfileRepo,
		requestRepo:  params.RequestRepo,
		messageRepo:  params.MessageRepo,
		publisher:    params.Publisher,
		fanout:       params.Fanout,
		qrcode:       params.QRCode,
		purger:       newNotificationPurger(params.NotificationRepo, params.Logger),
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRequest persists a hospital's request, announces it and optionally fans it out inline.
func (srv *requestService) CreateRequest(
	ctx context.Context,
	caller *entity.Caller,
	input *usecase.CreateRequestInput,
) (*usecase.CreateRequestOutput, error) {
	uid, err := requireCaller(caller)
	if err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrHospitalOnlyCreate
		}

		return nil, domainerrors.ToAppError(err, "Failed to create request.")
	}
	if !profile.Role.IsHospital() {
		return nil, domainerrors.ErrHospitalOnlyCreate
	}

	request, err := buildBloodRequest(uid, input)
	if err != nil {
		return nil, err
	}

	if err := srv.requestRepo.Create(ctx, request); err != nil {
		return nil, domainerrors.ToAppError(err, "Failed to create request.")
	}

	srv.log(ctx).Info("Blood request created",
		slog.String("blood_request_id", request.ID),
		slog.String("hospital_id", uid),
		slog.String("blood_type", request.BloodType.String()),
		slog.Int("units", request.Units),
		slog.Bool("urgent", request.IsUrgent),
	)

	srv.announce(ctx, request)

	if srv.inlineFanout {
		// The client may hang up once the request is stored; the claimed run still has to finish.
		srv.fanout.Dispatch(context.WithoutCancel(ctx), request, usecase.FanoutTriggerInline)
	}

	return &usecase.CreateRequestOutput{OK: true, Message: msgRequestCreated, RequestID: request.ID}, nil
}

// announce publishes the request-created event. Failures are logged only.
func (srv *requestService) announce(ctx context.Context, request *entity.BloodRequest) {
	createdAt := srv.now()
	if request.CreatedAt != nil {
		createdAt = *request.CreatedAt
	}

	event := &service.RequestCreatedEvent{
		TraceID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID: uuid.NewString(),
		Request: service.RequestSnapshot{
			RequestID:        request.ID,
			BloodBankID:      request.BloodBankID,
			BloodBankName:    request.BloodBankName,
			BloodType:        request.BloodType.String(),
			Units:            request.Units,
			IsUrgent:         request.IsUrgent,
			Details:          request.Details,
			HospitalLocation: request.HospitalLocation,
			CreatedAtMillis:  createdAt.UnixMilli(),
		},
	}

	if err := srv.publisher.PublishRequestCreated(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish request created event",
			slog.String("blood_request_id", request.ID),
			slog.Any("error", err),
		)
	}
}

func buildBloodRequest(uid string, input *usecase.CreateRequestInput) (*entity.BloodRequest, error) {
	if input == nil {
		input = &usecase.CreateRequestInput{}
	}

	requestID, err := documentID(input.RequestID, "requestId")
	if err != nil {
		return nil, err
	}
	bankName, err := requiredString(input.BloodBankName, "bloodBankName")
	if err != nil {
		return nil, err
	}
	bloodType, err := requiredBloodType(input.BloodType)
	if err != nil {
		return nil, err
	}
	units, err := positiveInt(input.Units, "units")
	if err != nil {
		return nil, err
	}
	location, err := requiredString(input.HospitalLocation, "hospitalLocation")
	if err != nil {
		return nil, err
	}

	return &entity.BloodRequest{
		ID:               requestID,
		BloodBankID:      uid,
		BloodBankName:    bankName,
		BloodType:        bloodType,
		Units:            units,
		IsUrgent:         input.IsUrgent,
		Details:          optionalString(input.Details),
		HospitalLocation: location,
	}, nil
}

// ListRequests returns one page of the request feed, newest first.
func (srv *requestService) ListRequests(
	ctx context.Context,
	caller *entity.Caller,
	input *usecase.ListRequestsInput,
) (*usecase.RequestPageOutput, error) {
	if _, err := requireCaller(caller); err != nil {
		return nil, err
	}
	if input == nil {
		input = &usecase.ListRequestsInput{}
	}

	page := entity.RequestPage{
		Limit:   pageLimit(input.Limit),
		AfterID: optionalString(input.LastRequestID),
	}

	requests, err := srv.requestRepo.List(ctx, page)
	if err != nil {
		return nil, domainerrors.ToAppError(err, "Failed to load requests.")
	}

	return &usecase.RequestPageOutput{
		Requests: toRequestOutputs(requests),
		HasMore:  len(requests) == page.Limit,
	}, nil
}

// pageLimit clamps a requested page size. Values below 1 fall back to the default.
func pageLimit(limit int) int {
	switch {
	case limit < 1:
		return usecase.DefaultRequestPageSize
	case limit > usecase.MaxRequestPageSize:
		return usecase.MaxRequestPageSize
	default:
		return limit
	}
}

// ListOwnRequests returns every request of the calling hospital.
func (srv *requestService) ListOwnRequests(ctx context.Context, caller *entity.Caller) (*usecase.RequestListOutput, error) {
	uid, err := requireCaller(caller)
	if err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, domainerrors.ToAppError(err, "Failed to load requests.")
	}
	if !profile.Role.IsHospital() {
		return nil, domainerrors.ErrHospitalOnlyOwned
	}

	requests, err := srv.requestRepo.ListByOwner(ctx, uid)
	if err != nil {
		return nil, domainerrors.ToAppError(err, "Failed to load requests.")
	}

	outputs := toRequestOutputs(requests)

	return &usecase.RequestListOutput{Requests: outputs, Count: len(outputs)}, nil
}

// DeleteRequest removes a request after its notifications and messages. Cleanup failures are
// logged and do not keep the request document alive.
func (srv *requestService) DeleteRequest(
	ctx context.Context,
	caller *entity.Caller,
	requestID string,
) (*usecase.DeleteRequestOutput, error) {
	request, err := srv.ownedRequest(ctx, caller, requestID, domainerrors.ErrHospitalOnlyDelete, domainerrors.ErrNotRequestOwner, "Failed to delete request.")
	if err != nil {
		return nil, err
	}

	logger := srv.log(ctx).With(slog.String("blood_request_id", request.ID))

	notificationsDeleted, err := srv.purger.Purge(ctx, request.ID)
	if err != nil {
		logger.Error("Failed to purge request notifications", slog.Any("error", err))
	}

	messagesDeleted, err := srv.messageRepo.DeleteByRequest(ctx, request.ID)
	if err != nil {
		logger.Error("Failed to delete request messages", slog.Any("error", err))
	}

	if err := srv.requestRepo.Delete(ctx, request.ID); err != nil {
		return nil, domainerrors.ToAppError(err, "Failed to delete request.")
	}

	logger.Info("Blood request deleted",
		slog.Int("notifications_deleted", notificationsDeleted),
		slog.Int("messages_deleted", messagesDeleted),
	)

	return &usecase.DeleteRequestOutput{
		OK:                   true,
		Message:              msgRequestDeleted,
		NotificationsDeleted: notificationsDeleted,
		MessagesDeleted:      messagesDeleted,
	}, nil
}

// GetRequestQRCode renders the share code of a request owned by the caller.
func (srv *requestService) GetRequestQRCode(ctx context.Context, caller *entity.Caller, requestID string) ([]byte, error) {
	request, err := srv.ownedRequest(ctx, caller, requestID, domainerrors.ErrHospitalOnlyOwned, domainerrors.ErrNotRequestOwnerView, "Failed to load requests.")
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateRequestQR(request.ID)
	if err != nil {
		return nil, domainerrors.ToAppError(err, "Failed to generate request code.")
	}

	return png, nil
}

// ownedRequest loads a request the calling hospital owns.
func (srv *requestService) ownedRequest(
	ctx context.Context,
	caller *entity.Caller,
	requestID string,
	notHospital, notOwner domainerrors.AppError,
	fallback string,
) (*entity.BloodRequest, error) {
	uid, err := requireCaller(caller)
	if err != nil {
		return nil, err
	}
	id, err := documentID(requestID, "requestId")
	if err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, notHospital
		}

		return nil, domainerrors.ToAppError(err, fallback)
	}
	if !profile.Role.IsHospital() {
		return nil, notHospital
	}

	request, err := srv.requestRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, domainerrors.ToAppError(err, fallback)
	}
	if !request.IsOwnedBy(uid) {
		return nil, notOwner
	}

	return request, nil
}
