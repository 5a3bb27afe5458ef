package impl

import (
	"context"
	"log/slog"

	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/usecase"

	"github.com/pkg/errors"
)

const msgMessageSent = "Message sent successfully."

type messageService struct {
	profileRepo repository.ProfileRepository
	requestRepo repository.RequestRepository
	messageRepo repository.MessageRepository
	logger      *slog.Logger
}

// NewMessageService creates the request conversation service.
func NewMessageService(
	profileRepo repository.ProfileRepository,
	requestRepo repository.RequestRepository,
	messageRepo repository.MessageRepository,
	logger *slog.Logger,
) usecase.MessageUsecase {
	return &messageService{
		profileRepo: profileRepo,
		requestRepo: requestRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// SendMessage appends a broadcast or targeted message to a request.
func (srv *messageService) SendMessage(ctx context.Context, caller *entity.Caller, input *usecase.SendMessageInput) (*usecase.SendMessageOutput, error) {
	uid, err := requireCaller(caller)
	if err != nil {
		return nil, err
	}
	if input == nil {
		input = &usecase.SendMessageInput{}
	}

	requestID, err := documentID(input.RequestID, "requestId")
	if err != nil {
		return nil, err
	}
	text, err := requiredString(input.Text, "text")
	if err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, domainerrors.ToAppError(err, "Failed to send message.")
	}

	exists, err := srv.requestRepo.Exists(ctx, requestID)
	if err != nil {
		return nil, domainerrors.ToAppError(err, "Failed to send message.")
	}
	if !exists {
		return nil, domainerrors.ErrRequestNotFound
	}

	message := &entity.Message{
		RequestID:     requestID,
		Text:          text,
		SenderID:      uid,
		SenderRole:    senderRole(profile),
		RecipientID:   optionalString(input.RecipientID),
		SchemaVersion: entity.MessageSchemaVersion,
	}

	messageID, err := srv.messageRepo.Add(ctx, message)
	if err != nil {
		return nil, domainerrors.ToAppError(err, "Failed to send message.")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Message stored",
		slog.String("blood_request_id", requestID),
		slog.String("message_id", messageID),
		slog.Bool("targeted", !message.IsBroadcast()),
	)

	return &usecase.SendMessageOutput{OK: true, Message: msgMessageSent, MessageID: messageID}, nil
}

// GetMessages returns the request messages visible to the caller, newest first.
func (srv *messageService) GetMessages(ctx context.Context, caller *entity.Caller, input *usecase.GetMessagesInput) (*usecase.MessageListOutput, error) {
	uid, err := requireCaller(caller)
	if err != nil {
		return nil, err
	}
	if input == nil {
		input = &usecase.GetMessagesInput{}
	}

	requestID, err := documentID(input.RequestID, "requestId")
	if err != nil {
		return nil, err
	}

	request, err := srv.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, domainerrors.ToAppError(err, "Failed to load messages.")
	}

	if _, err := srv.profileRepo.FindByID(ctx, uid); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, domainerrors.ToAppError(err, "Failed to load messages.")
	}

	messages, err := srv.messageRepo.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, domainerrors.ToAppError(err, "Failed to load messages.")
	}

	reader := entity.MessageReader{
		ID:        uid,
		IsOwner:   request.IsOwnedBy(uid),
		PartnerID: optionalString(input.FilterRecipientID),
	}
	visible := toMessageOutputs(entity.VisibleMessages(messages, reader))

	return &usecase.MessageListOutput{Messages: visible, Count: len(visible)}, nil
}

// senderRole is the profile role, or donor when the profile has none.
func senderRole(profile *entity.Profile) entity.Role {
	if profile.Role.IsValid() {
		return profile.Role
	}

	return entity.RoleDonor
}
