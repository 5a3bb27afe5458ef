package notification

import (
	"context"
	"log/slog"

	"bloodlink/internal/domain/constants"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/errors"

	"firebase.google.com/go/v4/messaging"
)

// fcmClient is the subset of *messaging.Client used for delivery.
type fcmClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client fcmClient
	logger *slog.Logger
}

// NewFirebaseService creates the FCM backed push service
func NewFirebaseService(client *messaging.Client, logger *slog.Logger) service.PushService {
	return newFirebaseService(client, logger)
}

func newFirebaseService(client fcmClient, logger *slog.Logger) *firebaseService {
	return &firebaseService{
		client: client,
		logger: logger,
	}
}

// Send delivers the payload to a single device token
func (s *firebaseService) Send(ctx context.Context, token string, msg *service.PushMessage) error {
	message := &messaging.Message{
		Token:   token,
		Data:    payloadData(msg),
		Android: androidConfig(msg),
		APNS:    apnsConfig(msg),
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if isDeadToken(err) {
			return errors.Wrap(service.ErrInvalidPushToken, err.Error())
		}

		return errors.Wrap(err, "failed to send push")
	}

	return nil
}

// SendMulticast sends one data-only payload to up to 500 device tokens
func (s *firebaseService) SendMulticast(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.PushResult, error) {
	if len(tokens) == 0 {
		return &service.PushResult{}, nil
	}

	if len(tokens) > constants.MaxMulticastTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), constants.MaxMulticastTokens)
	}

	message := &messaging.MulticastMessage{
		Tokens:  tokens,
		Data:    payloadData(msg),
		Android: androidConfig(msg),
		APNS:    apnsConfig(msg),
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast push")
	}

	result := &service.PushResult{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
	}

	for idx, sendResponse := range response.Responses {
		if sendResponse == nil || sendResponse.Error == nil || idx >= len(tokens) {
			continue
		}

		result.Failures = append(result.Failures, service.PushFailure{
			Token:   tokens[idx],
			Err:     sendResponse.Error,
			Invalid: isDeadToken(sendResponse.Error),
		})
	}

	s.logger.DebugContext(ctx, "Multicast push sent",
		slog.Int("tokens", len(tokens)),
		slog.Int("success", result.SuccessCount),
		slog.Int("failure", result.FailureCount),
	)

	return result, nil
}

// isDeadToken reports errors that mean the token will never be deliverable.
// INVALID_ARGUMENT does not count: FCM also returns it for rejected payloads.
func isDeadToken(err error) bool {
	return err != nil && messaging.IsUnregistered(err)
}

// payloadData carries title and body inside the data map so the client renders them itself.
func payloadData(msg *service.PushMessage) map[string]string {
	data := make(map[string]string, len(msg.Data)+2)
	for k, v := range msg.Data {
		data[k] = v
	}
	data["title"] = msg.Title
	data["body"] = msg.Body

	return data
}

func androidConfig(msg *service.PushMessage) *messaging.AndroidConfig {
	priority := "normal"
	if msg.HighPriority {
		priority = "high"
	}

	return &messaging.AndroidConfig{Priority: priority}
}

func apnsConfig(msg *service.PushMessage) *messaging.APNSConfig {
	badge := 1

	return &messaging.APNSConfig{
		Payload: &messaging.APNSPayload{
			Aps: &messaging.Aps{
				Alert: &messaging.ApsAlert{
					Title: msg.Title,
					Body:  msg.Body,
				},
				Sound: "default",
				Badge: &badge,
			},
		},
	}
}
