package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler runs the donor fan-out for request-created events delivered by Pub/Sub push.
type PushHandler struct {
	logger   *slog.Logger
	fanoutUC usecase.FanoutUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Logger   *slog.Logger
	FanoutUC usecase.FanoutUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		logger:   params.Logger,
		fanoutUC: params.FanoutUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.RequestCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse request-created event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}
	if strings.TrimSpace(event.Request.RequestID) == "" {
		h.logger.Error("[Worker] Request-created event without request id",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.String("event_id", event.EventID),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := extractRequestID(ctx, pushMsg.Message.Attributes, event.TraceID)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing request-created event",
		slog.String("event_id", event.EventID),
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("blood_request_id", event.Request.RequestID),
	)

	report := h.fanoutUC.Dispatch(ctx, requestFromSnapshot(&event.Request), usecase.FanoutTriggerPubSub)

	return respondToReport(c, reqLogger, report)
}

// extractRequestID picks the tracing id of a delivery, generating one as a last resort.
func extractRequestID(ctx context.Context, attributes map[string]string, traceID string) string {
	if requestID := attributes["request_id"]; requestID != "" {
		return requestID
	}

	if traceID != "" {
		return traceID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func requestFromSnapshot(snapshot *service.RequestSnapshot) *entity.BloodRequest {
	bloodType, _ := entity.ParseBloodType(snapshot.BloodType)
	request := &entity.BloodRequest{
		ID:               snapshot.RequestID,
		BloodBankID:      snapshot.BloodBankID,
		BloodBankName:    snapshot.BloodBankName,
		BloodType:        bloodType,
		Units:            snapshot.Units,
		IsUrgent:         snapshot.IsUrgent,
		Details:          snapshot.Details,
		HospitalLocation: snapshot.HospitalLocation,
	}
	if snapshot.CreatedAtMillis > 0 {
		createdAt := time.UnixMilli(snapshot.CreatedAtMillis)
		request.CreatedAt = &createdAt
	}

	return request
}

// respondToReport acknowledges the delivery unless the run hit a transient
// failure, in which case 503 makes the sender redeliver it.
func respondToReport(c echo.Context, logger *slog.Logger, report *usecase.FanoutReport) error {
	if report == nil {
		return c.NoContent(http.StatusOK)
	}

	if report.Retryable {
		logger.Warn("[Worker] Fan-out will be retried",
			slog.String("blood_request_id", report.RequestID),
			slog.String("reason", report.SkipReason),
			slog.Int("batch_failures", report.BatchFailures),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	logger.Info("[Worker] Request-created event processed",
		slog.String("blood_request_id", report.RequestID),
		slog.Bool("skipped", report.Skipped),
		slog.Bool("completed", report.Completed),
	)

	return c.NoContent(http.StatusOK)
}
