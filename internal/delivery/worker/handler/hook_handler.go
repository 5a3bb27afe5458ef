package handler

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/constants"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/errors"
	"bloodlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DocumentEvent is the document-creation payload posted by the Firestore trigger.
type DocumentEvent struct {
	Value struct {
		Name       string                    `json:"name"`
		Fields     map[string]FirestoreValue `json:"fields"`
		CreateTime string                    `json:"createTime"`
	} `json:"value"`
}

// FirestoreValue is one typed field value in the REST representation of a document.
type FirestoreValue struct {
	StringValue    *string  `json:"stringValue,omitempty"`
	IntegerValue   *string  `json:"integerValue,omitempty"`
	DoubleValue    *float64 `json:"doubleValue,omitempty"`
	BooleanValue   *bool    `json:"booleanValue,omitempty"`
	TimestampValue *string  `json:"timestampValue,omitempty"`
}

// HookHandler runs the donor fan-out for request documents announced by the Firestore trigger.
type HookHandler struct {
	logger   *slog.Logger
	fanoutUC usecase.FanoutUsecase
}

// HookHandlerParams holds dependencies for the HookHandler
type HookHandlerParams struct {
	fx.In

	Logger   *slog.Logger
	FanoutUC usecase.FanoutUsecase
}

// NewHookHandler creates a new document hook handler
func NewHookHandler(params HookHandlerParams) *HookHandler {
	return &HookHandler{
		logger:   params.Logger,
		fanoutUC: params.FanoutUC,
	}
}

// HandleRequestCreated handles the creation event of a request document
func (h *HookHandler) HandleRequestCreated(c echo.Context) error {
	ctx := c.Request().Context()

	var event DocumentEvent
	if err := c.Bind(&event); err != nil {
		h.logger.Error("[Worker] Failed to parse document event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	request, err := requestFromDocument(&event)
	if err != nil {
		h.logger.Error("[Worker] Unusable document event",
			slog.String("document", event.Value.Name),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}
	if request == nil {
		h.logger.Debug("[Worker] Ignoring document outside the requests collection",
			slog.String("document", event.Value.Name),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := extractRequestID(ctx, nil, "")
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing request document",
		slog.String("document", event.Value.Name),
		slog.String("blood_request_id", request.ID),
	)

	report := h.fanoutUC.Dispatch(ctx, request, usecase.FanoutTriggerDocumentHook)

	return respondToReport(c, reqLogger, report)
}

// requestFromDocument maps a created document to a blood request. It returns nil
// when the document does not belong to the requests collection.
func requestFromDocument(event *DocumentEvent) (*entity.BloodRequest, error) {
	segments := strings.Split(strings.Trim(event.Value.Name, "/"), "/")
	if len(segments) < 2 || segments[len(segments)-2] != constants.CollectionRequests {
		return nil, nil
	}
	id := segments[len(segments)-1]
	if id == "" {
		return nil, errors.New("document name has no id")
	}

	fields := event.Value.Fields
	units, err := fields["units"].asInt()
	if err != nil {
		return nil, errors.Wrap(err, "units")
	}
	bloodType, _ := entity.ParseBloodType(fields["bloodType"].asString())

	request := &entity.BloodRequest{
		ID:               id,
		BloodBankID:      fields["bloodBankId"].asString(),
		BloodBankName:    fields["bloodBankName"].asString(),
		BloodType:        bloodType,
		Units:            units,
		IsUrgent:         fields["isUrgent"].asBool(),
		Details:          fields["details"].asString(),
		HospitalLocation: fields["hospitalLocation"].asString(),
	}

	createdAt := fields["createdAt"].asTime()
	if createdAt == nil {
		createdAt = parseTimestamp(event.Value.CreateTime)
	}
	request.CreatedAt = createdAt

	return request, nil
}

func (v FirestoreValue) asString() string {
	if v.StringValue == nil {
		return ""
	}

	return *v.StringValue
}

func (v FirestoreValue) asBool() bool {
	return v.BooleanValue != nil && *v.BooleanValue
}

// asInt reads integerValue, which the REST encoding carries as a string, or a whole doubleValue.
func (v FirestoreValue) asInt() (int, error) {
	switch {
	case v.IntegerValue != nil:
		n, err := strconv.Atoi(*v.IntegerValue)
		if err != nil {
			return 0, errors.WithStack(err)
		}

		return n, nil
	case v.DoubleValue != nil:
		if *v.DoubleValue != math.Trunc(*v.DoubleValue) {
			return 0, errors.Errorf("not a whole number: %v", *v.DoubleValue)
		}

		return int(*v.DoubleValue), nil
	default:
		return 0, nil
	}
}

func (v FirestoreValue) asTime() *time.Time {
	if v.TimestampValue == nil {
		return nil
	}

	return parseTimestamp(*v.TimestampValue)
}

func parseTimestamp(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil
	}

	return &t
}
