package handler

import (
	"log/slog"

	"bloodlink/internal/delivery/api/response"
	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RequestHandlerParams holds dependencies for RequestHandler, injected by Fx.
type RequestHandlerParams struct {
	fx.In

	RequestUC usecase.RequestUsecase
	Logger    *slog.Logger
}

// RequestHandler exposes the blood request lifecycle.
type RequestHandler struct {
	requestUC usecase.RequestUsecase
	logger    *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler
func NewRequestHandler(params RequestHandlerParams) *RequestHandler {
	return &RequestHandler{
		requestUC: params.RequestUC,
		logger:    params.Logger,
	}
}

// CreateRequestRequest is the body of POST /requests. Units accepts a number or a numeric string.
type CreateRequestRequest struct {
	RequestID        string `json:"requestId" validate:"max=128"`
	BloodBankName    string `json:"bloodBankName" validate:"max=200"`
	BloodType        string `json:"bloodType"`
	Units            any    `json:"units"`
	IsUrgent         bool   `json:"isUrgent"`
	HospitalLocation string `json:"hospitalLocation" validate:"max=500"`
	Details          string `json:"details" validate:"max=2000"`
}

// RequestIDParam addresses one request.
type RequestIDParam struct {
	RequestID string `param:"requestId"`
}

// CreateRequest stores a new blood request
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	var req CreateRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.requestUC.CreateRequest(c.Request().Context(), deliverycontext.GetCaller(c), &usecase.CreateRequestInput{
		RequestID:        req.RequestID,
		BloodBankName:    req.BloodBankName,
		BloodType:        req.BloodType,
		Units:            req.Units,
		IsUrgent:         req.IsUrgent,
		HospitalLocation: req.HospitalLocation,
		Details:          req.Details,
	})
	if err != nil {
		return err
	}

	return response.Created(c, out)
}

// ListRequests returns one page of the request feed
func (h *RequestHandler) ListRequests(c echo.Context) error {
	var req usecase.ListRequestsInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.requestUC.ListRequests(c.Request().Context(), deliverycontext.GetCaller(c), &req)
	if err != nil {
		return err
	}

	return response.OK(c, out)
}

// ListOwnRequests returns the requests of the calling hospital
func (h *RequestHandler) ListOwnRequests(c echo.Context) error {
	out, err := h.requestUC.ListOwnRequests(c.Request().Context(), deliverycontext.GetCaller(c))
	if err != nil {
		return err
	}

	return response.OK(c, out)
}

// DeleteRequest removes a request with its messages and notifications
func (h *RequestHandler) DeleteRequest(c echo.Context) error {
	var req RequestIDParam
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.requestUC.DeleteRequest(c.Request().Context(), deliverycontext.GetCaller(c), req.RequestID)
	if err != nil {
		return err
	}

	return response.OK(c, out)
}

// GetRequestQRCode renders the share code of a request as PNG
func (h *RequestHandler) GetRequestQRCode(c echo.Context) error {
	var req RequestIDParam
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	png, err := h.requestUC.GetRequestQRCode(c.Request().Context(), deliverycontext.GetCaller(c), req.RequestID)
	if err != nil {
		return err
	}

	return response.PNG(c, png)
}
