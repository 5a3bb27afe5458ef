package handler

import (
	"log/slog"

	"bloodlink/internal/delivery/api/response"
	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler exposes the profile lifecycle.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// CreatePendingProfileRequest is the body of POST /profile/pending.
type CreatePendingProfileRequest struct {
	Role           string `json:"role"`
	FullName       string `json:"fullName" validate:"max=200"`
	BloodType      string `json:"bloodType"`
	BloodBankName  string `json:"bloodBankName" validate:"max=200"`
	Location       string `json:"location" validate:"max=500"`
	MedicalFileURL string `json:"medicalFileUrl" validate:"max=2048"`
}

// UpdateFCMTokenRequest is the body of PUT /profile/fcm-token.
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcmToken" validate:"max=4096"`
}

// GetUserDataRequest selects whose profile to read.
type GetUserDataRequest struct {
	TargetUID string `query:"uid"`
}

// CreatePendingProfile stages the caller's profile
func (h *ProfileHandler) CreatePendingProfile(c echo.Context) error {
	var req CreatePendingProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.profileUC.CreatePendingProfile(c.Request().Context(), deliverycontext.GetCaller(c), &usecase.CreatePendingProfileInput{
		Role:           req.Role,
		FullName:       req.FullName,
		BloodType:      req.BloodType,
		BloodBankName:  req.BloodBankName,
		Location:       req.Location,
		MedicalFileURL: req.MedicalFileURL,
	})
	if err != nil {
		return err
	}

	return response.OK(c, out)
}

// CompleteProfile activates the staged profile
func (h *ProfileHandler) CompleteProfile(c echo.Context) error {
	out, err := h.profileUC.CompleteProfile(c.Request().Context(), deliverycontext.GetCaller(c))
	if err != nil {
		return err
	}

	return response.OK(c, out)
}

// GetUserData returns the caller's profile
func (h *ProfileHandler) GetUserData(c echo.Context) error {
	var req GetUserDataRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.profileUC.GetUserData(c.Request().Context(), deliverycontext.GetCaller(c), req.TargetUID)
	if err != nil {
		return err
	}

	return response.OK(c, out)
}

// GetUserRole returns the caller's role
func (h *ProfileHandler) GetUserRole(c echo.Context) error {
	out, err := h.profileUC.GetUserRole(c.Request().Context(), deliverycontext.GetCaller(c))
	if err != nil {
		return err
	}

	return response.OK(c, out)
}

// UpdateLastLogin records a login
func (h *ProfileHandler) UpdateLastLogin(c echo.Context) error {
	out, err := h.profileUC.UpdateLastLogin(c.Request().Context(), deliverycontext.GetCaller(c))
	if err != nil {
		return err
	}

	return response.OK(c, out)
}

// UpdateFCMToken stores the device push token
func (h *ProfileHandler) UpdateFCMToken(c echo.Context) error {
	var req UpdateFCMTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.profileUC.UpdateFCMToken(c.Request().Context(), deliverycontext.GetCaller(c), req.FCMToken)
	if err != nil {
		return err
	}

	return response.OK(c, out)
}

// UpdateProfile applies a partial profile update
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req usecase.UpdateProfileInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.profileUC.UpdateProfile(c.Request().Context(), deliverycontext.GetCaller(c), &req)
	if err != nil {
		return err
	}

	return response.OK(c, out)
}
