package handler

import (
	"bloodlink/internal/delivery/api/response"
	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DonorHandler exposes donor listing to hospitals.
type DonorHandler struct {
	donorUC usecase.DonorUsecase
}

// NewDonorHandler is the constructor for DonorHandler
func NewDonorHandler(donorUC usecase.DonorUsecase) *DonorHandler {
	return &DonorHandler{donorUC: donorUC}
}

// ListDonorsRequest carries the optional blood type filter.
type ListDonorsRequest struct {
	BloodType string `query:"bloodType"`
}

// ListDonors returns the donors visible to the calling hospital
func (h *DonorHandler) ListDonors(c echo.Context) error {
	var req ListDonorsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.donorUC.ListDonors(c.Request().Context(), deliverycontext.GetCaller(c), req.BloodType)
	if err != nil {
		return err
	}

	return response.OK(c, out)
}
