package http

import (
	"net/http"

	"goldloan-backend/internal/adapter/middleware"
	"goldloan-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

// StaffHandler serves the institution-side lifecycle endpoints.
type StaffHandler struct{ uc *loan.Usecase }

func NewStaffHandler(uc *loan.Usecase) *StaffHandler { return &StaffHandler{uc: uc} }

type statusUpdateReq struct {
	NewStatus       string `json:"new_status" validate:"required"`
	RejectionReason string `json:"rejection_reason"`
}

func (h *StaffHandler) UpdateStatus(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing caller identity"})
	}
	var req statusUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	err := h.uc.StaffUpdateStatus(c.Request().Context(), caller, c.Param("ref_code"), loan.StatusUpdateInput{
		NewStatus:       req.NewStatus,
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type evaluationReq struct {
	FinalValue   float64 `json:"final_value"   validate:"required,gt=0,dec2"`
	QualityIndex float64 `json:"quality_index" validate:"required,gt=0"`
}

func (h *StaffHandler) Evaluate(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing caller identity"})
	}
	var req evaluationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	err := h.uc.CompleteEvaluation(c.Request().Context(), caller, c.Param("ref_code"), loan.EvaluationInput{
		FinalValue:   req.FinalValue,
		QualityIndex: req.QualityIndex,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *StaffHandler) Disburse(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing caller identity"})
	}
	if err := h.uc.Disburse(c.Request().Context(), caller, c.Param("ref_code")); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *StaffHandler) CollectGold(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing caller identity"})
	}
	if err := h.uc.CollectCollateral(c.Request().Context(), caller, c.Param("ref_code")); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *StaffHandler) ListAllLoans(c echo.Context) error {
	out, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
