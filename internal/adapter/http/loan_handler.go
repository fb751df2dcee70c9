package http

import (
	"net/http"

	"goldloan-backend/internal/adapter/middleware"
	"goldloan-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

// LoanHandler serves the customer-facing lifecycle endpoints.
type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	Purity        string  `json:"purity"         validate:"required,purity"`
	NetWeight     float64 `json:"net_weight"     validate:"required,gt=0,dec2"`
	AmountSeeking float64 `json:"amount_seeking" validate:"required,gt=0,dec2"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing caller identity"})
	}
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	res, err := h.uc.Create(c.Request().Context(), caller, loan.CreateInput{
		PurityCode:    req.Purity,
		NetWeight:     req.NetWeight,
		AmountSeeking: req.AmountSeeking,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing caller identity"})
	}
	out, err := h.uc.ListByCustomer(c.Request().Context(), caller)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing caller identity"})
	}
	ref := c.Param("ref_code")
	if ref == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing ref_code path param"})
	}
	out, err := h.uc.Details(c.Request().Context(), caller, ref)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) SubmitCollateral(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing caller identity"})
	}
	if err := h.uc.SubmitCollateral(c.Request().Context(), caller, c.Param("ref_code")); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type offerDecisionReq struct {
	Decision string `json:"decision" validate:"required"`
}

func (h *LoanHandler) OfferDecision(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing caller identity"})
	}
	var req offerDecisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if err := h.uc.DecideOffer(c.Request().Context(), caller, c.Param("ref_code"), req.Decision); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type finePaymentReq struct {
	FineAmount float64 `json:"fine_amount" validate:"required,gt=0,dec2"`
}

func (h *LoanHandler) PayFine(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing caller identity"})
	}
	var req finePaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if err := h.uc.PayFine(c.Request().Context(), caller, c.Param("ref_code"), loan.FinePaymentInput{FineAmount: req.FineAmount}); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LoanHandler) ReApply(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing caller identity"})
	}
	if err := h.uc.ReApply(c.Request().Context(), caller, c.Param("ref_code")); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
