package http

import (
	"net/http"

	"goldloan-backend/internal/usecase/rate"

	"github.com/labstack/echo/v4"
)

type RateHandler struct{ uc *rate.Usecase }

func NewRateHandler(uc *rate.Usecase) *RateHandler { return &RateHandler{uc: uc} }

// GoldRate quotes the per-gram rate; ?purity=22K, defaults to 24K.
func (h *RateHandler) GoldRate(c echo.Context) error {
	purity := c.QueryParam("purity")
	if purity == "" {
		purity = "24K"
	}
	q, err := h.uc.Get(c.Request().Context(), purity)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, q)
}
