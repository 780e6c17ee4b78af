package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	apperrors "github.com/tropicaldog17/stockfolio/internal/errors"
	"github.com/tropicaldog17/stockfolio/internal/services"
)

type PortfolioHandler struct {
	service services.PortfolioService
}

func NewPortfolioHandler(service services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

// @Summary Portfolio return over a date range
// @Description Values each holding at the first and last stored close inside the range. Holdings without price data in the range are omitted.
// @Tags portfolio
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} models.PortfolioReturnResponse
// @Failure 400 {string} string "Bad request"
// @Failure 404 {string} string "Customer not found"
// @Router /portfolio/{customer_id}/returns [get]
func (h *PortfolioHandler) HandleReturns(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customer_id"]

	start, ok, err := parseDateParam(r, "start_date")
	if err == nil && !ok {
		err = &apperrors.ErrValidation{Field: "start_date", Message: "is required"}
	}
	if err != nil {
		writeError(w, err)
		return
	}
	end, ok, err := parseDateParam(r, "end_date")
	if err == nil && !ok {
		err = &apperrors.ErrValidation{Field: "end_date", Message: "is required"}
	}
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.service.CalculatePortfolioReturn(r.Context(), customerID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
