package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"wrapads/internal/lifecycle"
	"wrapads/internal/models"
	"wrapads/internal/pricing"
	"wrapads/internal/validation"
)

// MetaHandler serves the public, side-effect free helpers: the status
// table and the cost preview.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// Transitions handles GET /api/v1/campaigns/transitions
// @Tags Meta
// @Summary Campaign status table with the actions each status offers
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]lifecycle.StatusActions}
// @Router /api/v1/campaigns/transitions [get]
func (h *MetaHandler) Transitions(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, lifecycle.TransitionTable())
}

// Quote handles GET /api/v1/pricing/quote
// @Tags Meta
// @Summary Duration, driver earnings and total cost of a campaign draft
// @Produce json
// @Param payment query string true "Payment per day"
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Param drivers query int true "Required drivers"
// @Success 200 {object} models.APIResponse{data=pricing.Quote}
// @Failure 422 {object} models.APIResponse
// @Router /api/v1/pricing/quote [get]
func (h *MetaHandler) Quote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("payment") == "" || q.Get("start") == "" || q.Get("end") == "" || q.Get("drivers") == "" {
		writeJSONErrorResponse(w, http.StatusUnprocessableEntity, "validation_error", validation.MsgRequiredFields)
		return
	}

	payment, err := models.ParseAmount(q.Get("payment"))
	if err != nil {
		writeQuoteError(w, "paymentPerDay", "payment must be a number")
		return
	}
	start, err := models.ParseDate(q.Get("start"))
	if err != nil {
		writeQuoteError(w, "startDate", "start must be a date")
		return
	}
	end, err := models.ParseDate(q.Get("end"))
	if err != nil {
		writeQuoteError(w, "endDate", "end must be a date")
		return
	}
	drivers, err := strconv.Atoi(q.Get("drivers"))
	if err != nil {
		writeQuoteError(w, "requiredDrivers", "drivers must be a whole number")
		return
	}

	if err := validation.Quote(payment, start.Time, end.Time, drivers); err != nil {
		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			vErr = &validation.Error{Message: err.Error()}
		}
		writeJSONErrorResponse(w, http.StatusUnprocessableEntity, "validation_error", vErr.Message, vErr)
		return
	}
	writeData(w, http.StatusOK, pricing.NewQuote(payment, start.Time, end.Time, drivers))
}

func writeQuoteError(w http.ResponseWriter, field, message string) {
	writeJSONErrorResponse(w, http.StatusUnprocessableEntity, "validation_error", message,
		&validation.Error{Field: field, Message: message})
}
