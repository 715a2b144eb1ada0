package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"wrapads/internal/console"
	"wrapads/internal/lifecycle"
	"wrapads/internal/services"
	"wrapads/internal/session"
	"wrapads/internal/validation"
	"wrapads/internal/workflow"
)

var conflicts = []struct {
	err  error
	code string
}{
	{workflow.ErrInFlight, "in_flight"},
	{lifecycle.ErrTransitionNotAllowed, "transition_not_allowed"},
	{lifecycle.ErrNotPending, "not_pending"},
	{console.ErrCampaignFull, "campaign_full"},
	{console.ErrCampaignNotActive, "campaign_not_active"},
	{console.ErrNotDeletable, "not_deletable"},
	{console.ErrAlreadyVerified, "already_verified"},
}

// writeError maps a console error to a status code. fallback is the
// message used when the error carries none fit for the user.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error, fallback string) {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		writeJSONErrorResponse(w, http.StatusUnprocessableEntity, "validation_error", vErr.Message, vErr)
		return
	}
	if errors.Is(err, session.ErrNoSession) {
		writeJSONErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Not signed in")
		return
	}
	if errors.Is(err, lifecycle.ErrUnknownAction) {
		writeJSONErrorResponse(w, http.StatusUnprocessableEntity, "unknown_action", err.Error())
		return
	}
	for _, c := range conflicts {
		if errors.Is(err, c.err) {
			writeJSONErrorResponse(w, http.StatusConflict, c.code, err.Error())
			return
		}
	}
	if errors.Is(err, console.ErrNotFound) {
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", err.Error())
		return
	}

	message := services.ErrorMessage(err, fallback)
	var actionErr *console.ActionError
	if errors.As(err, &actionErr) {
		message = actionErr.Message
	}

	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			writeJSONErrorResponse(w, http.StatusUnauthorized, "unauthorized", message)
		case http.StatusForbidden:
			writeJSONErrorResponse(w, http.StatusForbidden, "forbidden", message)
		case http.StatusNotFound:
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", message)
		case http.StatusBadRequest, http.StatusUnprocessableEntity:
			writeJSONErrorResponse(w, http.StatusUnprocessableEntity, "upstream_rejected", message, apiErr.Errors...)
		case http.StatusConflict:
			writeJSONErrorResponse(w, http.StatusConflict, "upstream_conflict", message, apiErr.Errors...)
		default:
			logger.Warn("marketplace request failed", zap.Int("upstream_status", apiErr.StatusCode), zap.Error(err))
			writeJSONErrorResponse(w, http.StatusBadGateway, "upstream_error", message, apiErr.Errors...)
		}
		return
	}

	if errors.Is(err, services.ErrUnexpectedResponse) {
		logger.Error("unexpected marketplace response", zap.Error(err))
		writeJSONErrorResponse(w, http.StatusBadGateway, "unexpected_response", fallback)
		return
	}
	var transportErr *services.TransportError
	if errors.As(err, &transportErr) {
		logger.Warn("marketplace unreachable", zap.Error(err))
		writeJSONErrorResponse(w, http.StatusBadGateway, "upstream_unavailable", message)
		return
	}
	if actionErr != nil {
		logger.Warn("console action failed", zap.Error(err))
		writeJSONErrorResponse(w, http.StatusBadGateway, "upstream_error", message)
		return
	}

	logger.Error("request failed", zap.Error(err))
	writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", fallback)
}
