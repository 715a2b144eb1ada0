package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"wrapads/internal/console"
	"wrapads/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"message": message})
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, models.APIResponse{Status: models.ResponseStatusSuccess, Data: data})
}

// writeAction reports a settled console action: its notice as the message
// and the re-fetched resource as data.
func writeAction(w http.ResponseWriter, status int, res *console.ActionResult) {
	writeJSON(w, status, models.APIResponse{
		Status:  models.ResponseStatusSuccess,
		Message: res.Notice.Message,
		Data:    res.Data,
	})
}

func writeJSONErrorResponse(w http.ResponseWriter, status int, code string, message string, details ...any) {
	writeJSON(w, status, models.APIResponse{
		Status:  models.ResponseStatusError,
		Code:    code,
		Message: message,
		Errors:  details,
	})
}

// decodeJSON reads a request body into v. An empty body is an error.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	return json.NewDecoder(r.Body).Decode(v)
}

type pagination struct {
	Limit  int
	Offset int
}

func parsePaginationParams(r *http.Request, defaultLimit, maxLimit int) (pagination, error) {
	p := pagination{Limit: defaultLimit}
	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return p, fmt.Errorf("invalid limit %q", raw)
		}
		p.Limit = n
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return p, fmt.Errorf("invalid offset %q", raw)
		}
		p.Offset = n
	}
	return p, nil
}
