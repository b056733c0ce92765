package routes

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/hlog"
)

// envelope wraps successful responses. Count is set for list payloads only.
type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Count   *int `json:"count,omitempty"`
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ValidationError is a bad or missing request parameter.
type ValidationError struct {
	Field   string
	Summary string
	Message string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Message }

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("write response")
	}
}

func writeData(w http.ResponseWriter, r *http.Request, data any) {
	writeJSON(w, r, http.StatusOK, envelope{Success: true, Data: data})
}

func writeList[T any](w http.ResponseWriter, r *http.Request, items []T) {
	n := len(items)
	writeJSON(w, r, http.StatusOK, envelope{Success: true, Data: items, Count: &n})
}

func writeValidation(w http.ResponseWriter, r *http.Request, verr *ValidationError) {
	hlog.FromRequest(r).Info().Str("field", verr.Field).Msg(verr.Summary)
	writeJSON(w, r, http.StatusBadRequest, errorBody{Error: verr.Summary, Message: verr.Message})
}

// writeFailure logs err and answers with a 500 carrying summary.
func writeFailure(w http.ResponseWriter, r *http.Request, summary string, err error) {
	hlog.FromRequest(r).Error().Err(err).Msg(summary)
	writeJSON(w, r, http.StatusInternalServerError, errorBody{Error: summary, Message: err.Error()})
}
