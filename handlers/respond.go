package handlers

import (
	"encoding/json"
	"net/http"

	"gridiron/roster"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorMessage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	body := map[string]string{"error": msg}
	if id := chimiddleware.GetReqID(r.Context()); id != "" {
		body["request_id"] = id
	}
	writeJSON(w, status, body)
}

// writeError maps a lookup error onto its HTTP status. Internal faults are
// logged in full and reported with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch roster.KindOf(err) {
	case roster.KindBadRequest:
		status = http.StatusBadRequest
	case roster.KindNotFound:
		status = http.StatusNotFound
	default:
		hlog.FromRequest(r).Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
	}
	writeErrorMessage(w, r, status, roster.Message(err))
}
