package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// RequestLogger attaches logger to every request context and writes one
// access log line per request. Run it after chi's RequestID middleware.
func RequestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		access := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			evt := hlog.FromRequest(r).Info()
			if status >= http.StatusInternalServerError {
				evt = hlog.FromRequest(r).Error()
			}
			evt.
				Str("method", r.Method).
				Str("url", r.URL.RequestURI()).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("Request handled")
		})(next)

		withID := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := chimiddleware.GetReqID(r.Context()); id != "" {
				l := zerolog.Ctx(r.Context()).With().Str("request_id", id).Logger()
				r = r.WithContext(l.WithContext(r.Context()))
			}
			access.ServeHTTP(w, r)
		})

		return hlog.NewHandler(logger)(withID)
	}
}
