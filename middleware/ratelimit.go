package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// ResetLimiter bounds how often one client may reset the database.
func ResetLimiter(requestsPerMinute int) func(next http.Handler) http.Handler {
	return httprate.Limit(
		requestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Too many reset requests, try again later", http.StatusTooManyRequests)
		}),
	)
}
