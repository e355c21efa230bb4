// Package requesttime captures one "now" per request so every action
// dispatched while serving it carries the same timestamp.
package requesttime

import (
	"net/http"
	"time"

	"tradedesk/pkg/requestcontext"
)

// Middleware stores the request start time on the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now().UTC())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
