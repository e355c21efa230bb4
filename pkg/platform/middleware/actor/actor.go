// Package actor attributes requests to an acting admin identity. The
// dashboard sits behind an authenticating proxy, which forwards the identity
// in a header; this middleware only copies it onto the context.
package actor

import (
	"net/http"
	"strings"

	"tradedesk/pkg/requestcontext"
)

// Header carries the acting identity set by the upstream proxy.
const Header = "X-Actor"

// Middleware copies the Header value onto the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if v := strings.TrimSpace(r.Header.Get(Header)); v != "" {
			r = r.WithContext(requestcontext.WithActor(r.Context(), v))
		}
		next.ServeHTTP(w, r)
	})
}
