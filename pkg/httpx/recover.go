package httpx

import (
	"net/http"

	"github.com/ultracoach/ultracoach/pkg/slogx"
)

// Recoverer converts panics into a structured 500 response so nothing
// propagates uncaught to the transport layer.
func Recoverer() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					slogx.FromContext(r.Context()).Error("panic recovered",
						"panic", rec,
						"path", r.URL.Path,
					)
					WriteJSON(w, http.StatusInternalServerError, map[string]any{
						"success": false,
						"error":   "INTERNAL_ERROR",
						"message": "Internal server error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
