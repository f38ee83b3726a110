package httpx

import "net/http"

// RequireRole the caller must hold one of the provided platform roles.
func RequireRole(allowed ...string) Middleware {
	want := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		want[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := roleFromCtx(r.Context())
			if _, ok := want[role]; !ok {
				WriteJSON(w, http.StatusForbidden, map[string]any{
					"success": false,
					"error":   "FORBIDDEN",
					"message": "insufficient role",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
