package middleware

import (
	"encoding/json"
	"net/http"
)

// RequireRole creates a middleware that only lets the listed roles through.
// It must run after JWTAuthMiddleware so the role is already in the context.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value(RoleKey).(string)
			if _, ok := allowed[role]; !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"success": false,
					"error": map[string]string{
						"code":    "FORBIDDEN",
						"message": "Insufficient permissions",
					},
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
