package middleware

import (
	"net/http"
	"slices"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
	"github.com/heartmarshall/scanreview-backend/pkg/ctxutil"
)

// RequireRole rejects anonymous requests with 401 and callers whose role is
// not listed with 403.
func RequireRole(roles ...domain.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
				return
			}
			role := domain.Role(ctxutil.UserRoleFromCtx(r.Context()))
			if !slices.Contains(roles, role) {
				writeError(w, http.StatusForbidden, "FORBIDDEN", "role not permitted")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
