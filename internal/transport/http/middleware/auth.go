package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Raymagdonal/kpi-ctb/internal/auth"
	"github.com/Raymagdonal/kpi-ctb/internal/domain/access"
	"github.com/Raymagdonal/kpi-ctb/internal/transport/http/api"
)

// Auth attaches verified token claims to the request context. Requests
// without a usable token pass through unauthenticated; RequireAuth and
// RequireAdmin decide whether that matters.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(header, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(ctxKeyClaims).(*auth.Claims)
	return claims, ok
}

func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetClaims(r.Context()); !ok {
			api.Fail(w, http.StatusUnauthorized, "not_authenticated", "authentication required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r.Context())
		if !ok {
			api.Fail(w, http.StatusUnauthorized, "not_authenticated", "authentication required", GetRequestID(r.Context()))
			return
		}
		if claims.Role != access.RoleAdmin {
			api.Fail(w, http.StatusForbidden, "forbidden", "administrator role required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}
