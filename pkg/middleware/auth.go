package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/BackamDavid/ecommerce-app/pkg/token"
	"github.com/BackamDavid/ecommerce-app/pkg/utils"
)

// Auth middleware validates the bearer session token and stores the
// identity claim on the request context.
func Auth(tokens token.Manager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			identity, err := tokens.Parse(parts[1])
			if err != nil {
				logger.Warn("Invalid session token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetIdentityContext(r.Context(), identity)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin requires the identity claim set by Auth to carry the admin role.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if identity.Role != "admin" {
				logger.Warn("Non-admin access attempt",
					zap.String("email", identity.Email),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
