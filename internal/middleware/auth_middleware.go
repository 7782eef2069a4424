package middleware

import (
	"ReportDeskAPI/internal/helper"
	"ReportDeskAPI/internal/model"
	"ReportDeskAPI/internal/service"
	"context"
	"net/http"
	"strings"
)

type contextKey string

const UserContextKey contextKey = "userContext"

type AuthMiddleware struct {
	authService *service.AuthService
}

func NewAuthMiddleware(authService *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// VerifyToken resolves the Bearer token to a verified caller identity and
// stores it in the request context. It never mutates state; a failure is
// terminal for the request.
func (m *AuthMiddleware) VerifyToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			helper.WriteError(w, helper.NewUnauthorizedError(""))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			helper.WriteError(w, helper.NewUnauthorizedError(""))
			return
		}

		tokenString := parts[1]

		userContext, err := m.authService.VerifyUser(r.Context(), tokenString)
		if err != nil {
			helper.WriteError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, userContext)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin is the single role gate for admin-only routes. Handlers
// never re-check the role themselves.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userContext, ok := r.Context().Value(UserContextKey).(*model.UserDTO)
		if !ok {
			helper.WriteError(w, helper.NewUnauthorizedError(""))
			return
		}

		if !userContext.IsAdmin() {
			helper.WriteError(w, helper.NewForbiddenError("Admin access required"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CallerFromContext returns the verified identity set by VerifyToken.
func CallerFromContext(ctx context.Context) (*model.UserDTO, bool) {
	userContext, ok := ctx.Value(UserContextKey).(*model.UserDTO)
	return userContext, ok
}
