package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"restro-analytics-service/internal/auth"
)

type contextKey string

const authContextKey contextKey = "authContext"

type AuthContext struct {
	UserID       string
	Role         auth.UserRole
	RestaurantID string
}

func WithAuthContext(ctx context.Context, authCtx *AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey, authCtx)
}

func GetAuthContext(ctx context.Context) (*AuthContext, bool) {
	value := ctx.Value(authContextKey)
	if value == nil {
		return nil, false
	}
	ac, ok := value.(*AuthContext)
	return ac, ok
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   "UNAUTHORIZED",
		"message": message,
	})
}

// RestaurantAuth verifies the bearer token and resolves the restaurant the
// caller reports on. Only restaurant-scoped roles pass.
func RestaurantAuth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.ParseBearerToken(r.Header.Get("Authorization"))
			claims, err := auth.VerifyAccessToken(token, jwtSecret)
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "Authorization token required")
				return
			}

			if claims.Role != auth.RoleRestaurantOwner && claims.Role != auth.RoleRestaurantStaff {
				writeAuthError(w, http.StatusForbidden, "Restaurant access required")
				return
			}
			if claims.RestaurantID == nil || *claims.RestaurantID == "" {
				writeAuthError(w, http.StatusUnauthorized, "Restaurant not found")
				return
			}

			authCtx := &AuthContext{
				UserID:       claims.UserID,
				Role:         claims.Role,
				RestaurantID: *claims.RestaurantID,
			}
			next.ServeHTTP(w, r.WithContext(WithAuthContext(r.Context(), authCtx)))
		})
	}
}
