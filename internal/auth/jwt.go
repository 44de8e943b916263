package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type UserRole string

const (
	RoleAdmin           UserRole = "ADMIN"
	RoleRestaurantOwner UserRole = "RESTAURANT_OWNER"
	RoleRestaurantStaff UserRole = "RESTAURANT_STAFF"
)

// Claims is the slice of the session token this service reads. Session
// issuance lives in the auth service; here we only verify and extract the
// restaurant the caller may report on.
type Claims struct {
	UserID       string   `json:"userId"`
	Role         UserRole `json:"role"`
	RestaurantID *string  `json:"restaurantId,omitempty"`
	jwt.RegisteredClaims
}

func ParseBearerToken(authHeader string) string {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func VerifyAccessToken(tokenString string, secret string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token required")
	}

	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	_, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, errors.New("token expired")
	}
	return claims, nil
}
