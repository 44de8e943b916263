package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, claims *Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}
	return signed
}

func TestParseBearerToken(t *testing.T) {
	cases := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "valid", header: "Bearer abc.def.ghi", expected: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", expected: "abc"},
		{name: "missing scheme", header: "abc.def.ghi", expected: ""},
		{name: "empty", header: "", expected: ""},
		{name: "wrong scheme", header: "Basic abc", expected: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseBearerToken(tc.header); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestVerifyAccessToken(t *testing.T) {
	restaurantID := "rest-1"
	signed := signToken(t, &Claims{
		UserID:       "u1",
		Role:         RoleRestaurantOwner,
		RestaurantID: &restaurantID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	claims, err := VerifyAccessToken(signed, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != "u1" || claims.Role != RoleRestaurantOwner {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.RestaurantID == nil || *claims.RestaurantID != restaurantID {
		t.Fatalf("restaurant id not carried: %+v", claims.RestaurantID)
	}
}

func TestVerifyAccessTokenRejections(t *testing.T) {
	expired := signToken(t, &Claims{
		UserID: "u1",
		Role:   RoleRestaurantOwner,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, testSecret)

	valid := signToken(t, &Claims{
		UserID: "u1",
		Role:   RoleRestaurantOwner,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	cases := []struct {
		name   string
		token  string
		secret string
	}{
		{name: "empty token", token: "", secret: testSecret},
		{name: "garbage", token: "not-a-token", secret: testSecret},
		{name: "expired", token: expired, secret: testSecret},
		{name: "wrong secret", token: valid, secret: "other-secret"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := VerifyAccessToken(tc.token, tc.secret); err == nil {
				t.Fatal("expected verification error")
			}
		})
	}
}
