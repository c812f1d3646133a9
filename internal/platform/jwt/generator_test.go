package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateToken_Valid(t *testing.T) {
	const secret = "test-secret"
	gen := NewGenerator(secret, time.Hour)

	signed, err := gen.GenerateToken(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signed == "" {
		t.Fatal("expected a non-empty token")
	}

	// Parse back and verify claims
	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not MapClaims")
	}
	if sub, ok := claims["sub"].(float64); !ok || uint(sub) != 42 {
		t.Errorf("expected sub 42, got %v", claims["sub"])
	}
	if _, ok := claims["exp"].(float64); !ok {
		t.Error("expected exp claim")
	}
	if _, ok := claims["iat"].(float64); !ok {
		t.Error("expected iat claim")
	}
}

func TestGenerateToken_ExpirationApplied(t *testing.T) {
	gen := NewGenerator("test-secret", TokenLifetime)

	signed, err := gen.GenerateToken(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, _ := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	claims := token.Claims.(jwt.MapClaims)

	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	iat := time.Unix(int64(claims["iat"].(float64)), 0)

	if got := exp.Sub(iat); got != TokenLifetime {
		t.Errorf("expected lifetime %v, got %v", TokenLifetime, got)
	}
}

func TestGenerateToken_WrongSecretRejected(t *testing.T) {
	gen := NewGenerator("right-secret", time.Hour)

	signed, err := gen.GenerateToken(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	if err == nil && token.Valid {
		t.Error("expected verification to fail with the wrong secret")
	}
}
