package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestCreateAccessToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	tokenString, err := CreateAccessToken("u1", "u1@example.com")
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("unexpected claims type")
	}
	if claims["userId"] != "u1" {
		t.Errorf("expected userId u1, got %v", claims["userId"])
	}
	if claims["iss"] != "mindu" {
		t.Errorf("expected issuer mindu, got %v", claims["iss"])
	}
}
