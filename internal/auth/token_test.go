package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const testSecret = "test-signing-secret"

func signToken(t *testing.T, secret string, claims *Claims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func validClaims(userID int64) *Claims {
	return &Claims{
		UserID: userID,
		Type:   "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestVerifyAccessToken(t *testing.T) {
	verifier := NewVerifier(testSecret)

	claims, err := verifier.VerifyAccessToken(signToken(t, testSecret, validClaims(42)))
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
}

func TestVerifyAccessTokenRejectsWrongSecret(t *testing.T) {
	verifier := NewVerifier(testSecret)

	if _, err := verifier.VerifyAccessToken(signToken(t, "other-secret", validClaims(42))); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyAccessTokenRejectsExpired(t *testing.T) {
	verifier := NewVerifier(testSecret)

	claims := validClaims(42)
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	if _, err := verifier.VerifyAccessToken(signToken(t, testSecret, claims)); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyAccessTokenRejectsRefreshTokens(t *testing.T) {
	verifier := NewVerifier(testSecret)

	claims := validClaims(42)
	claims.Type = "refresh"

	if _, err := verifier.VerifyAccessToken(signToken(t, testSecret, claims)); !errors.Is(err, ErrWrongType) {
		t.Errorf("err = %v, want ErrWrongType", err)
	}
}

func TestVerifyAccessTokenRejectsGarbage(t *testing.T) {
	verifier := NewVerifier(testSecret)

	if _, err := verifier.VerifyAccessToken("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}
