package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "jwt-test-secret"

func requestWithToken(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	token, err := SignToken(7, "alice", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("SignToken failed: %v", err)
	}

	claims, err := VerifyToken(requestWithToken(token), testSecret)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if claims["username"] != "alice" {
		t.Fatalf("expected username alice, got %v", claims["username"])
	}

	userID, err := GetUserIDFromClaims(claims)
	if err != nil {
		t.Fatalf("GetUserIDFromClaims failed: %v", err)
	}
	if userID != 7 {
		t.Fatalf("expected user ID 7, got %d", userID)
	}
}

func TestVerifyTokenRejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := VerifyToken(req, testSecret); err != ErrMissingAuthHeader {
		t.Fatalf("expected ErrMissingAuthHeader, got %v", err)
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	token, err := SignToken(7, "alice", "different-secret", time.Hour)
	if err != nil {
		t.Fatalf("SignToken failed: %v", err)
	}
	if _, err := VerifyToken(requestWithToken(token), testSecret); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	token, err := SignToken(7, "alice", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("SignToken failed: %v", err)
	}
	if _, err := VerifyToken(requestWithToken(token), testSecret); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyTokenRejectsWrongAlgorithm(t *testing.T) {
	// alg "none" must never be accepted even with a valid payload
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": 7, "exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}
	if _, err := VerifyToken(requestWithToken(signed), testSecret); err == nil {
		t.Fatal("expected error for unsigned token")
	}
}

func TestGetUserIDFromClaims(t *testing.T) {
	tests := []struct {
		name    string
		claims  jwt.MapClaims
		want    uint
		wantErr bool
	}{
		{"valid", jwt.MapClaims{"sub": float64(12)}, 12, false},
		{"missing sub", jwt.MapClaims{}, 0, true},
		{"wrong type", jwt.MapClaims{"sub": "12"}, 0, true},
		{"zero", jwt.MapClaims{"sub": float64(0)}, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := GetUserIDFromClaims(tc.claims)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
