package utils

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingAuthHeader = errors.New("missing or malformed Authorization header")
	ErrInvalidToken      = errors.New("invalid token")
	ErrInvalidClaims     = errors.New("invalid token claims")
)

// SignToken issues an HS256 session token for the given user.
func SignToken(userID uint, username, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken fetches the Authorization header, validates the JWT,
// and returns the claims if everything is valid.
func VerifyToken(r *http.Request, secret string) (jwt.MapClaims, error) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return nil, ErrMissingAuthHeader
	}
	tokenStr := strings.TrimPrefix(authz, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}

// GetUserIDFromClaims extracts the "sub" (user ID) from claims safely.
func GetUserIDFromClaims(claims jwt.MapClaims) (uint, error) {
	sub, ok := claims["sub"]
	if !ok {
		return 0, errors.New("missing sub claim")
	}

	// JWT numbers get decoded as float64
	v, ok := sub.(float64)
	if !ok || v < 1 {
		return 0, errors.New("invalid sub claim type")
	}
	return uint(v), nil
}
