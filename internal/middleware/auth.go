package middleware

import (
	"context"
	"net/http"

	"prepmate/server/internal/utils"
)

type authContextKey string

const userIDKey authContextKey = "user_id"

// RequireAuth validates the bearer token and stores the acting user's ID in
// the request context. Requests without a valid session get 401.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := utils.VerifyToken(r, secret)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "not_authenticated", "Not authenticated")
				return
			}
			userID, err := utils.GetUserIDFromClaims(claims)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "not_authenticated", "Not authenticated")
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID retrieves the authenticated user's ID set by RequireAuth.
func UserID(r *http.Request) uint {
	id, _ := r.Context().Value(userIDKey).(uint)
	return id
}
