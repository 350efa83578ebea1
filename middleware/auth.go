package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/adamind/quizwhizz-api/auth"
	"github.com/adamind/quizwhizz-api/utils"
)

type contextKey string

const userIDKey contextKey = "userID"

// RequireAuth verifies the Bearer token and attaches the authenticated
// user's public ID to the request context. The server-side token is the
// source of truth for identity; client-supplied user IDs are checked
// against it downstream.
func RequireAuth(secret string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractBearer(r)
			if tokenString == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			userID, err := auth.ParseToken(secret, tokenString)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// OptionalAuth attaches the user's public ID to the context when a
// valid Bearer token is present, and passes the request through
// untouched otherwise. Used on routes that work both anonymously and
// logged-in, where only the persistence side effect needs an identity.
func OptionalAuth(secret string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if tokenString := extractBearer(r); tokenString != "" {
				if userID, err := auth.ParseToken(secret, tokenString); err == nil {
					ctx := context.WithValue(r.Context(), userIDKey, userID)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		}
	}
}

// UserID returns the authenticated user's public ID, or "" when the
// request was not authenticated.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func extractBearer(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}
	return ""
}

func unauthorized(w http.ResponseWriter, message string) {
	utils.RespondMessage(w, http.StatusUnauthorized, message)
}
