package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/hlog"

	"github.com/briangreenhill/courtside/supabase"
)

type contextKey string

const UserKey contextKey = "user"

// TokenVerifier resolves a bearer token to the user it belongs to.
type TokenVerifier interface {
	GetUser(ctx context.Context, accessToken string) (*supabase.User, error)
}

// RequireAuth rejects requests without a valid Supabase access token and
// stores the resolved user in the request context.
func RequireAuth(v TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "No authorization header")
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			user, err := v.GetUser(r.Context(), token)
			if err != nil {
				hlog.FromRequest(r).Warn().Err(err).Msg("auth failed")
				unauthorized(w, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), UserKey, user)))
		})
	}
}

// UserFromContext returns the user stored by RequireAuth.
func UserFromContext(ctx context.Context) (*supabase.User, bool) {
	u, ok := ctx.Value(UserKey).(*supabase.User)
	return u, ok && u != nil
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
