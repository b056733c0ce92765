package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briangreenhill/courtside/supabase"
)

type fakeVerifier struct {
	token string
	user  *supabase.User
	calls int
}

func (f *fakeVerifier) GetUser(_ context.Context, token string) (*supabase.User, error) {
	f.calls++
	if token != f.token {
		return nil, supabase.ErrInvalidToken
	}
	return f.user, nil
}

func TestRequireAuth(t *testing.T) {
	user := &supabase.User{ID: uuid.New(), Email: "fan@example.com"}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"no header", "", http.StatusUnauthorized, `{"error":"No authorization header"}`},
		{"bad token", "Bearer nope", http.StatusUnauthorized, `{"error":"Invalid token"}`},
		{"good token", "Bearer good", http.StatusOK, "fan@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &fakeVerifier{token: "good", user: user}
			h := RequireAuth(v)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				u, ok := UserFromContext(r.Context())
				require.True(t, ok)
				_, _ = w.Write([]byte(u.Email))
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestUserFromContextEmpty(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)
}
