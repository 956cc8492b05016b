package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhin/notekeeper/internal/service"
	"github.com/avolkhin/notekeeper/internal/utils"
	"github.com/avolkhin/notekeeper/models"
)

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{"valid header", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"no token part", "Bearer", "", ErrInvalidAuthorizationHeader},
		{"empty token part", "Bearer ", "", ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ─────────────────────────────────────────────
// auth middleware
// ─────────────────────────────────────────────

func TestAuthMiddleware_Success(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.jwt.token", tokenString)
			return models.Token{UserID: 42, SignedString: tokenString}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)

	var seenUserID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, found := utils.GetUserIDFromContext(r.Context())
		require.True(t, found)
		seenUserID = userID
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/get-user", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), seenUserID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/get-user", nil)
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.Response
	decodeEnvelope(t, rec, &resp)
	assert.True(t, resp.Error)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/get-user", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}

	h := newHandlerWithAuth(t, auth)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/get-user", nil)
	req.Header.Set("Authorization", "Bearer expired.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.Response
	decodeEnvelope(t, rec, &resp)
	assert.True(t, resp.Error)
	assert.Equal(t, service.ErrTokenIsExpiredOrInvalid.Error(), resp.Message)
}
