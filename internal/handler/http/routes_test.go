package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhin/notekeeper/internal/logger"
	"github.com/avolkhin/notekeeper/internal/service"
	"github.com/avolkhin/notekeeper/models"
)

// newTestRouter wires a full router over mocked services so requests travel
// through the real middleware chain.
func newTestRouter(t *testing.T, auth *mockAuthService, notes *mockNoteService) http.Handler {
	t.Helper()
	svcs := &service.Services{AuthService: auth, NoteService: notes}
	return NewHandler(svcs, logger.Nop()).Init()
}

func TestRouter_PublicRoutesNeedNoToken(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			return models.User{UserID: 1, Email: req.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{SignedString: "signed.jwt.token"}, nil
		},
	}
	router := newTestRouter(t, auth, &mockNoteService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := jsonBody(t, validRegisterRequest)
	req = httptest.NewRequest(http.MethodPost, "/create-account", strings.NewReader(body))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t, &mockAuthService{}, &mockNoteService{})

	protected := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/get-user"},
		{http.MethodPost, "/add-note"},
		{http.MethodPut, "/edit-note/1"},
		{http.MethodGet, "/get-all-notes"},
		{http.MethodDelete, "/delete-note/1"},
		{http.MethodPut, "/update-note-pinned/1"},
		{http.MethodGet, "/search-note"},
	}

	for _, route := range protected {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.target, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)

			var resp models.Response
			decodeEnvelope(t, rec, &resp)
			assert.True(t, resp.Error)
		})
	}
}

func TestRouter_VerifiedIdentityReachesHandler(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 42}, nil
		},
	}
	notes := &mockNoteService{
		listNotesFn: func(_ context.Context, userID int64) ([]models.Note, error) {
			assert.Equal(t, int64(42), userID)
			return []models.Note{}, nil
		},
	}
	router := newTestRouter(t, auth, notes)

	req := httptest.NewRequest(http.MethodGet, "/get-all-notes", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_TraceIDHeader(t *testing.T) {
	router := newTestRouter(t, &mockAuthService{}, &mockNoteService{})

	// A supplied trace ID is echoed back.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))

	// Absent one, a fresh ID is generated.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
