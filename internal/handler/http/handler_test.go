package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/avolkhin/notekeeper/internal/logger"
	"github.com/avolkhin/notekeeper/internal/service"
	"github.com/avolkhin/notekeeper/internal/utils"
	"github.com/avolkhin/notekeeper/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	getUserFn      func(ctx context.Context, userID int64) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock NoteService
// ─────────────────────────────────────────────

// mockNoteService implements service.NoteService for unit tests.
type mockNoteService struct {
	createNoteFn  func(ctx context.Context, userID int64, req models.CreateNoteRequest) (models.Note, error)
	editNoteFn    func(ctx context.Context, userID, noteID int64, req models.EditNoteRequest) (models.Note, error)
	listNotesFn   func(ctx context.Context, userID int64) ([]models.Note, error)
	setPinnedFn   func(ctx context.Context, userID, noteID int64, isPinned bool) (models.Note, error)
	deleteNoteFn  func(ctx context.Context, userID, noteID int64) error
	searchNotesFn func(ctx context.Context, userID int64, query string) ([]models.Note, error)
}

func (m *mockNoteService) CreateNote(ctx context.Context, userID int64, req models.CreateNoteRequest) (models.Note, error) {
	return m.createNoteFn(ctx, userID, req)
}

func (m *mockNoteService) EditNote(ctx context.Context, userID, noteID int64, req models.EditNoteRequest) (models.Note, error) {
	return m.editNoteFn(ctx, userID, noteID, req)
}

func (m *mockNoteService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	return m.listNotesFn(ctx, userID)
}

func (m *mockNoteService) SetPinned(ctx context.Context, userID, noteID int64, isPinned bool) (models.Note, error) {
	return m.setPinnedFn(ctx, userID, noteID, isPinned)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	return m.deleteNoteFn(ctx, userID, noteID)
}

func (m *mockNoteService) SearchNotes(ctx context.Context, userID int64, query string) ([]models.Note, error) {
	return m.searchNotesFn(ctx, userID, query)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{AuthService: auth}
	return NewHandler(svcs, logger.Nop())
}

// newHandlerWithNotes builds a Handler with the given NoteService mock.
func newHandlerWithNotes(t *testing.T, notes service.NoteService) *Handler {
	t.Helper()
	svcs := &service.Services{NoteService: notes}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// asUser stores userID in the request context the way the auth middleware
// does.
func asUser(r *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
	return r.WithContext(ctx)
}

// withNoteID attaches a chi route parameter to the request.
func withNoteID(r *http.Request, noteID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("noteId", noteID)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

// decodeEnvelope decodes the response recorder's body into target.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}
