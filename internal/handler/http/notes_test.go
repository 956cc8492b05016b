package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhin/notekeeper/internal/service"
	"github.com/avolkhin/notekeeper/internal/store"
	"github.com/avolkhin/notekeeper/models"
)

// ─────────────────────────────────────────────
// addNote
// ─────────────────────────────────────────────

func TestAddNote_Success(t *testing.T) {
	notes := &mockNoteService{
		createNoteFn: func(_ context.Context, userID int64, req models.CreateNoteRequest) (models.Note, error) {
			return models.Note{NoteID: 10, UserID: userID, Title: req.Title, Content: req.Content, Tags: req.Tags}, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	body := jsonBody(t, models.CreateNoteRequest{Title: "shopping", Content: "milk", Tags: models.Tags{"errands"}})
	req := asUser(httptest.NewRequest(http.MethodPost, "/add-note", strings.NewReader(body)), 1)
	rec := httptest.NewRecorder()

	h.addNote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.NoteResponse
	decodeEnvelope(t, rec, &resp)
	assert.False(t, resp.Error)
	require.NotNil(t, resp.Note)
	assert.Equal(t, int64(10), resp.Note.NoteID)
	assert.Equal(t, int64(1), resp.Note.UserID)
}

func TestAddNote_MissingFields(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
	}{
		{"missing title", service.ErrTitleRequired},
		{"missing content", service.ErrContentRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := &mockNoteService{
				createNoteFn: func(_ context.Context, _ int64, _ models.CreateNoteRequest) (models.Note, error) {
					return models.Note{}, tt.serviceErr
				},
			}

			h := newHandlerWithNotes(t, notes)
			body := jsonBody(t, models.CreateNoteRequest{})
			req := asUser(httptest.NewRequest(http.MethodPost, "/add-note", strings.NewReader(body)), 1)
			rec := httptest.NewRecorder()

			h.addNote(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp models.Response
			decodeEnvelope(t, rec, &resp)
			assert.True(t, resp.Error)
			assert.Equal(t, tt.serviceErr.Error(), resp.Message)
		})
	}
}

func TestAddNote_NoIdentityInContext(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{})
	body := jsonBody(t, models.CreateNoteRequest{Title: "t", Content: "c"})
	req := httptest.NewRequest(http.MethodPost, "/add-note", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.addNote(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// editNote
// ─────────────────────────────────────────────

func TestEditNote_HandlerSuccess(t *testing.T) {
	newTitle := "renamed"

	notes := &mockNoteService{
		editNoteFn: func(_ context.Context, userID, noteID int64, req models.EditNoteRequest) (models.Note, error) {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, int64(5), noteID)
			require.NotNil(t, req.Title)
			return models.Note{NoteID: noteID, UserID: userID, Title: *req.Title}, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	body := jsonBody(t, models.EditNoteRequest{Title: &newTitle})
	req := httptest.NewRequest(http.MethodPut, "/edit-note/5", strings.NewReader(body))
	req = withNoteID(asUser(req, 1), "5")
	rec := httptest.NewRecorder()

	h.editNote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.NoteResponse
	decodeEnvelope(t, rec, &resp)
	assert.False(t, resp.Error)
	require.NotNil(t, resp.Note)
	assert.Equal(t, newTitle, resp.Note.Title)
}

func TestEditNote_InvalidNoteID(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{})
	req := httptest.NewRequest(http.MethodPut, "/edit-note/abc", strings.NewReader("{}"))
	req = withNoteID(asUser(req, 1), "abc")
	rec := httptest.NewRecorder()

	h.editNote(rec, req)

	// A non-numeric ID cannot refer to any note.
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.Response
	decodeEnvelope(t, rec, &resp)
	assert.True(t, resp.Error)
	assert.Equal(t, msgInvalidNoteID, resp.Message)
}

func TestEditNote_NoChangeProvided(t *testing.T) {
	notes := &mockNoteService{
		editNoteFn: func(_ context.Context, _, _ int64, _ models.EditNoteRequest) (models.Note, error) {
			return models.Note{}, service.ErrNoChangeProvided
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := httptest.NewRequest(http.MethodPut, "/edit-note/5", strings.NewReader("{}"))
	req = withNoteID(asUser(req, 1), "5")
	rec := httptest.NewRecorder()

	h.editNote(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.Response
	decodeEnvelope(t, rec, &resp)
	assert.True(t, resp.Error)
	assert.Equal(t, service.ErrNoChangeProvided.Error(), resp.Message)
}

func TestEditNote_NotOwned(t *testing.T) {
	notes := &mockNoteService{
		editNoteFn: func(_ context.Context, _, _ int64, _ models.EditNoteRequest) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	}

	h := newHandlerWithNotes(t, notes)
	newTitle := "renamed"
	body := jsonBody(t, models.EditNoteRequest{Title: &newTitle})
	req := httptest.NewRequest(http.MethodPut, "/edit-note/5", strings.NewReader(body))
	req = withNoteID(asUser(req, 2), "5")
	rec := httptest.NewRecorder()

	h.editNote(rec, req)

	// Another user's note is reported exactly like a missing one.
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.Response
	decodeEnvelope(t, rec, &resp)
	assert.True(t, resp.Error)
	assert.Equal(t, store.ErrNoteNotFound.Error(), resp.Message)
}

// ─────────────────────────────────────────────
// getAllNotes
// ─────────────────────────────────────────────

func TestGetAllNotes_Success(t *testing.T) {
	notes := &mockNoteService{
		listNotesFn: func(_ context.Context, userID int64) ([]models.Note, error) {
			return []models.Note{
				{NoteID: 2, UserID: userID, IsPinned: true},
				{NoteID: 1, UserID: userID},
			}, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := asUser(httptest.NewRequest(http.MethodGet, "/get-all-notes", nil), 1)
	rec := httptest.NewRecorder()

	h.getAllNotes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.NotesResponse
	decodeEnvelope(t, rec, &resp)
	assert.False(t, resp.Error)
	require.Len(t, resp.Notes, 2)
	assert.True(t, resp.Notes[0].IsPinned)
}

func TestGetAllNotes_EmptyList(t *testing.T) {
	notes := &mockNoteService{
		listNotesFn: func(_ context.Context, _ int64) ([]models.Note, error) {
			return []models.Note{}, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := asUser(httptest.NewRequest(http.MethodGet, "/get-all-notes", nil), 1)
	rec := httptest.NewRecorder()

	h.getAllNotes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.NotesResponse
	decodeEnvelope(t, rec, &resp)
	assert.False(t, resp.Error)
	assert.NotNil(t, resp.Notes)
	assert.Empty(t, resp.Notes)
}

// ─────────────────────────────────────────────
// deleteNote
// ─────────────────────────────────────────────

func TestDeleteNote_HandlerSuccess(t *testing.T) {
	notes := &mockNoteService{
		deleteNoteFn: func(_ context.Context, userID, noteID int64) error {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, int64(5), noteID)
			return nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := httptest.NewRequest(http.MethodDelete, "/delete-note/5", nil)
	req = withNoteID(asUser(req, 1), "5")
	rec := httptest.NewRecorder()

	h.deleteNote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Response
	decodeEnvelope(t, rec, &resp)
	assert.False(t, resp.Error)
}

func TestDeleteNote_HandlerNotFound(t *testing.T) {
	notes := &mockNoteService{
		deleteNoteFn: func(_ context.Context, _, _ int64) error {
			return store.ErrNoteNotFound
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := httptest.NewRequest(http.MethodDelete, "/delete-note/5", nil)
	req = withNoteID(asUser(req, 2), "5")
	rec := httptest.NewRecorder()

	h.deleteNote(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteNote_InvalidNoteID(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{})
	req := httptest.NewRequest(http.MethodDelete, "/delete-note/abc", nil)
	req = withNoteID(asUser(req, 1), "abc")
	rec := httptest.NewRecorder()

	h.deleteNote(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// updateNotePinned
// ─────────────────────────────────────────────

func TestUpdateNotePinned_Success(t *testing.T) {
	tests := []struct {
		name     string
		isPinned bool
	}{
		{"pin", true},
		{"unpin", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := &mockNoteService{
				setPinnedFn: func(_ context.Context, userID, noteID int64, isPinned bool) (models.Note, error) {
					assert.Equal(t, tt.isPinned, isPinned)
					return models.Note{NoteID: noteID, UserID: userID, IsPinned: isPinned}, nil
				},
			}

			h := newHandlerWithNotes(t, notes)
			body := jsonBody(t, models.PinNoteRequest{IsPinned: tt.isPinned})
			req := httptest.NewRequest(http.MethodPut, "/update-note-pinned/5", strings.NewReader(body))
			req = withNoteID(asUser(req, 1), "5")
			rec := httptest.NewRecorder()

			h.updateNotePinned(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var resp models.NoteResponse
			decodeEnvelope(t, rec, &resp)
			assert.False(t, resp.Error)
			require.NotNil(t, resp.Note)
			assert.Equal(t, tt.isPinned, resp.Note.IsPinned)
		})
	}
}

func TestUpdateNotePinned_NotFound(t *testing.T) {
	notes := &mockNoteService{
		setPinnedFn: func(_ context.Context, _, _ int64, _ bool) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	}

	h := newHandlerWithNotes(t, notes)
	body := jsonBody(t, models.PinNoteRequest{IsPinned: true})
	req := httptest.NewRequest(http.MethodPut, "/update-note-pinned/5", strings.NewReader(body))
	req = withNoteID(asUser(req, 2), "5")
	rec := httptest.NewRecorder()

	h.updateNotePinned(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// searchNotes
// ─────────────────────────────────────────────

func TestSearchNotes_HandlerSuccess(t *testing.T) {
	notes := &mockNoteService{
		searchNotesFn: func(_ context.Context, userID int64, query string) ([]models.Note, error) {
			assert.Equal(t, "milk", query)
			return []models.Note{{NoteID: 1, UserID: userID, Title: "groceries"}}, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := asUser(httptest.NewRequest(http.MethodGet, "/search-note?query=milk", nil), 1)
	rec := httptest.NewRecorder()

	h.searchNotes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.NotesResponse
	decodeEnvelope(t, rec, &resp)
	assert.False(t, resp.Error)
	require.Len(t, resp.Notes, 1)
}

func TestSearchNotes_MissingQuery(t *testing.T) {
	notes := &mockNoteService{
		searchNotesFn: func(_ context.Context, _ int64, _ string) ([]models.Note, error) {
			return nil, service.ErrSearchQueryRequired
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := asUser(httptest.NewRequest(http.MethodGet, "/search-note", nil), 1)
	rec := httptest.NewRecorder()

	h.searchNotes(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.Response
	decodeEnvelope(t, rec, &resp)
	assert.True(t, resp.Error)
	assert.Equal(t, service.ErrSearchQueryRequired.Error(), resp.Message)
}
