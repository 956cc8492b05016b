package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avolkhin/notekeeper/internal/logger"
	"github.com/avolkhin/notekeeper/internal/service"
	"github.com/avolkhin/notekeeper/internal/store"
	"github.com/avolkhin/notekeeper/internal/utils"
	"github.com/avolkhin/notekeeper/models"
)

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		writeFailure(w, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	var req models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	createdNote, err := h.services.NoteService.CreateNote(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired),
			errors.Is(err, service.ErrContentRequired):
			log.Err(err).Msg("invalid note data provided")
			writeFailure(w, http.StatusBadRequest, err.Error())
			return
		default:
			log.Err(err).Msg("unexpected error occurred during note creation")
			writeFailure(w, http.StatusInternalServerError, msgInternalError)
			return
		}
	}

	utils.WriteJSON(w, models.NoteResponse{
		Response: ok("note added successfully"),
		Note:     &createdNote,
	}, http.StatusOK)
}

func (h *Handler) editNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		writeFailure(w, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	noteID, parseErr := noteIDFromRequest(r, log)
	if parseErr != nil {
		writeFailure(w, http.StatusNotFound, msgInvalidNoteID)
		return
	}

	var req models.EditNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	updatedNote, err := h.services.NoteService.EditNote(ctx, userID, noteID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoChangeProvided),
			errors.Is(err, service.ErrTitleRequired),
			errors.Is(err, service.ErrContentRequired):
			log.Err(err).Int64("note_id", noteID).Msg("invalid note update provided")
			writeFailure(w, http.StatusBadRequest, err.Error())
			return
		case errors.Is(err, store.ErrNoteNotFound):
			log.Err(err).Int64("note_id", noteID).Msg("no note was found")
			writeFailure(w, http.StatusNotFound, store.ErrNoteNotFound.Error())
			return
		default:
			log.Err(err).Int64("note_id", noteID).Msg("unexpected error occurred during note update")
			writeFailure(w, http.StatusInternalServerError, msgInternalError)
			return
		}
	}

	utils.WriteJSON(w, models.NoteResponse{
		Response: ok("note updated successfully"),
		Note:     &updatedNote,
	}, http.StatusOK)
}

func (h *Handler) getAllNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		writeFailure(w, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	notes, err := h.services.NoteService.ListNotes(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during note listing")
		writeFailure(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	utils.WriteJSON(w, models.NotesResponse{
		Response: ok("all notes retrieved successfully"),
		Notes:    notes,
	}, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		writeFailure(w, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	noteID, parseErr := noteIDFromRequest(r, log)
	if parseErr != nil {
		writeFailure(w, http.StatusNotFound, msgInvalidNoteID)
		return
	}

	if err := h.services.NoteService.DeleteNote(ctx, userID, noteID); err != nil {
		switch {
		case errors.Is(err, store.ErrNoteNotFound):
			log.Err(err).Int64("note_id", noteID).Msg("no note was found")
			writeFailure(w, http.StatusNotFound, store.ErrNoteNotFound.Error())
			return
		default:
			log.Err(err).Int64("note_id", noteID).Msg("unexpected error occurred during note deletion")
			writeFailure(w, http.StatusInternalServerError, msgInternalError)
			return
		}
	}

	utils.WriteJSON(w, ok("note deleted successfully"), http.StatusOK)
}

func (h *Handler) updateNotePinned(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		writeFailure(w, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	noteID, parseErr := noteIDFromRequest(r, log)
	if parseErr != nil {
		writeFailure(w, http.StatusNotFound, msgInvalidNoteID)
		return
	}

	var req models.PinNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	updatedNote, err := h.services.NoteService.SetPinned(ctx, userID, noteID, req.IsPinned)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoteNotFound):
			log.Err(err).Int64("note_id", noteID).Msg("no note was found")
			writeFailure(w, http.StatusNotFound, store.ErrNoteNotFound.Error())
			return
		default:
			log.Err(err).Int64("note_id", noteID).Msg("unexpected error occurred during note pin update")
			writeFailure(w, http.StatusInternalServerError, msgInternalError)
			return
		}
	}

	utils.WriteJSON(w, models.NoteResponse{
		Response: ok("note pin updated successfully"),
		Note:     &updatedNote,
	}, http.StatusOK)
}

func (h *Handler) searchNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		writeFailure(w, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	query := r.URL.Query().Get("query")

	notes, err := h.services.NoteService.SearchNotes(ctx, userID, query)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSearchQueryRequired):
			log.Err(err).Msg("empty search query provided")
			writeFailure(w, http.StatusBadRequest, err.Error())
			return
		default:
			log.Err(err).Msg("unexpected error occurred during note search")
			writeFailure(w, http.StatusInternalServerError, msgInternalError)
			return
		}
	}

	utils.WriteJSON(w, models.NotesResponse{
		Response: ok("notes matching the search query retrieved successfully"),
		Notes:    notes,
	}, http.StatusOK)
}

// noteIDFromRequest extracts and parses the noteId route parameter. A
// non-numeric value cannot refer to any note, so callers treat the error as
// not found.
func noteIDFromRequest(r *http.Request, log *logger.Logger) (int64, error) {
	rawNoteID := chi.URLParam(r, "noteId")

	noteID, err := strconv.ParseInt(rawNoteID, 10, 64)
	if err != nil {
		log.Err(err).Str("note_id", rawNoteID).Msg("invalid note id")
		return 0, err
	}

	return noteID, nil
}
