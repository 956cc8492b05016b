package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkhin/notekeeper/internal/logger"
	"github.com/avolkhin/notekeeper/internal/store"
	"github.com/avolkhin/notekeeper/models"
)

// noteService is the concrete implementation of NoteService. All methods
// receive the caller's verified user ID and pass it down to the repository,
// which includes it in every WHERE clause.
type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService wired to the given NoteRepository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// CreateNote persists a new note owned by userID.
//
// Title and content are required, each with its own sentinel; tags default
// to an empty list and the note starts unpinned.
func (s *noteService) CreateNote(ctx context.Context, userID int64, req models.CreateNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" {
		return models.Note{}, ErrTitleRequired
	}
	if req.Content == "" {
		return models.Note{}, ErrContentRequired
	}

	tags := req.Tags
	if tags == nil {
		tags = models.Tags{}
	}

	created, err := s.noteRepository.CreateNote(ctx, models.Note{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     tags,
		IsPinned: false,
		UserID:   userID,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return created, nil
}

// EditNote applies a partial update to the note identified by noteID and
// owned by userID.
//
// The request is rejected with ErrNoChangeProvided when it carries no fields
// at all; a pin-only update passes the guard. Each supplied field replaces
// the stored value, including an explicitly supplied empty tag list; absent
// fields are left untouched. Neither the note ID nor the owner can ever be
// changed.
//
// Returns store.ErrNoteNotFound when the note is absent or owned by another
// user.
func (s *noteService) EditNote(ctx context.Context, userID, noteID int64, req models.EditNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	update := models.NoteUpdate{
		NoteID:   noteID,
		UserID:   userID,
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPinned: req.IsPinned,
	}

	if update.IsEmpty() {
		return models.Note{}, ErrNoChangeProvided
	}

	if req.Title != nil && *req.Title == "" {
		return models.Note{}, ErrTitleRequired
	}
	if req.Content != nil && *req.Content == "" {
		return models.Note{}, ErrContentRequired
	}

	updated, err := s.noteRepository.UpdateNote(ctx, update)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return models.Note{}, err
		}

		log.Err(err).Int64("note_id", noteID).Int64("user_id", userID).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updated, nil
}

// ListNotes returns every note owned by userID, pinned first.
func (s *noteService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes, err := s.noteRepository.ListNotes(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing notes ended with error")
		return nil, fmt.Errorf("listing notes ended with error: %w", err)
	}

	return notes, nil
}

// SetPinned sets the pinned flag of the note identified by noteID and owned
// by userID to exactly isPinned, including explicit false.
//
// Returns store.ErrNoteNotFound when the note is absent or owned by another
// user.
func (s *noteService) SetPinned(ctx context.Context, userID, noteID int64, isPinned bool) (models.Note, error) {
	log := logger.FromContext(ctx)

	updated, err := s.noteRepository.UpdateNote(ctx, models.NoteUpdate{
		NoteID:   noteID,
		UserID:   userID,
		IsPinned: &isPinned,
	})
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return models.Note{}, err
		}

		log.Err(err).Int64("note_id", noteID).Int64("user_id", userID).Msg("note pin update ended with error")
		return models.Note{}, fmt.Errorf("note pin update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteNote permanently removes the note identified by noteID and owned by
// userID. A note owned by another user reports store.ErrNoteNotFound rather
// than revealing its existence.
func (s *noteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	if err := s.noteRepository.DeleteNote(ctx, noteID, userID); err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return err
		}

		log.Err(err).Int64("note_id", noteID).Int64("user_id", userID).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}

// SearchNotes returns every note owned by userID whose title or content
// contains query as a case-insensitive substring. An empty result is a
// valid success outcome; an empty query is rejected.
func (s *noteService) SearchNotes(ctx context.Context, userID int64, query string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if query == "" {
		return nil, ErrSearchQueryRequired
	}

	notes, err := s.noteRepository.SearchNotes(ctx, userID, query)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("note search ended with error")
		return nil, fmt.Errorf("note search ended with error: %w", err)
	}

	return notes, nil
}
