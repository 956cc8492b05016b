package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkhin/notekeeper/internal/logger"
	"github.com/avolkhin/notekeeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It executes all note CRUD operations against the "notes" table using the
// embedded [*DB] connection.
//
// Every method that filters notes includes the owner's user_id in its WHERE
// clause; ownership is never checked in application code after the fact.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote persists a new note owned by note.UserID and returns it with
// server-assigned fields (NoteID, CreatedOn).
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if note.Tags == nil {
		note.Tags = models.Tags{}
	}

	row := r.DB.QueryRowContext(ctx, createNote, note.UserID, note.Title, note.Content, note.Tags, note.IsPinned)

	var created models.Note
	if err := scanNote(row, &created); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Int64("user_id", note.UserID).Msg("error creating note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindNote retrieves a single note by (noteID, userID).
//
// Returns [ErrNoteNotFound] when no row matches, which covers both a missing
// note and a note owned by a different user.
func (r *noteRepository) FindNote(ctx context.Context, noteID, userID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, findNote, noteID, userID)

	var note models.Note
	if err := scanNote(row, &note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.FindNote").Int64("note_id", noteID).Int64("user_id", userID).Msg("error finding note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return note, nil
}

// ListNotes returns every note owned by userID, pinned notes first and
// newest-first within each group.
//
// Returns an empty slice when the user has no notes.
func (r *noteRepository) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	return r.queryNotes(ctx, "*noteRepository.ListNotes", userID, listNotes, userID)
}

// UpdateNote applies the non-nil fields of update to the note identified by
// (update.NoteID, update.UserID). The UPDATE is built dynamically so that
// omitted fields are left untouched, and an explicitly supplied empty tag
// list clears the tags.
//
// Returns [ErrNoteNotFound] when the note is absent or owned by another user,
// and [ErrBuildingSQLQuery] when update carries no field changes at all.
func (r *noteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.UpdateNote").
			Int64("note_id", update.NoteID).
			Int64("user_id", update.UserID).
			Msg("failed to build update query")
		return models.Note{}, err
	}

	row := r.DB.QueryRowContext(ctx, query, args...)

	var updated models.Note
	if err := scanNote(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).
			Str("func", "*noteRepository.UpdateNote").
			Int64("note_id", update.NoteID).
			Int64("user_id", update.UserID).
			Msg("error updating note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteNote removes the note identified by (noteID, userID). Deletion is
// immediate and permanent; there is no soft-delete.
//
// Returns [ErrNoteNotFound] when no row was removed, which covers both a
// missing note and a note owned by a different user.
func (r *noteRepository) DeleteNote(ctx context.Context, noteID, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteNote, noteID, userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Int64("note_id", noteID).Int64("user_id", userID).Msg("error deleting note")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Int64("note_id", noteID).Msg("error reading affected rows")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// SearchNotes returns all notes owned by userID whose title or content
// contains query as a case-insensitive substring. An empty result set is a
// valid success outcome.
func (r *noteRepository) SearchNotes(ctx context.Context, userID int64, query string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildSearchNotesQuery(userID, query)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.SearchNotes").
			Int64("user_id", userID).
			Msg("failed to build search query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryNotes(ctx, "*noteRepository.SearchNotes", userID, sqlQuery, args...)
}

// queryNotes executes a multi-row note query and scans the result set.
func (r *noteRepository) queryNotes(ctx context.Context, funcName string, userID int64, query string, args ...any) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("failed to execute notes query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)

	for rows.Next() {
		var note models.Note

		scanErr := rows.Scan(
			&note.NoteID,
			&note.UserID,
			&note.Title,
			&note.Content,
			&note.Tags,
			&note.IsPinned,
			&note.CreatedOn,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Int64("user_id", userID).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// scanNote scans a single note row in [noteColumns] order.
func scanNote(row *sql.Row, note *models.Note) error {
	return row.Scan(
		&note.NoteID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.Tags,
		&note.IsPinned,
		&note.CreatedOn,
	)
}
