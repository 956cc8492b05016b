// Package store implements the PostgreSQL persistence layer: user and note
// repositories, connection management, and schema migrations.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/avolkhin/notekeeper/models"
)

// UserRepository persists and looks up account records.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields (UserID, CreatedOn). Returns ErrEmailAlreadyExists when the
	// email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the user with the given email.
	// Returns ErrUserNotFound when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID retrieves the user with the given ID.
	// Returns ErrUserNotFound when no such account exists.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// NoteRepository persists and queries notes. Every method is scoped by the
// owning user; a note belonging to another user is indistinguishable from a
// missing one.
type NoteRepository interface {
	// CreateNote persists a new note and returns it with server-assigned
	// fields (NoteID, CreatedOn).
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// FindNote retrieves the note with the given ID owned by userID.
	// Returns ErrNoteNotFound when absent or owned by someone else.
	FindNote(ctx context.Context, noteID, userID int64) (models.Note, error)

	// ListNotes returns all notes owned by userID, pinned notes first.
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)

	// UpdateNote applies the non-nil fields of update to the note identified
	// by (update.NoteID, update.UserID) and returns the updated note.
	// Returns ErrNoteNotFound when absent or owned by someone else.
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)

	// DeleteNote removes the note with the given ID owned by userID.
	// Returns ErrNoteNotFound when absent or owned by someone else.
	DeleteNote(ctx context.Context, noteID, userID int64) error

	// SearchNotes returns all notes owned by userID whose title or content
	// contains query as a case-insensitive substring.
	SearchNotes(ctx context.Context, userID int64, query string) ([]models.Note, error)
}
