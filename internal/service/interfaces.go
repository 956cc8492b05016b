// Package service implements the application's business operations: account
// registration and login with JWT issuance, and ownership-scoped note CRUD.
package service

import (
	"context"

	"github.com/avolkhin/notekeeper/models"
)

// AuthService handles user registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	// RegisterUser creates a new account. All request fields are required;
	// the password is hashed before storage.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates an existing user by email and password.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// GetUser re-resolves the account referenced by a verified token.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and extracts the user ID.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService implements the note operations. Every method takes the
// caller's verified user ID and scopes all storage access by it; no note
// owned by another user is ever visible or mutable.
type NoteService interface {
	// CreateNote persists a new unpinned note owned by userID.
	CreateNote(ctx context.Context, userID int64, req models.CreateNoteRequest) (models.Note, error)

	// EditNote applies a partial update to the note owned by userID.
	EditNote(ctx context.Context, userID, noteID int64, req models.EditNoteRequest) (models.Note, error)

	// ListNotes returns all notes owned by userID, pinned first.
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)

	// SetPinned sets the pinned flag of the note owned by userID to exactly
	// the supplied value.
	SetPinned(ctx context.Context, userID, noteID int64, isPinned bool) (models.Note, error)

	// DeleteNote permanently removes the note owned by userID.
	DeleteNote(ctx context.Context, userID, noteID int64) error

	// SearchNotes returns all notes owned by userID matching query as a
	// case-insensitive substring of title or content.
	SearchNotes(ctx context.Context, userID int64, query string) ([]models.Note, error)
}
