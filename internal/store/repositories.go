package store

import (
	"github.com/avolkhin/notekeeper/internal/logger"
)

// Repositories bundles all persistence-layer implementations handed to the
// service layer.
type Repositories struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
}

// NewRepositories constructs every repository over the shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		NoteRepository: NewNoteRepository(db, logger),
	}
}
