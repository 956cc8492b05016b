package service

import (
	"github.com/avolkhin/notekeeper/internal/config"
	"github.com/avolkhin/notekeeper/internal/logger"
	"github.com/avolkhin/notekeeper/internal/store"
)

// Services bundles all business-layer implementations handed to the
// transport layer.
type Services struct {
	AuthService AuthService
	NoteService NoteService
}

// NewServices constructs every service over the given repositories and
// application configuration.
func NewServices(repos *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repos.UserRepository, cfg, logger),
		NoteService: NewNoteService(repos.NoteRepository, logger),
	}
}
