package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.welcome)
		r.Post("/create-account", h.createAccount)
		r.Post("/login", h.login)
	})

	// routes behind the auth gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/get-user", h.getUser)
		r.Post("/add-note", h.addNote)
		r.Put("/edit-note/{noteId}", h.editNote)
		r.Get("/get-all-notes", h.getAllNotes)
		r.Delete("/delete-note/{noteId}", h.deleteNote)
		r.Put("/update-note-pinned/{noteId}", h.updateNotePinned)
		r.Get("/search-note", h.searchNotes)
	})

	return router
}
