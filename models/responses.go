package models

// Response is the envelope shared by every API reply. The Error flag is
// authoritative: HTTP status codes are advisory and clients must inspect
// the flag to decide whether the operation succeeded.
type Response struct {
	// Error reports whether the operation failed.
	Error bool `json:"error"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`
}

// AuthResponse is returned by the create-account and login operations.
type AuthResponse struct {
	Response

	// User is the created account. Present on registration only.
	User *User `json:"user,omitempty"`

	// Email echoes the login key. Present on login only.
	Email string `json:"email,omitempty"`

	// AccessToken is the signed bearer token proving the authentication.
	AccessToken string `json:"accessToken,omitempty"`
}

// UserResponse is returned by the get-user operation. The password hash is
// never serialized (see [User]).
type UserResponse struct {
	Response

	User *User `json:"user,omitempty"`
}

// NoteResponse is returned by note operations that act on a single note.
type NoteResponse struct {
	Response

	Note *Note `json:"note,omitempty"`
}

// NotesResponse is returned by the list and search operations.
type NotesResponse struct {
	Response

	Notes []Note `json:"notes"`
}
