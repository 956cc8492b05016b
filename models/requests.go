package models

// RegisterRequest is the payload of the create-account operation.
// All three fields are required; each absent field produces its own
// validation outcome.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload of the login operation.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateNoteRequest is the payload of the add-note operation.
// Tags may be omitted and defaults to an empty list.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Tags    Tags   `json:"tags"`
}

// EditNoteRequest is the payload of the edit-note operation. Pointer fields
// distinguish "absent" (nil, leave unchanged) from an explicitly supplied
// value, so an empty tag list can clear the tags.
type EditNoteRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Tags     *Tags   `json:"tags,omitempty"`
	IsPinned *bool   `json:"isPinned,omitempty"`
}

// PinNoteRequest is the payload of the update-note-pinned operation.
// The flag is applied exactly as supplied, including explicit false.
type PinNoteRequest struct {
	IsPinned bool `json:"isPinned"`
}
