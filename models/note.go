package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Note is a single text note owned by exactly one user. Notes are only ever
// visible and mutable through operations scoped by UserID.
type Note struct {
	// NoteID is the unique identifier of the note,
	// assigned by the database on creation.
	NoteID int64 `json:"id"`

	// Title is the note heading. Non-empty.
	Title string `json:"title"`

	// Content is the note body. Non-empty.
	Content string `json:"content"`

	// Tags is an ordered list of labels attached to the note.
	// Defaults to an empty list.
	Tags Tags `json:"tags"`

	// IsPinned marks the note to be listed before unpinned ones.
	IsPinned bool `json:"isPinned"`

	// UserID references the owning user. Immutable after creation.
	UserID int64 `json:"userId"`

	// CreatedOn is the timestamp when the note was created.
	CreatedOn time.Time `json:"createdOn"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// Tags is an ordered list of note labels stored as a JSONB column.
type Tags []string

// Value implements [driver.Valuer]. A nil slice is stored as an empty
// JSON array so the column never holds SQL NULL.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}

	data, err := json.Marshal([]string(t))
	if err != nil {
		return nil, fmt.Errorf("error marshaling tags: %w", err)
	}

	return data, nil
}

// Scan implements [sql.Scanner] for JSONB values returned by the driver
// either as []byte or string.
func (t *Tags) Scan(src any) error {
	if src == nil {
		*t = Tags{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported source type for tags: %T", src)
	}

	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return fmt.Errorf("error unmarshaling tags: %w", err)
	}

	*t = tags
	return nil
}

// NoteUpdate represents criteria for a partial note update.
// Only non-nil fields will be changed; nil means "leave untouched".
// An explicitly supplied empty tag list clears the tags.
type NoteUpdate struct {
	// NoteID is the unique identifier of the note to update. Required.
	NoteID int64 `json:"id"`

	// UserID is the owner of the note. Required for data isolation.
	UserID int64 `json:"userId"`

	// Title is the new note heading. If nil, the field is not updated.
	Title *string `json:"title,omitempty"`

	// Content is the new note body. If nil, the field is not updated.
	Content *string `json:"content,omitempty"`

	// Tags is the new tag list. If nil, the field is not updated.
	Tags *Tags `json:"tags,omitempty"`

	// IsPinned is the new pinned flag. If nil, the field is not updated.
	IsPinned *bool `json:"isPinned,omitempty"`
}

// IsEmpty reports whether the update carries no field changes at all.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Tags == nil && u.IsPinned == nil
}
