package service

import "errors"

// Validation errors. Each required field that is missing or empty produces
// its own sentinel so the handler can report a field-specific message.
var (
	// ErrFullNameRequired is returned by registration when no full name is
	// supplied.
	ErrFullNameRequired = errors.New("please enter a full name")

	// ErrEmailRequired is returned by registration and login when no email
	// is supplied.
	ErrEmailRequired = errors.New("please enter email address")

	// ErrPasswordRequired is returned by registration and login when no
	// password is supplied.
	ErrPasswordRequired = errors.New("please enter password")

	// ErrTitleRequired is returned by note creation when no title is
	// supplied.
	ErrTitleRequired = errors.New("please enter title")

	// ErrContentRequired is returned by note creation when no content is
	// supplied.
	ErrContentRequired = errors.New("please enter content")

	// ErrNoChangeProvided is returned by note editing when the request
	// carries no field changes at all.
	ErrNoChangeProvided = errors.New("no change provided")

	// ErrSearchQueryRequired is returned by note search when the query text
	// is missing or empty.
	ErrSearchQueryRequired = errors.New("search query required")
)

// Authentication errors.
var (
	// ErrWrongPassword is returned by login when the account exists but the
	// supplied password does not match. Distinct from store.ErrUserNotFound
	// so callers can tell "unknown email" from "bad credentials".
	ErrWrongPassword = errors.New("invalid email or password")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the single outcome for every token
	// verification failure: expired, signature mismatch, or malformed.
	// Low-level JWT errors never cross the service boundary.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
