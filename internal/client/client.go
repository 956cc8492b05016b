package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/avolkhin/notekeeper/models"
)

// Config holds the settings for constructing an API [Client].
type Config struct {
	// BaseURL is the server's root address (e.g. "http://localhost:8080").
	BaseURL string

	// Timeout bounds every request. Defaults to 15 seconds.
	Timeout time.Duration
}

// Client is a notekeeper API client. It is safe for concurrent use.
type Client struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewClient constructs a [Client] for the given configuration.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{client: cli}
}

// SetToken stores token (whitespace-trimmed) for use in the Authorization
// header of all subsequent authenticated requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the client, or an empty
// string if none has been set.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Register creates a new account and stores the returned bearer token.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var result models.AuthResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/create-account")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapEnvelopeError(resp, result.Response); err != nil {
		return models.User{}, err
	}

	c.SetToken(result.AccessToken)

	if result.User == nil {
		return models.User{}, fmt.Errorf("register: no user in response")
	}
	return *result.User, nil
}

// Login authenticates an existing account and stores the returned bearer
// token.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var result models.AuthResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapEnvelopeError(resp, result.Response); err != nil {
		return "", err
	}

	c.SetToken(result.AccessToken)

	return result.AccessToken, nil
}

// GetUser returns the account referenced by the stored token.
func (c *Client) GetUser(ctx context.Context) (models.User, error) {
	var result models.UserResponse

	resp, err := c.authedRequest(ctx).
		SetResult(&result).
		Get("/get-user")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapEnvelopeError(resp, result.Response); err != nil {
		return models.User{}, err
	}

	if result.User == nil {
		return models.User{}, fmt.Errorf("get user: no user in response")
	}
	return *result.User, nil
}

// AddNote creates a new note.
func (c *Client) AddNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	var result models.NoteResponse

	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/add-note")
	if err != nil {
		return models.Note{}, fmt.Errorf("add note request: %w", err)
	}
	if err = mapEnvelopeError(resp, result.Response); err != nil {
		return models.Note{}, err
	}

	return noteFromResponse(result, "add note")
}

// EditNote applies a partial update to the note with the given ID.
func (c *Client) EditNote(ctx context.Context, noteID int64, req models.EditNoteRequest) (models.Note, error) {
	var result models.NoteResponse

	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Put(fmt.Sprintf("/edit-note/%d", noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("edit note request: %w", err)
	}
	if err = mapEnvelopeError(resp, result.Response); err != nil {
		return models.Note{}, err
	}

	return noteFromResponse(result, "edit note")
}

// GetAllNotes returns every note owned by the authenticated user, pinned
// notes first.
func (c *Client) GetAllNotes(ctx context.Context) ([]models.Note, error) {
	var result models.NotesResponse

	resp, err := c.authedRequest(ctx).
		SetResult(&result).
		Get("/get-all-notes")
	if err != nil {
		return nil, fmt.Errorf("get all notes request: %w", err)
	}
	if err = mapEnvelopeError(resp, result.Response); err != nil {
		return nil, err
	}

	return result.Notes, nil
}

// DeleteNote permanently removes the note with the given ID.
func (c *Client) DeleteNote(ctx context.Context, noteID int64) error {
	var result models.Response

	resp, err := c.authedRequest(ctx).
		SetResult(&result).
		Delete(fmt.Sprintf("/delete-note/%d", noteID))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapEnvelopeError(resp, result)
}

// UpdateNotePinned sets the pinned flag of the note with the given ID.
func (c *Client) UpdateNotePinned(ctx context.Context, noteID int64, isPinned bool) (models.Note, error) {
	var result models.NoteResponse

	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PinNoteRequest{IsPinned: isPinned}).
		SetResult(&result).
		Put(fmt.Sprintf("/update-note-pinned/%d", noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("update note pinned request: %w", err)
	}
	if err = mapEnvelopeError(resp, result.Response); err != nil {
		return models.Note{}, err
	}

	return noteFromResponse(result, "update note pinned")
}

// SearchNotes returns the authenticated user's notes matching query as a
// case-insensitive substring of title or content.
func (c *Client) SearchNotes(ctx context.Context, query string) ([]models.Note, error) {
	var result models.NotesResponse

	resp, err := c.authedRequest(ctx).
		SetQueryParam("query", query).
		SetResult(&result).
		Get("/search-note")
	if err != nil {
		return nil, fmt.Errorf("search notes request: %w", err)
	}
	if err = mapEnvelopeError(resp, result.Response); err != nil {
		return nil, err
	}

	return result.Notes, nil
}

func (c *Client) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func noteFromResponse(result models.NoteResponse, operation string) (models.Note, error) {
	if result.Note == nil {
		return models.Note{}, fmt.Errorf("%s: no note in response", operation)
	}
	return *result.Note, nil
}

// mapEnvelopeError converts a failed reply into a sentinel error. The
// envelope flag decides failure; the status code only picks the sentinel.
func mapEnvelopeError(resp *resty.Response, envelope models.Response) error {
	if !envelope.Error && resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := strings.TrimSpace(envelope.Message)
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}
