package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Note is the client-side view of a note as returned by the API.
type Note struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Pinned    bool      `json:"pinned"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// validate shape-checks a decoded note. The server contract promises a UUID
// id, non-empty content and both timestamps on every note.
func (n *Note) validate() error {
	if _, err := uuid.Parse(n.Id); err != nil {
		return &ContractError{Reason: "note id is not a valid UUID"}
	}
	if n.Content == "" {
		return &ContractError{Reason: "note content is empty"}
	}
	if n.CreatedAt.IsZero() || n.UpdatedAt.IsZero() {
		return &ContractError{Reason: "note timestamps are missing"}
	}
	return nil
}

type CreateNotePayload struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
	Color   string `json:"color,omitempty"`
}

type UpdateNotePayload struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Pinned  *bool   `json:"pinned,omitempty"`
	Color   *string `json:"color,omitempty"`
}

// errorEnvelope accepts both the current envelope ({error, details}) and the
// legacy variants ({statusCode, message, error}).
type errorEnvelope struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func (e *errorEnvelope) message() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) GetNotes(ctx context.Context) ([]Note, error) {
	var notes []Note
	if err := c.do(ctx, http.MethodGet, "/notes", nil, &notes); err != nil {
		return nil, err
	}
	for i := range notes {
		if err := notes[i].validate(); err != nil {
			return nil, err
		}
	}
	return notes, nil
}

func (c *Client) GetNoteById(ctx context.Context, id string) (*Note, error) {
	if id == "" {
		return nil, fmt.Errorf("note id is required")
	}
	var note Note
	if err := c.do(ctx, http.MethodGet, "/notes/"+id, nil, &note); err != nil {
		return nil, err
	}
	if err := note.validate(); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) CreateNote(ctx context.Context, payload CreateNotePayload) (*Note, error) {
	var note Note
	if err := c.do(ctx, http.MethodPost, "/notes", payload, &note); err != nil {
		return nil, err
	}
	if err := note.validate(); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) UpdateNote(ctx context.Context, id string, payload UpdateNotePayload) (*Note, error) {
	if id == "" {
		return nil, fmt.Errorf("note id is required for update")
	}
	var note Note
	if err := c.do(ctx, http.MethodPut, "/notes/"+id, payload, &note); err != nil {
		return nil, err
	}
	if err := note.validate(); err != nil {
		return nil, err
	}
	return &note, nil
}

// DeleteNote expects 204 No Content and returns no value.
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("note id is required for delete")
	}
	return c.do(ctx, http.MethodDelete, "/notes/"+id, nil, nil)
}

// do sends one request and decodes the response into out. Non-2xx responses
// become *APIError; a 2xx body that fails to decode becomes *ContractError.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.parseError(resp)
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ContractError{Reason: "response body is not valid JSON for the expected shape"}
	}
	return nil
}

func (c *Client) parseError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: resp.Status}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if msg := envelope.message(); msg != "" {
			apiErr.Message = msg
		}
	}
	return apiErr
}
