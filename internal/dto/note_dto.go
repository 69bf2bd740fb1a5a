package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content" validate:"required"`
	Color   string `json:"color"`
}

// UpdateNoteRequest uses pointers so "field absent" and "field set to zero
// value" stay distinguishable: absent fields keep the stored value.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Pinned  *bool   `json:"pinned"`
	Color   *string `json:"color"`
}

type NoteResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Pinned    bool      `json:"pinned"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
