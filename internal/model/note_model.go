package model

import (
	"time"

	"github.com/google/uuid"
)

// NoteRecord is the stored representation of a note: one JSON document per
// id key in the key-value backend.
type NoteRecord struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Pinned    bool      `json:"pinned"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Key returns the storage key for this record.
func (r NoteRecord) Key() string {
	return "note:" + r.Id.String()
}
