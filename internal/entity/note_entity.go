package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID
	Title     string
	Content   string
	Pinned    bool
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
