package contract

import (
	"context"

	"grimoire-scribe/internal/entity"

	"github.com/google/uuid"
)

// NoteRepository is the key-value persistence surface for notes. Absence of
// a key is not an error: Get returns nil and Delete returns false. Put is an
// upsert; the same id overwrites, last write wins.
type NoteRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Note, error)
	List(ctx context.Context) ([]*entity.Note, error)
	Put(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
