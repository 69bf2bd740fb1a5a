package memory

import (
	"context"

	"grimoire-scribe/internal/entity"
	"grimoire-scribe/internal/mapper"
	"grimoire-scribe/internal/model"
	"grimoire-scribe/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type NoteRepository struct {
	cache  *cache.Cache
	mapper *mapper.NoteMapper
}

// NewNoteRepository creates an isolated in-memory store. Notes never expire;
// the cache lives as long as the owning container.
func NewNoteRepository() contract.NoteRepository {
	c := cache.New(cache.NoExpiration, 0)
	return &NoteRepository{
		cache:  c,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepository) Get(_ context.Context, id uuid.UUID) (*entity.Note, error) {
	x, found := r.cache.Get(id.String())
	if !found {
		return nil, nil
	}
	record := x.(model.NoteRecord)
	return r.mapper.ToEntity(&record), nil
}

func (r *NoteRepository) List(_ context.Context) ([]*entity.Note, error) {
	items := r.cache.Items()
	notes := make([]*entity.Note, 0, len(items))
	for _, item := range items {
		record := item.Object.(model.NoteRecord)
		notes = append(notes, r.mapper.ToEntity(&record))
	}
	return notes, nil
}

func (r *NoteRepository) Put(_ context.Context, note *entity.Note) error {
	// Stored by value so later mutations of the entity can't alias the cache.
	r.cache.Set(note.Id.String(), *r.mapper.ToRecord(note), cache.NoExpiration)
	return nil
}

func (r *NoteRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	key := id.String()
	if _, found := r.cache.Get(key); !found {
		return false, nil
	}
	r.cache.Delete(key)
	return true, nil
}
