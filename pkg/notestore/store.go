// Package notestore is the client-side source of truth for the note
// collection. Reads go through a cache; mutations call the API first and
// only invalidate cached entries after the server acknowledges, so an
// unacknowledged change never becomes visible locally.
package notestore

import (
	"context"
	"time"

	"grimoire-scribe/pkg/client"

	"github.com/patrickmn/go-cache"
)

const (
	listKey         = "notes:list"
	detailKeyPrefix = "notes:detail:"
)

type Store struct {
	api   *client.Client
	cache *cache.Cache
}

// New creates a store around the given API client. Cached entries expire
// after ttl as a backstop; invalidation after mutations is the primary
// freshness mechanism.
func New(api *client.Client, ttl time.Duration) *Store {
	return &Store{
		api:   api,
		cache: cache.New(ttl, 2*ttl),
	}
}

// Notes returns the cached collection, fetching from the API on a miss.
func (s *Store) Notes(ctx context.Context) ([]client.Note, error) {
	if x, found := s.cache.Get(listKey); found {
		return x.([]client.Note), nil
	}

	notes, err := s.api.GetNotes(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(listKey, notes, cache.DefaultExpiration)
	return notes, nil
}

// Note returns one note, from the detail cache or the API.
func (s *Store) Note(ctx context.Context, id string) (*client.Note, error) {
	if x, found := s.cache.Get(detailKeyPrefix + id); found {
		note := x.(client.Note)
		return &note, nil
	}

	note, err := s.api.GetNoteById(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(detailKeyPrefix+id, *note, cache.DefaultExpiration)
	return note, nil
}

func (s *Store) Add(ctx context.Context, payload client.CreateNotePayload) (*client.Note, error) {
	note, err := s.api.CreateNote(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(listKey)
	return note, nil
}

func (s *Store) Edit(ctx context.Context, id string, payload client.UpdateNotePayload) (*client.Note, error) {
	note, err := s.api.UpdateNote(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(listKey)
	s.cache.Delete(detailKeyPrefix + id)
	return note, nil
}

// TogglePin flips the pinned flag of a note.
func (s *Store) TogglePin(ctx context.Context, id string) (*client.Note, error) {
	note, err := s.Note(ctx, id)
	if err != nil {
		return nil, err
	}
	pinned := !note.Pinned
	return s.Edit(ctx, id, client.UpdateNotePayload{Pinned: &pinned})
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteNote(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(listKey)
	s.cache.Delete(detailKeyPrefix + id)
	return nil
}
