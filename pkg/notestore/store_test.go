package notestore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"grimoire-scribe/pkg/client"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend is a minimal in-memory notes API that counts requests, so
// tests can observe cache hits vs refetches.
type fakeBackend struct {
	mu        sync.Mutex
	notes     map[string]client.Note
	listCalls int
	getCalls  int
	failAll   bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{notes: map[string]client.Note{}}
}

func (b *fakeBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		if b.failAll {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			return
		}

		id := strings.TrimPrefix(r.URL.Path, "/notes/")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/notes":
			b.listCalls++
			list := make([]client.Note, 0, len(b.notes))
			for _, n := range b.notes {
				list = append(list, n)
			}
			json.NewEncoder(w).Encode(list)

		case r.Method == http.MethodGet:
			b.getCalls++
			n, ok := b.notes[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"error": "Note not found"})
				return
			}
			json.NewEncoder(w).Encode(n)

		case r.Method == http.MethodPost:
			var payload client.CreateNotePayload
			json.NewDecoder(r.Body).Decode(&payload)
			now := time.Now().UTC()
			n := client.Note{
				Id:        uuid.NewString(),
				Title:     payload.Title,
				Content:   payload.Content,
				Color:     "#d4af37",
				CreatedAt: now,
				UpdatedAt: now,
			}
			b.notes[n.Id] = n
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(n)

		case r.Method == http.MethodPut:
			n, ok := b.notes[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"error": "Note not found"})
				return
			}
			var payload client.UpdateNotePayload
			json.NewDecoder(r.Body).Decode(&payload)
			if payload.Content != nil {
				n.Content = *payload.Content
			}
			if payload.Pinned != nil {
				n.Pinned = *payload.Pinned
			}
			n.UpdatedAt = time.Now().UTC()
			b.notes[id] = n
			json.NewEncoder(w).Encode(n)

		case r.Method == http.MethodDelete:
			if _, ok := b.notes[id]; !ok {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"error": "Note not found"})
				return
			}
			delete(b.notes, id)
			w.WriteHeader(http.StatusNoContent)
		}
	}
}

func newTestStore(t *testing.T) (*Store, *fakeBackend) {
	t.Helper()
	backend := newFakeBackend()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	return New(client.New(srv.URL), time.Minute), backend
}

func TestNotesCachesTheList(t *testing.T) {
	ctx := context.Background()
	store, backend := newTestStore(t)

	_, err := store.Notes(ctx)
	require.NoError(t, err)
	_, err = store.Notes(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, backend.listCalls)
}

func TestAddInvalidatesTheList(t *testing.T) {
	ctx := context.Background()
	store, backend := newTestStore(t)

	notes, err := store.Notes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)

	created, err := store.Add(ctx, client.CreateNotePayload{Content: "fresh"})
	require.NoError(t, err)

	// Next read refetches and sees the new note within one round-trip.
	notes, err = store.Notes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, created.Id, notes[0].Id)
	assert.Equal(t, 2, backend.listCalls)
}

func TestEditInvalidatesListAndDetail(t *testing.T) {
	ctx := context.Background()
	store, backend := newTestStore(t)

	created, err := store.Add(ctx, client.CreateNotePayload{Content: "v1"})
	require.NoError(t, err)

	// Prime both caches.
	_, err = store.Notes(ctx)
	require.NoError(t, err)
	_, err = store.Note(ctx, created.Id)
	require.NoError(t, err)
	priorGets := backend.getCalls

	content := "v2"
	_, err = store.Edit(ctx, created.Id, client.UpdateNotePayload{Content: &content})
	require.NoError(t, err)

	got, err := store.Note(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Content)
	assert.Equal(t, priorGets+1, backend.getCalls)
}

func TestTogglePinFlipsTheFlag(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	created, err := store.Add(ctx, client.CreateNotePayload{Content: "pin me"})
	require.NoError(t, err)

	toggled, err := store.TogglePin(ctx, created.Id)
	require.NoError(t, err)
	assert.True(t, toggled.Pinned)

	toggled, err = store.TogglePin(ctx, created.Id)
	require.NoError(t, err)
	assert.False(t, toggled.Pinned)
}

func TestDeleteInvalidatesCaches(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	created, err := store.Add(ctx, client.CreateNotePayload{Content: "ephemeral"})
	require.NoError(t, err)
	_, err = store.Notes(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.Id))

	notes, err := store.Notes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestFailedMutationKeepsPriorState(t *testing.T) {
	ctx := context.Background()
	store, backend := newTestStore(t)

	created, err := store.Add(ctx, client.CreateNotePayload{Content: "stable"})
	require.NoError(t, err)
	_, err = store.Notes(ctx)
	require.NoError(t, err)

	backend.mu.Lock()
	backend.failAll = true
	backend.mu.Unlock()

	content := "never lands"
	_, err = store.Edit(ctx, created.Id, client.UpdateNotePayload{Content: &content})
	require.Error(t, err)

	backend.mu.Lock()
	backend.failAll = false
	backend.mu.Unlock()

	// Cache was not invalidated, so this read is served without a refetch
	// and still shows the acknowledged state.
	priorListCalls := backend.listCalls
	notes, err := store.Notes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "stable", notes[0].Content)
	assert.Equal(t, priorListCalls, backend.listCalls)
}
