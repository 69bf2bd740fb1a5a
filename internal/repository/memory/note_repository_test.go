package memory

import (
	"context"
	"testing"
	"time"

	"grimoire-scribe/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNote(title, content string) *entity.Note {
	now := time.Now()
	return &entity.Note{
		Id:        uuid.New(),
		Title:     title,
		Content:   content,
		Color:     "#d4af37",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestNoteRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("get on missing key returns nil without error", func(t *testing.T) {
		repo := NewNoteRepository()
		note, err := repo.Get(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, note)
	})

	t.Run("put then get round-trips", func(t *testing.T) {
		repo := NewNoteRepository()
		note := newNote("Scroll", "ancient text")
		require.NoError(t, repo.Put(ctx, note))

		got, err := repo.Get(ctx, note.Id)
		require.NoError(t, err)
		assert.Equal(t, note, got)
	})

	t.Run("put on same id overwrites", func(t *testing.T) {
		repo := NewNoteRepository()
		note := newNote("v1", "first")
		require.NoError(t, repo.Put(ctx, note))

		note.Content = "second"
		require.NoError(t, repo.Put(ctx, note))

		got, err := repo.Get(ctx, note.Id)
		require.NoError(t, err)
		assert.Equal(t, "second", got.Content)

		notes, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, notes, 1)
	})

	t.Run("stored note does not alias the caller's entity", func(t *testing.T) {
		repo := NewNoteRepository()
		note := newNote("stable", "kept")
		require.NoError(t, repo.Put(ctx, note))

		note.Content = "mutated after put"

		got, err := repo.Get(ctx, note.Id)
		require.NoError(t, err)
		assert.Equal(t, "kept", got.Content)
	})

	t.Run("list returns every stored note", func(t *testing.T) {
		repo := NewNoteRepository()
		ids := map[uuid.UUID]bool{}
		for i := 0; i < 5; i++ {
			note := newNote("", "body")
			require.NoError(t, repo.Put(ctx, note))
			ids[note.Id] = true
		}

		notes, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 5)
		for _, n := range notes {
			assert.True(t, ids[n.Id])
		}
	})

	t.Run("delete reports prior existence", func(t *testing.T) {
		repo := NewNoteRepository()
		note := newNote("", "to delete")
		require.NoError(t, repo.Put(ctx, note))

		deleted, err := repo.Delete(ctx, note.Id)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, note.Id)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
