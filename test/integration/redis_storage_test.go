package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"grimoire-scribe/internal/entity"
	redisrepo "grimoire-scribe/internal/repository/redis"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisNoteRepository(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("Skipping integration test: REDIS_URL not set")
	}

	ctx := context.Background()
	client, err := redisrepo.NewClient(ctx, redisURL)
	require.NoError(t, err)

	repo := redisrepo.NewNoteRepository(client)

	now := time.Now().UTC().Truncate(time.Second)
	note := &entity.Note{
		Id:        uuid.New(),
		Title:     "Integration Scroll",
		Content:   "written to a live redis",
		Color:     "#d4af37",
		CreatedAt: now,
		UpdatedAt: now,
	}

	t.Cleanup(func() {
		repo.Delete(ctx, note.Id)
	})

	t.Run("put then get round-trips", func(t *testing.T) {
		require.NoError(t, repo.Put(ctx, note))

		got, err := repo.Get(ctx, note.Id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, note.Id, got.Id)
		assert.Equal(t, note.Content, got.Content)
		assert.True(t, got.CreatedAt.Equal(note.CreatedAt))
	})

	t.Run("list contains the stored note", func(t *testing.T) {
		notes, err := repo.List(ctx)
		require.NoError(t, err)

		found := false
		for _, n := range notes {
			if n.Id == note.Id {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("delete reports prior existence", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, note.Id)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, note.Id)
		require.NoError(t, err)
		assert.False(t, deleted)

		got, err := repo.Get(ctx, note.Id)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
