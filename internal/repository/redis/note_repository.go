package redis

import (
	"context"
	"encoding/json"
	"errors"

	"grimoire-scribe/internal/entity"
	"grimoire-scribe/internal/mapper"
	"grimoire-scribe/internal/model"
	"grimoire-scribe/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "note:"

// NewClient connects to Redis from a redis:// URL and verifies the
// connection with a ping.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

type NoteRepository struct {
	client *redis.Client
	mapper *mapper.NoteMapper
}

func NewNoteRepository(client *redis.Client) contract.NoteRepository {
	return &NoteRepository{
		client: client,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	raw, err := r.client.Get(ctx, keyPrefix+id.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record model.NoteRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&record), nil
}

func (r *NoteRepository) List(ctx context.Context) ([]*entity.Note, error) {
	var notes []*entity.Note

	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		raw, err := r.client.Get(ctx, iter.Val()).Bytes()
		if errors.Is(err, redis.Nil) {
			// Deleted between SCAN and GET, skip.
			continue
		}
		if err != nil {
			return nil, err
		}

		var record model.NoteRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, err
		}
		notes = append(notes, r.mapper.ToEntity(&record))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	if notes == nil {
		notes = []*entity.Note{}
	}
	return notes, nil
}

func (r *NoteRepository) Put(ctx context.Context, note *entity.Note) error {
	record := r.mapper.ToRecord(note)
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, record.Key(), raw, 0).Err()
}

func (r *NoteRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	removed, err := r.client.Del(ctx, keyPrefix+id.String()).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}
