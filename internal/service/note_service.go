package service

import (
	"context"
	"strings"
	"time"

	"grimoire-scribe/internal/dto"
	"grimoire-scribe/internal/entity"
	"grimoire-scribe/internal/pkg/serverutils"
	"grimoire-scribe/internal/repository/contract"

	"github.com/google/uuid"
)

// DefaultColor is assigned at creation when the payload omits a color, so a
// persisted note never carries an empty color.
const DefaultColor = "#d4af37"

type INoteService interface {
	GetAllNotes(ctx context.Context) ([]*entity.Note, error)
	GetNoteById(ctx context.Context, id uuid.UUID) (*entity.Note, error)
	CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*entity.Note, error)
	UpdateNote(ctx context.Context, id uuid.UUID, req *dto.UpdateNoteRequest) (*entity.Note, error)
	DeleteNote(ctx context.Context, id uuid.UUID) (bool, error)
}

type noteService struct {
	notes contract.NoteRepository
	now   func() time.Time
}

func NewNoteService(notes contract.NoteRepository) INoteService {
	return &noteService{
		notes: notes,
		now:   time.Now,
	}
}

func (s *noteService) GetAllNotes(ctx context.Context) ([]*entity.Note, error) {
	return s.notes.List(ctx)
}

func (s *noteService) GetNoteById(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	return s.notes.Get(ctx, id)
}

func (s *noteService) CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*entity.Note, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, serverutils.NewValidationError("Note content must not be empty", nil)
	}

	color := req.Color
	if color == "" {
		color = DefaultColor
	}

	now := s.now()
	note := &entity.Note{
		Id:        uuid.New(),
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Pinned:    false,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.notes.Put(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) UpdateNote(ctx context.Context, id uuid.UUID, req *dto.UpdateNoteRequest) (*entity.Note, error) {
	note, err := s.notes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NewNotFoundError("Note not found")
	}

	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, serverutils.NewValidationError("Note content must not be empty", nil)
		}
		note.Content = *req.Content
	}
	if req.Title != nil {
		note.Title = strings.TrimSpace(*req.Title)
	}
	if req.Pinned != nil {
		note.Pinned = *req.Pinned
	}
	if req.Color != nil && *req.Color != "" {
		note.Color = *req.Color
	}

	// UpdatedAt never moves backwards, even under a skewed clock.
	if now := s.now(); now.After(note.UpdatedAt) {
		note.UpdatedAt = now
	}

	if err := s.notes.Put(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.notes.Delete(ctx, id)
}
