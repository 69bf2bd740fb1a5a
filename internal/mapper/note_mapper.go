package mapper

import (
	"grimoire-scribe/internal/dto"
	"grimoire-scribe/internal/entity"
	"grimoire-scribe/internal/model"
)

// UntitledTitle is the display default substituted for notes saved without
// a title. Stored titles stay empty so updates can tell "never set" apart
// from an explicit title.
const UntitledTitle = "Untitled Scroll"

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(r *model.NoteRecord) *entity.Note {
	if r == nil {
		return nil
	}

	return &entity.Note{
		Id:        r.Id,
		Title:     r.Title,
		Content:   r.Content,
		Pinned:    r.Pinned,
		Color:     r.Color,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (m *NoteMapper) ToRecord(n *entity.Note) *model.NoteRecord {
	if n == nil {
		return nil
	}

	return &model.NoteRecord{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		Pinned:    n.Pinned,
		Color:     n.Color,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (m *NoteMapper) ToResponse(n *entity.Note) *dto.NoteResponse {
	if n == nil {
		return nil
	}

	title := n.Title
	if title == "" {
		title = UntitledTitle
	}

	return &dto.NoteResponse{
		Id:        n.Id,
		Title:     title,
		Content:   n.Content,
		Pinned:    n.Pinned,
		Color:     n.Color,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (m *NoteMapper) ToResponses(notes []*entity.Note) []*dto.NoteResponse {
	responses := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		responses[i] = m.ToResponse(n)
	}
	return responses
}
