package controller

import (
	"grimoire-scribe/internal/dto"
	"grimoire-scribe/internal/mapper"
	"grimoire-scribe/internal/pkg/serverutils"
	"grimoire-scribe/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
	mapper      *mapper.NoteMapper
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
		mapper:      mapper.NewNoteMapper(),
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

// parseIdParam rejects syntactically invalid ids before any storage access.
func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, serverutils.NewValidationError("Invalid note ID", nil)
	}
	return id, nil
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	notes, err := c.noteService.GetAllNotes(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(c.mapper.ToResponses(notes))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	note, err := c.noteService.GetNoteById(ctx.Context(), id)
	if err != nil {
		return err
	}
	if note == nil {
		return serverutils.NewNotFoundError("Note not found")
	}
	return ctx.JSON(c.mapper.ToResponse(note))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid note data", nil)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	note, err := c.noteService.CreateNote(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(c.mapper.ToResponse(note))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid note data", nil)
	}

	note, err := c.noteService.UpdateNote(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(c.mapper.ToResponse(note))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	deleted, err := c.noteService.DeleteNote(ctx.Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return serverutils.NewNotFoundError("Note not found")
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
