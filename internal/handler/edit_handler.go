package handler

import (
	"errors"

	"go-stock-admin/internal/model"
	"go-stock-admin/internal/service"
	"go-stock-admin/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// EditHandler exposes the row-edit lifecycle: begin, draft, commit, cancel,
// and ordered bulk commit.
type EditHandler struct {
	editor service.EditorService
}

func NewEditHandler(editor service.EditorService) *EditHandler {
	return &EditHandler{editor: editor}
}

type draftRequest struct {
	ProductID  string `json:"product_id" validate:"required"`
	ColorIndex int    `json:"color_index" validate:"gte=0"`
	Value      string `json:"value"`
}

func (r draftRequest) key() model.EditKey {
	return model.EditKey{ProductID: r.ProductID, ColorIndex: r.ColorIndex}
}

func parseDraftRequest(c *fiber.Ctx) (*draftRequest, error) {
	var req draftRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.New("Invalid JSON")
	}
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return nil, errors.New("Validation failed: field '" + errs[0].FailedField + "' failed on tag '" + errs[0].Tag + "'")
	}
	return &req, nil
}

func (h *EditHandler) BeginEdit(c *fiber.Ctx) error {
	req, err := parseDraftRequest(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	value, err := h.editor.BeginEdit(req.key())
	if err != nil {
		if errors.Is(err, service.ErrUnknownKey) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(502).JSON(fiber.Map{"error": "Failed to load catalog snapshot"})
	}

	return c.JSON(fiber.Map{"message": "Editing started", "draft": value})
}

func (h *EditHandler) UpdateDraft(c *fiber.Ctx) error {
	req, err := parseDraftRequest(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	value, err := h.editor.UpdateDraft(req.key(), req.Value)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Draft updated", "draft": value})
}

func (h *EditHandler) Commit(c *fiber.Ctx) error {
	req, err := parseDraftRequest(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.editor.Commit(req.key(), getActor(c)); err != nil {
		if errors.Is(err, service.ErrNoDraft) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Stock updated"})
}

func (h *EditHandler) Cancel(c *fiber.Ctx) error {
	req, err := parseDraftRequest(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	h.editor.Cancel(req.key())
	return c.JSON(fiber.Map{"message": "Edit cancelled"})
}

type bulkRequest struct {
	Updates []model.StockUpdate `json:"updates" validate:"required,min=1,dive"`
}

// BulkCommit applies the updates in order, best-effort; one failure does
// not abort the rest.
func (h *EditHandler) BulkCommit(c *fiber.Ctx) error {
	var req bulkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: field '" + errs[0].FailedField + "' failed on tag '" + errs[0].Tag + "'"})
	}

	report := h.editor.BulkCommit(req.Updates, getActor(c))
	return c.JSON(report)
}
