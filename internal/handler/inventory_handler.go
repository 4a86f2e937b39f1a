package handler

import (
	"strconv"

	"go-stock-admin/internal/model"
	"go-stock-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	snapshots        service.SnapshotService
	editor           service.EditorService
	defaultThreshold int
}

func NewInventoryHandler(snapshots service.SnapshotService, editor service.EditorService, defaultThreshold int) *InventoryHandler {
	return &InventoryHandler{
		snapshots:        snapshots,
		editor:           editor,
		defaultThreshold: defaultThreshold,
	}
}

// Helpers to read user info from context (set by auth middleware)
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system"
	}
	return userID.(string)
}

func getUserName(c *fiber.Ctx) string {
	userName := c.Locals("user_name")
	if userName == nil {
		return "Unknown"
	}
	return userName.(string)
}

func getUserEmail(c *fiber.Ctx) string {
	userEmail := c.Locals("user_email")
	if userEmail == nil {
		return ""
	}
	return userEmail.(string)
}

func getActor(c *fiber.Ctx) service.Actor {
	return service.Actor{
		ID:    getUserID(c),
		Name:  getUserName(c),
		Email: getUserEmail(c),
	}
}

func (h *InventoryHandler) threshold(c *fiber.Ctx) int {
	t, err := strconv.Atoi(c.Query("threshold", strconv.Itoa(h.defaultThreshold)))
	if err != nil || t < 0 {
		return h.defaultThreshold
	}
	return t
}

type variantView struct {
	Name        string `json:"name"`
	Hex         string `json:"hexColor"`
	InStock     bool   `json:"inStock"`
	Stock       int    `json:"stock"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	StyleClass  string `json:"style_class"`
	Editing     bool   `json:"editing"`
	Draft       *int   `json:"draft,omitempty"`
}

type productRow struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Category     string        `json:"category"`
	CategoryName string        `json:"categoryName"`
	Price        int64         `json:"price"`
	TotalUnits   int           `json:"total_units"`
	Status       string        `json:"status"`
	StatusLabel  string        `json:"status_label"`
	StyleClass   string        `json:"style_class"`
	Colors       []variantView `json:"colors"`
}

func buildRow(p model.Product, threshold int, drafts map[model.EditKey]int) productRow {
	status := model.ProductStatus(p, threshold)
	row := productRow{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		CategoryName: p.CategoryName,
		Price:        p.Price,
		TotalUnits:   p.TotalUnits(),
		Status:       string(status),
		StatusLabel:  status.Label(),
		StyleClass:   status.StyleClass(),
		Colors:       make([]variantView, 0, len(p.Colors)),
	}
	for i, v := range p.Colors {
		vs := model.VariantStatus(v, threshold)
		view := variantView{
			Name:        v.Name,
			Hex:         v.Hex,
			InStock:     v.InStock,
			Stock:       v.Stock,
			Status:      string(vs),
			StatusLabel: vs.Label(),
			StyleClass:  vs.StyleClass(),
		}
		if draft, ok := drafts[model.EditKey{ProductID: p.ID, ColorIndex: i}]; ok {
			view.Editing = true
			view.Draft = &draft
		}
		row.Colors = append(row.Colors, view)
	}
	return row
}

// GetProducts returns the filtered inventory view: rows with per-variant
// stock status and any pending drafts, plus the aggregate stats block.
// Query params: search, category ("all" for every category), threshold.
func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.snapshots.Products()
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to load catalog snapshot"})
	}

	threshold := h.threshold(c)
	filtered := service.FilterProducts(products, c.Query("search"), c.Query("category", service.CategoryAll))
	drafts := h.editor.Drafts()

	rows := make([]productRow, 0, len(filtered))
	for _, p := range filtered {
		rows = append(rows, buildRow(p, threshold, drafts))
	}

	return c.JSON(fiber.Map{
		"threshold": threshold,
		"stats":     service.Aggregate(products, threshold),
		"products":  rows,
	})
}

// GetStats returns the aggregate statistics over the full snapshot.
func (h *InventoryHandler) GetStats(c *fiber.Ctx) error {
	products, err := h.snapshots.Products()
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to load catalog snapshot"})
	}
	return c.JSON(service.Aggregate(products, h.threshold(c)))
}

// Refresh re-fetches the snapshot, bypassing the cooldown.
func (h *InventoryHandler) Refresh(c *fiber.Ctx) error {
	products, err := h.snapshots.Refresh()
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to refresh catalog snapshot"})
	}
	return c.JSON(fiber.Map{"message": "Snapshot refreshed", "total_products": len(products)})
}
