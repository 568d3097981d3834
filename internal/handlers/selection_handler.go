package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumatch/resume-matcher/internal/models"
	"resumatch/resume-matcher/internal/services"
)

type SelectionHandler struct {
	selection services.SelectionService
}

func NewSelectionHandler(selection services.SelectionService) *SelectionHandler {
	return &SelectionHandler{selection: selection}
}

// HandleSelection handles POST /selection. Runs the selection-event
// contract for a set of file descriptors and returns the resulting report.
func (h *SelectionHandler) HandleSelection(c *fiber.Ctx) error {
	var req models.SelectionRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	report := h.selection.ProcessSelection(req.Files)

	return c.JSON(report)
}

// HandleSkillAssist handles POST /skills/assist, mirroring the Enter-key
// input assist on the skills field.
func (h *SelectionHandler) HandleSkillAssist(c *fiber.Ctx) error {
	var req struct {
		Value string `json:"value"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	return c.JSON(fiber.Map{
		"value": services.AppendSkillSeparator(req.Value),
	})
}
