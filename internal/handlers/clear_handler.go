package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"resumatch/resume-matcher/internal/repositories"
)

type ClearHandler struct {
	resumeRepo repositories.ResumeRepository
}

func NewClearHandler(resumeRepo repositories.ResumeRepository) *ClearHandler {
	return &ClearHandler{resumeRepo: resumeRepo}
}

// HandleClear handles POST /clear: discard all stored resume data.
func (h *ClearHandler) HandleClear(c *fiber.Ctx) error {
	cleared, err := h.resumeRepo.DeleteAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to clear resume data",
		})
	}

	log.Printf("🧹 Cleared %d stored resume(s)\n", cleared)

	return c.JSON(fiber.Map{
		"message": "All resume data has been cleared",
		"cleared": cleared,
	})
}
