package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"resumatch/resume-matcher/internal/models"
	"resumatch/resume-matcher/internal/repositories"
	"resumatch/resume-matcher/internal/services"
)

type SearchHandler struct {
	resumeRepo repositories.ResumeRepository
	matcher    services.MatcherService
}

func NewSearchHandler(
	resumeRepo repositories.ResumeRepository,
	matcher services.MatcherService,
) *SearchHandler {
	return &SearchHandler{
		resumeRepo: resumeRepo,
		matcher:    matcher,
	}
}

// HandleSearch handles POST /search. Requires a non-empty skills field;
// an unparseable min_experience falls back to 0.
func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	var req models.SearchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	requiredSkills, err := services.NormalizeRequiredSkills(req.RequiredSkills)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please enter at least one required skill",
		})
	}

	minExperience, err := strconv.ParseFloat(req.MinExperience, 64)
	if err != nil {
		minExperience = 0
	}

	total, err := h.resumeRepo.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count resumes",
		})
	}

	if total == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resumes have been uploaded yet",
		})
	}

	resumes, err := h.resumeRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load resumes",
		})
	}

	matches := h.matcher.MatchCandidates(resumes, requiredSkills, minExperience)
	ranked := h.matcher.RankCandidates(matches)

	return c.JSON(models.SearchResponse{
		RequiredSkills:  requiredSkills,
		MinExperience:   minExperience,
		MatchingCount:   len(ranked),
		TotalCandidates: total,
		Candidates:      ranked,
	})
}
