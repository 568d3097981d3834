package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumatch/resume-matcher/internal/models"
	"resumatch/resume-matcher/internal/repositories"
	"resumatch/resume-matcher/internal/services"
)

type UploadHandler struct {
	resumeRepo     repositories.ResumeRepository
	storageService services.StorageService
	pdfParser      services.PDFParserService
	extractor      services.ExtractorService
	maxFileSize    int64
}

func NewUploadHandler(
	resumeRepo repositories.ResumeRepository,
	storageService services.StorageService,
	pdfParser services.PDFParserService,
	extractor services.ExtractorService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		resumeRepo:     resumeRepo,
		storageService: storageService,
		pdfParser:      pdfParser,
		extractor:      extractor,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /upload. Accepts a batch of resume PDFs under
// the "files" multipart field; each file is saved, parsed, extracted and
// persisted, then its temp copy is removed. A failed file never aborts the
// batch.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	files := form.File["files"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no files selected",
		})
	}

	// Starting a fresh batch discards prior resume data.
	if c.FormValue("clear_previous") == "true" {
		if _, err := h.resumeRepo.DeleteAll(); err != nil {
			log.Printf("⚠️  Failed to clear previous resumes: %v\n", err)
		}
	}

	response := models.UploadResponse{}

	for _, file := range files {
		if file.Size > h.maxFileSize {
			response.FailedCount++
			response.Files = append(response.Files, models.UploadFileResult{
				Filename: file.Filename,
				Status:   "failed",
				Error:    fmt.Sprintf("file too large, max size: %d bytes", h.maxFileSize),
			})
			continue
		}

		filename, filePath, err := h.storageService.SaveFile(file)
		if err != nil {
			response.FailedCount++
			response.Files = append(response.Files, models.UploadFileResult{
				Filename: file.Filename,
				Status:   "failed",
				Error:    err.Error(),
			})
			continue
		}

		resume, err := h.processResume(filePath)

		// The stored copy is only needed during extraction.
		if delErr := h.storageService.DeleteFile(filename); delErr != nil {
			log.Printf("⚠️  Failed to remove temporary file %s: %v\n", filename, delErr)
		}

		if err != nil {
			log.Printf("❌ Error processing file %s: %v\n", file.Filename, err)
			response.FailedCount++
			response.Files = append(response.Files, models.UploadFileResult{
				Filename: file.Filename,
				Status:   "failed",
				Error:    err.Error(),
			})
			continue
		}

		resume.ID = uuid.New()
		resume.Filename = file.Filename
		resume.CreatedAt = time.Now()
		resume.UpdatedAt = time.Now()

		if err := h.resumeRepo.Create(resume); err != nil {
			response.FailedCount++
			response.Files = append(response.Files, models.UploadFileResult{
				Filename: file.Filename,
				Status:   "failed",
				Error:    "failed to save resume record",
			})
			continue
		}

		response.ParsedCount++
		response.Files = append(response.Files, models.UploadFileResult{
			Filename: file.Filename,
			ResumeID: resume.ID.String(),
			Status:   "parsed",
		})
	}

	status := fiber.StatusCreated
	if response.ParsedCount == 0 {
		status = fiber.StatusUnprocessableEntity
	}

	return c.Status(status).JSON(response)
}

func (h *UploadHandler) processResume(filePath string) (*models.Resume, error) {
	text, err := h.pdfParser.ExtractText(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	resume, err := h.extractor.Extract(text)
	if err != nil {
		return nil, fmt.Errorf("failed to extract information: %w", err)
	}

	return resume, nil
}
