package services

import (
	"strings"

	"resumatch/resume-matcher/internal/models"
)

// SelectionService handles a file-selection event: it fires the clear
// notification and builds a validation report for the selected files.
// Every selection fully replaces the previous one; the service itself is
// stateless.
type SelectionService interface {
	ProcessSelection(files []models.FileDescriptor) models.SelectionReport
	ValidateSelection(files []models.FileDescriptor) models.SelectionReport
}

type selectionService struct {
	notifier Notifier
}

func NewSelectionService(notifier Notifier) SelectionService {
	return &selectionService{notifier: notifier}
}

// ProcessSelection implements SelectionService. The clear notification is
// issued exactly once, before the report is built, and is never awaited;
// validation proceeds regardless of its outcome.
func (s *selectionService) ProcessSelection(files []models.FileDescriptor) models.SelectionReport {
	go s.notifier.NotifyClear()

	return s.ValidateSelection(files)
}

// ValidateSelection implements SelectionService. A file is valid iff the
// substring after its last dot equals "pdf", case-insensitively.
func (s *selectionService) ValidateSelection(files []models.FileDescriptor) models.SelectionReport {
	report := models.SelectionReport{
		Rows: make([]models.SelectionRow, 0, len(files)),
	}

	for _, file := range files {
		valid := IsValidResumeFilename(file.Name)
		if valid {
			report.ValidCount++
		}
		report.Rows = append(report.Rows, models.SelectionRow{
			Name:  file.Name,
			Size:  file.Size,
			Valid: valid,
		})
	}

	switch {
	case len(files) == 0:
		report.Mode = models.BannerNoFiles
	case report.ValidCount == 0:
		report.Mode = models.BannerAllInvalid
	default:
		report.Mode = models.BannerSomeValid
	}

	report.SubmitEnabled = report.ValidCount > 0

	return report
}

// IsValidResumeFilename reports whether the filename carries a .pdf
// extension. A name without a dot has no extension and is invalid.
func IsValidResumeFilename(name string) bool {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return false
	}

	return strings.EqualFold(name[idx+1:], "pdf")
}
