package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resumatch/resume-matcher/internal/models"
)

type ResumeRepository interface {
	Create(resume *models.Resume) error
	FindByID(id uuid.UUID) (*models.Resume, error)
	FindAll() ([]models.Resume, error)
	Count() (int64, error)
	DeleteAll() (int64, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// Create implements ResumeRepository.
func (r *resumeRepository) Create(resume *models.Resume) error {
	if err := r.db.Create(&resume).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}

	return nil
}

// FindByID implements ResumeRepository.
func (r *resumeRepository) FindByID(id uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	if err := r.db.Where("id = ?", id).First(&resume).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("resume not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find resume: %w", err)
	}

	return &resume, nil
}

// FindAll implements ResumeRepository.
func (r *resumeRepository) FindAll() ([]models.Resume, error) {
	var resumes []models.Resume
	if err := r.db.Order("created_at ASC").Find(&resumes).Error; err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}

	return resumes, nil
}

// Count implements ResumeRepository.
func (r *resumeRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Resume{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count resumes: %w", err)
	}

	return count, nil
}

// DeleteAll implements ResumeRepository.
func (r *resumeRepository) DeleteAll() (int64, error) {
	result := r.db.Where("1 = 1").Delete(&models.Resume{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear resumes: %w", result.Error)
	}

	return result.RowsAffected, nil
}
