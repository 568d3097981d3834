package models

import (
	"time"

	"github.com/google/uuid"
)

// Resume is a parsed resume as stored after upload. Skills, education and
// experience are kept as JSON columns since they are only ever read back
// whole for matching.
type Resume struct {
	ID                   uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename             string       `gorm:"type:text" json:"filename"`
	Name                 string       `gorm:"type:text" json:"name"`
	Email                string       `gorm:"type:text" json:"email"`
	Phone                string       `gorm:"type:text" json:"phone"`
	LinkedIn             string       `gorm:"type:text" json:"linkedin"`
	Skills               []string     `gorm:"serializer:json" json:"skills"`
	Education            []Education  `gorm:"serializer:json" json:"education"`
	Experience           []Experience `gorm:"serializer:json" json:"experience"`
	TotalExperienceYears float64      `gorm:"type:decimal(5,2)" json:"total_experience_years"`
	RawText              string       `gorm:"type:text" json:"-"`
	CreatedAt            time.Time    `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt            time.Time    `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (r *Resume) TableName() string {
	return "resumes"
}

type Education struct {
	Degree      string     `json:"degree"`
	Institution string     `json:"institution"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

type Experience struct {
	Title         string     `json:"title"`
	Company       string     `json:"company"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Description   string     `json:"description"`
	DurationYears float64    `json:"duration_years"`
}
