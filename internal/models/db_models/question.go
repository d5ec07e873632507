package db_models

import (
	"github.com/google/uuid"
)

// AssessmentQuestion always carries the scale columns regardless of type;
// the schema defaults them and the editor writes them for every row.
type AssessmentQuestion struct {
	BaseModel
	TemplateID   uuid.UUID `gorm:"type:uuid;index"`
	QuestionType string
	Prompt       string
	Details      *string
	ScoreWeight  float64 `gorm:"default:1"`
	Position     int
	ScaleMin     int    `gorm:"default:1"`
	ScaleMax     int    `gorm:"default:5"`
	ScaleVariant string `gorm:"default:number"`

	Choices     []QuestionChoice `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	ScaleLabels []ScaleLabel     `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

type QuestionChoice struct {
	BaseModel
	QuestionID  uuid.UUID `gorm:"type:uuid;index"`
	Label       string
	Description *string
	Value       int
}

type ScaleLabel struct {
	BaseModel
	QuestionID  uuid.UUID `gorm:"type:uuid;index"`
	ScaleValue  int
	Label       *string
	Description *string
}
