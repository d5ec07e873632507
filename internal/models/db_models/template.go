package db_models

import (
	"github.com/google/uuid"
)

type AssessmentTemplate struct {
	BaseModel
	OwnerID     uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description *string
	IsActive    bool `gorm:"default:true"`

	Questions []AssessmentQuestion `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
}
