package repositories

import (
	"context"
	"errors"

	dbm "assessly/internal/models/db_models"
	"assessly/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TemplateRepository is the narrow read/write contract the editor consumes.
// InsertQuestions returns the created rows so callers can map submitted
// positions to store-assigned identifiers; the return order is not
// guaranteed to match the input order.
type TemplateRepository interface {
	GetTemplateByID(ctx context.Context, id uuid.UUID) (*dbm.AssessmentTemplate, error)
	GetQuestionsWithChildren(ctx context.Context, templateID uuid.UUID) ([]dbm.AssessmentQuestion, error)
	ListTemplatesByOwner(ctx context.Context, ownerID uuid.UUID, page int, pageSize int) ([]dbm.AssessmentTemplate, error)

	InsertTemplate(ctx context.Context, template *dbm.AssessmentTemplate) (uuid.UUID, error)
	UpdateTemplate(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	SetTemplateActive(ctx context.Context, id uuid.UUID, active bool) error

	DeleteQuestions(ctx context.Context, templateID uuid.UUID) error
	InsertQuestions(ctx context.Context, questions []dbm.AssessmentQuestion) ([]dbm.AssessmentQuestion, error)
	InsertChoices(ctx context.Context, choices []dbm.QuestionChoice) error
	InsertScaleLabels(ctx context.Context, labels []dbm.ScaleLabel) error

	InTransaction(ctx context.Context, fn func(repo TemplateRepository) error) error
}

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) GetTemplateByID(ctx context.Context, id uuid.UUID) (*dbm.AssessmentTemplate, error) {
	var template dbm.AssessmentTemplate
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&template).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrTemplateNotFound
		}
		return nil, err
	}

	return &template, nil
}

func (r *templateRepository) GetQuestionsWithChildren(ctx context.Context, templateID uuid.UUID) ([]dbm.AssessmentQuestion, error) {
	var questions []dbm.AssessmentQuestion
	err := r.db.WithContext(ctx).
		Where("template_id = ?", templateID).
		Preload("Choices").
		Preload("ScaleLabels").
		Order("position ASC").
		Find(&questions).Error

	if err != nil {
		return nil, err
	}

	return questions, nil
}

func (r *templateRepository) ListTemplatesByOwner(ctx context.Context, ownerID uuid.UUID, page int, pageSize int) ([]dbm.AssessmentTemplate, error) {
	var templates []dbm.AssessmentTemplate
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&templates).Error

	if err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *templateRepository) InsertTemplate(ctx context.Context, template *dbm.AssessmentTemplate) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(template).Error; err != nil {
		return uuid.Nil, err
	}
	return template.ID, nil
}

func (r *templateRepository) UpdateTemplate(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&dbm.AssessmentTemplate{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *templateRepository) SetTemplateActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.db.WithContext(ctx).
		Model(&dbm.AssessmentTemplate{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

// DeleteQuestions wipes the whole question subtree of one template. Child
// rows are removed through subqueries first so the delete works even when
// the store-side cascade is absent.
func (r *templateRepository) DeleteQuestions(ctx context.Context, templateID uuid.UUID) error {
	db := r.db.WithContext(ctx)

	subQuestionIDs := db.Model(&dbm.AssessmentQuestion{}).
		Select("id").
		Where("template_id = ?", templateID)

	if err := db.Where("question_id IN (?)", subQuestionIDs).
		Delete(&dbm.QuestionChoice{}).Error; err != nil {
		return err
	}
	if err := db.Where("question_id IN (?)", subQuestionIDs).
		Delete(&dbm.ScaleLabel{}).Error; err != nil {
		return err
	}

	return db.Where("template_id = ?", templateID).
		Delete(&dbm.AssessmentQuestion{}).Error
}

func (r *templateRepository) InsertQuestions(ctx context.Context, questions []dbm.AssessmentQuestion) ([]dbm.AssessmentQuestion, error) {
	if len(questions) == 0 {
		return nil, nil
	}
	if err := r.db.WithContext(ctx).Create(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *templateRepository) InsertChoices(ctx context.Context, choices []dbm.QuestionChoice) error {
	if len(choices) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&choices).Error
}

func (r *templateRepository) InsertScaleLabels(ctx context.Context, labels []dbm.ScaleLabel) error {
	if len(labels) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&labels).Error
}

func (r *templateRepository) InTransaction(ctx context.Context, fn func(repo TemplateRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&templateRepository{db: tx})
	})
}
