package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"assessly/internal/drafts"
	dbm "assessly/internal/models/db_models"
	"assessly/internal/models/response_models"
	"assessly/internal/repositories"
	"assessly/pkg/utils"
	"github.com/google/uuid"
)

// ValidationError carries the path-keyed error map for a draft that failed
// structural validation. No store writes happen when it is returned.
type ValidationError struct {
	Fields drafts.FieldErrors
}

func (e *ValidationError) Error() string { return "draft validation failed" }

type TemplateServiceInterface interface {
	// HydrateDraft loads the persisted template into an editable draft.
	HydrateDraft(ctx context.Context, templateID uuid.UUID) (drafts.TemplateDraft, error)

	// SaveDraft validates the draft and commits it, replacing the whole
	// question subtree. A nil templateID creates a new template. The
	// returned id is the durable template identifier.
	SaveDraft(ctx context.Context, ownerID uuid.UUID, templateID *uuid.UUID, draft drafts.TemplateDraft) (uuid.UUID, error)

	ListTemplates(ctx context.Context, ownerID uuid.UUID, page int, pageSize int) ([]response_models.TemplateSummaryResponse, error)
	SetTemplateActive(ctx context.Context, ownerID uuid.UUID, templateID uuid.UUID, active bool) error
}

type TemplateService struct {
	templateRepo repositories.TemplateRepository
}

func NewTemplateService(templateRepo repositories.TemplateRepository) TemplateServiceInterface {
	return &TemplateService{
		templateRepo: templateRepo,
	}
}

func (s *TemplateService) HydrateDraft(ctx context.Context, templateID uuid.UUID) (drafts.TemplateDraft, error) {
	template, err := s.templateRepo.GetTemplateByID(ctx, templateID)
	if err != nil {
		return drafts.TemplateDraft{}, err
	}

	rows, err := s.templateRepo.GetQuestionsWithChildren(ctx, templateID)
	if err != nil {
		return drafts.TemplateDraft{}, err
	}

	draft := drafts.TemplateDraft{
		Name:        template.Name,
		Description: stringOrEmpty(template.Description),
	}

	// A template that was created but never authored gets the same seed
	// question as a brand-new draft.
	if len(rows) == 0 {
		draft.Questions = []drafts.QuestionDraft{drafts.NewEmptyQuestion()}
		return draft, nil
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Position < rows[j].Position
	})

	draft.Questions = make([]drafts.QuestionDraft, 0, len(rows))
	for _, row := range rows {
		draft.Questions = append(draft.Questions, hydrateQuestion(row))
	}

	return draft, nil
}

func hydrateQuestion(row dbm.AssessmentQuestion) drafts.QuestionDraft {
	q := drafts.QuestionDraft{
		ID:           row.ID.String(),
		Type:         drafts.QuestionType(row.QuestionType),
		Prompt:       row.Prompt,
		Details:      stringOrEmpty(row.Details),
		ScoreWeight:  row.ScoreWeight,
		ScaleMin:     row.ScaleMin,
		ScaleMax:     row.ScaleMax,
		ScaleVariant: drafts.ScaleVariant(row.ScaleVariant),
	}
	if q.ScaleVariant == "" {
		q.ScaleVariant = drafts.ScaleVariantNumber
	}

	choices := make([]dbm.QuestionChoice, len(row.Choices))
	copy(choices, row.Choices)
	sort.SliceStable(choices, func(i, j int) bool {
		return choices[i].Value < choices[j].Value
	})
	q.Choices = make([]drafts.ChoiceDraft, 0, len(choices))
	for _, c := range choices {
		q.Choices = append(q.Choices, drafts.ChoiceDraft{
			ID:          c.ID.String(),
			Label:       c.Label,
			Description: stringOrEmpty(c.Description),
			Value:       c.Value,
		})
	}

	labels := make([]dbm.ScaleLabel, len(row.ScaleLabels))
	copy(labels, row.ScaleLabels)
	sort.SliceStable(labels, func(i, j int) bool {
		return labels[i].ScaleValue < labels[j].ScaleValue
	})
	q.ScaleLabels = make([]drafts.ScaleLabelDraft, 0, len(labels))
	for _, l := range labels {
		q.ScaleLabels = append(q.ScaleLabels, drafts.ScaleLabelDraft{
			Value: l.ScaleValue,
			Label: stringOrEmpty(l.Label),
		})
	}

	return q
}

func (s *TemplateService) SaveDraft(ctx context.Context, ownerID uuid.UUID, templateID *uuid.UUID, draft drafts.TemplateDraft) (uuid.UUID, error) {
	if errs := drafts.Validate(draft); len(errs) > 0 {
		return uuid.Nil, &ValidationError{Fields: errs}
	}

	if ownerID == uuid.Nil {
		return uuid.Nil, utils.ErrNotAuthorized
	}

	id, err := s.upsertTemplate(ctx, ownerID, templateID, draft)
	if err != nil {
		return uuid.Nil, err
	}

	// The whole subtree swap is one transaction so a failed insert cannot
	// leave the template without questions.
	err = s.templateRepo.InTransaction(ctx, func(repo repositories.TemplateRepository) error {
		return replaceQuestionTree(ctx, repo, id, draft.Questions)
	})
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (s *TemplateService) upsertTemplate(ctx context.Context, ownerID uuid.UUID, templateID *uuid.UUID, draft drafts.TemplateDraft) (uuid.UUID, error) {
	name := strings.TrimSpace(draft.Name)
	description := nilIfEmpty(draft.Description)

	if templateID != nil && *templateID != uuid.Nil {
		err := s.templateRepo.UpdateTemplate(ctx, *templateID, map[string]interface{}{
			"name":        name,
			"description": description,
			"updated_at":  time.Now().Unix(),
		})
		if err != nil {
			return uuid.Nil, err
		}
		return *templateID, nil
	}

	return s.templateRepo.InsertTemplate(ctx, &dbm.AssessmentTemplate{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		IsActive:    true,
	})
}

func replaceQuestionTree(ctx context.Context, repo repositories.TemplateRepository, templateID uuid.UUID, questions []drafts.QuestionDraft) error {
	if err := repo.DeleteQuestions(ctx, templateID); err != nil {
		return err
	}

	rows := make([]dbm.AssessmentQuestion, 0, len(questions))
	for i, q := range questions {
		// Scale columns are written for every row regardless of type; the
		// choice and label children below are what the type gates.
		rows = append(rows, dbm.AssessmentQuestion{
			TemplateID:   templateID,
			QuestionType: string(q.Type),
			Prompt:       strings.TrimSpace(q.Prompt),
			Details:      nilIfEmpty(q.Details),
			ScoreWeight:  q.ScoreWeight,
			Position:     i,
			ScaleMin:     q.ScaleMin,
			ScaleMax:     q.ScaleMax,
			ScaleVariant: string(q.ScaleVariant),
		})
	}

	saved, err := repo.InsertQuestions(ctx, rows)
	if err != nil {
		return err
	}

	// The store's return order is not guaranteed to match the submitted
	// order, so the id for each question comes from its persisted position.
	positionToID := make(map[int]uuid.UUID, len(saved))
	for _, row := range saved {
		positionToID[row.Position] = row.ID
	}

	var choiceRows []dbm.QuestionChoice
	var labelRows []dbm.ScaleLabel

	for i, q := range questions {
		questionID, ok := positionToID[i]
		if !ok {
			continue
		}

		if q.Type.HasChoices() {
			for _, c := range q.Choices {
				choiceRows = append(choiceRows, dbm.QuestionChoice{
					QuestionID:  questionID,
					Label:       strings.TrimSpace(c.Label),
					Description: nilIfEmpty(c.Description),
					Value:       c.Value,
				})
			}
		}

		if q.Type == drafts.QuestionScale {
			for _, l := range q.ScaleLabels {
				labelRows = append(labelRows, dbm.ScaleLabel{
					QuestionID: questionID,
					ScaleValue: l.Value,
					Label:      nilIfEmpty(l.Label),
				})
			}
		}
	}

	if err := repo.InsertChoices(ctx, choiceRows); err != nil {
		return err
	}
	return repo.InsertScaleLabels(ctx, labelRows)
}

func (s *TemplateService) ListTemplates(ctx context.Context, ownerID uuid.UUID, page int, pageSize int) ([]response_models.TemplateSummaryResponse, error) {
	templates, err := s.templateRepo.ListTemplatesByOwner(ctx, ownerID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.TemplateSummaryResponse, 0, len(templates))
	for _, t := range templates {
		summaries = append(summaries, response_models.TemplateSummaryResponse{
			ID:          t.ID.String(),
			Name:        t.Name,
			Description: stringOrEmpty(t.Description),
			IsActive:    t.IsActive,
			UpdatedAt:   t.UpdatedAt,
		})
	}

	return summaries, nil
}

func (s *TemplateService) SetTemplateActive(ctx context.Context, ownerID uuid.UUID, templateID uuid.UUID, active bool) error {
	template, err := s.templateRepo.GetTemplateByID(ctx, templateID)
	if err != nil {
		return err
	}
	if template.OwnerID != ownerID {
		return utils.ErrTemplateNotFound
	}
	return s.templateRepo.SetTemplateActive(ctx, templateID, active)
}

func nilIfEmpty(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
