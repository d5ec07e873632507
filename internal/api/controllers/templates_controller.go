package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"assessly/internal/drafts"
	"assessly/internal/models/request_models"
	"assessly/internal/models/response_models"
	"assessly/internal/services"
	"assessly/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TemplatesController struct {
	templateService services.TemplateServiceInterface
}

func NewTemplatesController(templateService services.TemplateServiceInterface) *TemplatesController {
	return &TemplatesController{
		templateService: templateService,
	}
}

func actingOwnerID(c *gin.Context) uuid.UUID {
	raw := c.GetString("user_id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func (tc *TemplatesController) ListTemplatesHandler(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	templates, err := tc.templateService.ListTemplates(c.Request.Context(), actingOwnerID(c), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, templates, "Fetched templates successfully")
}

func (tc *TemplatesController) GetTemplateDraftHandler(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid template id")
		return
	}

	draft, err := tc.templateService.HydrateDraft(c.Request.Context(), templateID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, draftToResponse(templateID.String(), draft), "Fetched template successfully")
}

func (tc *TemplatesController) CreateTemplateHandler(c *gin.Context) {
	var req request_models.SaveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	tc.saveTemplate(c, nil, req)
}

func (tc *TemplatesController) UpdateTemplateHandler(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid template id")
		return
	}

	var req request_models.SaveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	tc.saveTemplate(c, &templateID, req)
}

func (tc *TemplatesController) saveTemplate(c *gin.Context, templateID *uuid.UUID, req request_models.SaveTemplateRequest) {
	draft := requestToDraft(req)

	id, err := tc.templateService.SaveDraft(c.Request.Context(), actingOwnerID(c), templateID, draft)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusUnprocessableEntity, utils.APIResponse{
				Status:  "error",
				Code:    http.StatusUnprocessableEntity,
				Message: "Draft has validation errors",
				Data:    validationErr.Fields,
				TraceID: utils.TraceID(c),
			})
			return
		}
		if errors.Is(err, utils.ErrNotAuthorized) || errors.Is(err, utils.ErrTemplateNotFound) {
			utils.HandleServiceError(c, err)
			return
		}
		// Store failures pass through verbatim as the submit summary.
		utils.RespondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if templateID == nil {
		utils.RespondCreated(c, response_models.SavedTemplateResponse{ID: id.String()}, "Template created successfully")
		return
	}
	utils.RespondSuccess(c, response_models.SavedTemplateResponse{ID: id.String()}, "Template saved successfully")
}

func (tc *TemplatesController) SetTemplateActiveHandler(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid template id")
		return
	}

	var req request_models.SetTemplateActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := tc.templateService.SetTemplateActive(c.Request.Context(), actingOwnerID(c), templateID, *req.Active); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Template updated successfully")
}

func requestToDraft(req request_models.SaveTemplateRequest) drafts.TemplateDraft {
	draft := drafts.TemplateDraft{
		Name:        req.Name,
		Description: req.Description,
		Questions:   make([]drafts.QuestionDraft, 0, len(req.Questions)),
	}

	for _, q := range req.Questions {
		questionType := drafts.QuestionType(q.Type)
		if questionType == "" {
			questionType = drafts.QuestionSingleChoice
		}
		variant := drafts.ScaleVariant(q.ScaleVariant)
		if variant == "" {
			variant = drafts.ScaleVariantNumber
		}
		question := drafts.QuestionDraft{
			ID:           q.ID,
			Type:         questionType,
			Prompt:       q.Prompt,
			Details:      q.Details,
			ScoreWeight:  q.ScoreWeight,
			ScaleMin:     q.ScaleMin,
			ScaleMax:     q.ScaleMax,
			ScaleVariant: variant,
		}
		for _, ch := range q.Choices {
			question.Choices = append(question.Choices, drafts.ChoiceDraft{
				ID:          ch.ID,
				Label:       ch.Label,
				Description: ch.Description,
				Value:       ch.Value,
			})
		}
		for _, l := range q.ScaleLabels {
			question.ScaleLabels = append(question.ScaleLabels, drafts.ScaleLabelDraft{
				Value: l.Value,
				Label: l.Label,
			})
		}
		draft.Questions = append(draft.Questions, question)
	}

	return draft
}

func draftToResponse(id string, draft drafts.TemplateDraft) response_models.TemplateDraftResponse {
	resp := response_models.TemplateDraftResponse{
		ID:          id,
		Name:        draft.Name,
		Description: draft.Description,
		Questions:   make([]response_models.QuestionResponse, 0, len(draft.Questions)),
	}

	for _, q := range draft.Questions {
		question := response_models.QuestionResponse{
			ID:           q.ID,
			Type:         string(q.Type),
			Prompt:       q.Prompt,
			Details:      q.Details,
			ScoreWeight:  q.ScoreWeight,
			ScaleMin:     q.ScaleMin,
			ScaleMax:     q.ScaleMax,
			ScaleVariant: string(q.ScaleVariant),
			Choices:      make([]response_models.ChoiceResponse, 0, len(q.Choices)),
			ScaleLabels:  make([]response_models.ScaleLabelResponse, 0, len(q.ScaleLabels)),
		}
		for _, ch := range q.Choices {
			question.Choices = append(question.Choices, response_models.ChoiceResponse{
				ID:          ch.ID,
				Label:       ch.Label,
				Description: ch.Description,
				Value:       ch.Value,
			})
		}
		for _, l := range q.ScaleLabels {
			question.ScaleLabels = append(question.ScaleLabels, response_models.ScaleLabelResponse{
				Value: l.Value,
				Label: l.Label,
			})
		}
		resp.Questions = append(resp.Questions, question)
	}

	return resp
}
