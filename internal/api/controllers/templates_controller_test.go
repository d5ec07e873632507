package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"assessly/internal/drafts"
	"assessly/internal/models/response_models"
	"assessly/internal/services"
	"assessly/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTemplateService struct {
	saveErr error
}

func (s *stubTemplateService) HydrateDraft(ctx context.Context, templateID uuid.UUID) (drafts.TemplateDraft, error) {
	return drafts.TemplateDraft{}, utils.ErrTemplateNotFound
}

func (s *stubTemplateService) SaveDraft(ctx context.Context, ownerID uuid.UUID, templateID *uuid.UUID, draft drafts.TemplateDraft) (uuid.UUID, error) {
	if s.saveErr != nil {
		return uuid.Nil, s.saveErr
	}
	return uuid.New(), nil
}

func (s *stubTemplateService) ListTemplates(ctx context.Context, ownerID uuid.UUID, page int, pageSize int) ([]response_models.TemplateSummaryResponse, error) {
	return nil, nil
}

func (s *stubTemplateService) SetTemplateActive(ctx context.Context, ownerID uuid.UUID, templateID uuid.UUID, active bool) error {
	return nil
}

func newSaveContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	req := httptest.NewRequest(http.MethodPost, "/templates", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	c.Set("user_id", uuid.New().String())
	c.Set("trace_id", "trace-abc-123")
	return c, rec
}

func TestCreateTemplateValidationFailureCarriesTraceID(t *testing.T) {
	svc := &stubTemplateService{
		saveErr: &services.ValidationError{
			Fields: drafts.FieldErrors{"name": "Template name is required."},
		},
	}
	tc := NewTemplatesController(svc)

	c, rec := newSaveContext(t, `{"name":"","questions":[]}`)
	tc.CreateTemplateHandler(c)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "trace-abc-123", resp.TraceID)

	fields, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Template name is required.", fields["name"])
}

func TestCreateTemplateSuccessEnvelope(t *testing.T) {
	tc := NewTemplatesController(&stubTemplateService{})

	c, rec := newSaveContext(t, `{"name":"Onboarding check","questions":[{"prompt":"How did it go?","type":"scale","scale_min":1,"scale_max":5}]}`)
	tc.CreateTemplateHandler(c)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "trace-abc-123", resp.TraceID)
}
