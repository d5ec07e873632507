package response_models

type TemplateSummaryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	UpdatedAt   int64  `json:"updated_at"`
}

type TemplateDraftResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Questions   []QuestionResponse `json:"questions"`
}

type QuestionResponse struct {
	ID           string               `json:"id"`
	Type         string               `json:"type"`
	Prompt       string               `json:"prompt"`
	Details      string               `json:"details"`
	ScoreWeight  float64              `json:"score_weight"`
	Choices      []ChoiceResponse     `json:"choices"`
	ScaleMin     int                  `json:"scale_min"`
	ScaleMax     int                  `json:"scale_max"`
	ScaleVariant string               `json:"scale_variant"`
	ScaleLabels  []ScaleLabelResponse `json:"scale_labels"`
}

type ChoiceResponse struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Value       int    `json:"value"`
}

type ScaleLabelResponse struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type SavedTemplateResponse struct {
	ID string `json:"id"`
}
