package request_models

// SaveTemplateRequest carries the full editor draft. Structural rules
// (non-empty name, minimum choices, scale bounds) are checked by the draft
// validator so the client gets the whole path-keyed error map at once, not
// by binding tags.
type SaveTemplateRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Questions   []QuestionRequest `json:"questions" binding:"dive"`
}

type QuestionRequest struct {
	ID           string              `json:"id"`
	Type         string              `json:"type" binding:"omitempty,oneof=single_choice multi_choice scale"`
	Prompt       string              `json:"prompt"`
	Details      string              `json:"details"`
	ScoreWeight  float64             `json:"score_weight"`
	Choices      []ChoiceRequest     `json:"choices" binding:"dive"`
	ScaleMin     int                 `json:"scale_min"`
	ScaleMax     int                 `json:"scale_max"`
	ScaleVariant string              `json:"scale_variant" binding:"omitempty,oneof=number stars hearts"`
	ScaleLabels  []ScaleLabelRequest `json:"scale_labels" binding:"dive"`
}

type ChoiceRequest struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Value       int    `json:"value"`
}

type ScaleLabelRequest struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type SetTemplateActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
