package drafts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplateDraftSeedsOneDefaultQuestion(t *testing.T) {
	d := NewTemplateDraft()

	require.Len(t, d.Questions, 1)
	q := d.Questions[0]
	assert.Equal(t, QuestionSingleChoice, q.Type)
	assert.Equal(t, float64(1), q.ScoreWeight)
	assert.Equal(t, 1, q.ScaleMin)
	assert.Equal(t, 5, q.ScaleMax)
	assert.Equal(t, ScaleVariantNumber, q.ScaleVariant)

	require.Len(t, q.Choices, 2)
	assert.Equal(t, "Option A", q.Choices[0].Label)
	assert.Equal(t, 1, q.Choices[0].Value)
	assert.Equal(t, "Option B", q.Choices[1].Label)
	assert.Equal(t, 2, q.Choices[1].Value)
	assert.NotEqual(t, q.Choices[0].ID, q.Choices[1].ID)
}

func TestAddQuestionDoesNotMutateReceiver(t *testing.T) {
	d := NewTemplateDraft()
	next := d.AddQuestion()

	assert.Len(t, d.Questions, 1)
	require.Len(t, next.Questions, 2)
	assert.NotEqual(t, next.Questions[0].ID, next.Questions[1].ID)
}

func TestRemoveQuestionIsNoOpWhenAbsent(t *testing.T) {
	d := NewTemplateDraft()
	next := d.RemoveQuestion("missing")

	assert.Equal(t, d.Questions, next.Questions)
}

func TestRemoveQuestionAllowsEmptyDraft(t *testing.T) {
	d := NewTemplateDraft()
	next := d.RemoveQuestion(d.Questions[0].ID)

	// The model does not enforce a minimum; the validator does.
	assert.Empty(t, next.Questions)
	assert.Len(t, d.Questions, 1)
}

func TestUpdateQuestionMergesOnlyPatchedFields(t *testing.T) {
	d := NewTemplateDraft()
	id := d.Questions[0].ID

	prompt := "How satisfied are you?"
	weight := 2.5
	next := d.UpdateQuestion(id, QuestionPatch{Prompt: &prompt, ScoreWeight: &weight})

	q := next.Questions[0]
	assert.Equal(t, prompt, q.Prompt)
	assert.Equal(t, weight, q.ScoreWeight)
	assert.Equal(t, QuestionSingleChoice, q.Type)
	assert.Len(t, q.Choices, 2)

	// receiver untouched
	assert.Empty(t, d.Questions[0].Prompt)
}

func TestUpdateQuestionTypeSwitchKeepsHiddenConfiguration(t *testing.T) {
	d := NewTemplateDraft()
	id := d.Questions[0].ID

	scale := QuestionScale
	next := d.UpdateQuestion(id, QuestionPatch{Type: &scale})
	require.Equal(t, QuestionScale, next.Questions[0].Type)
	assert.Len(t, next.Questions[0].Choices, 2, "choices survive a switch to scale")

	single := QuestionSingleChoice
	back := next.UpdateQuestion(id, QuestionPatch{Type: &single})
	assert.Equal(t, d.Questions[0].Choices, back.Questions[0].Choices)
}

func TestAddChoiceUsesNextLabelAndValue(t *testing.T) {
	d := NewTemplateDraft()
	id := d.Questions[0].ID

	next := d.AddChoice(id)
	q := next.Questions[0]
	require.Len(t, q.Choices, 3)
	assert.Equal(t, "Option 3", q.Choices[2].Label)
	assert.Equal(t, 3, q.Choices[2].Value)
}

func TestAddChoiceValueStaysUniqueAfterRemovals(t *testing.T) {
	d := NewTemplateDraft()
	id := d.Questions[0].ID

	d = d.AddChoice(id) // values 1,2,3
	q := d.Questions[0]
	d = d.RemoveChoice(id, q.Choices[1].ID) // values 1,3
	d = d.AddChoice(id)

	q = d.Questions[0]
	require.Len(t, q.Choices, 3)
	assert.Equal(t, 4, q.Choices[2].Value, "new value must exceed every existing value")

	seen := map[int]bool{}
	for _, c := range q.Choices {
		assert.False(t, seen[c.Value], "duplicate value %d", c.Value)
		seen[c.Value] = true
	}
}

func TestUpdateChoicePatchesSingleChoice(t *testing.T) {
	d := NewTemplateDraft()
	qid := d.Questions[0].ID
	cid := d.Questions[0].Choices[0].ID

	label := "Strongly agree"
	desc := "Top of the range"
	next := d.UpdateChoice(qid, cid, ChoicePatch{Label: &label, Description: &desc})

	q := next.Questions[0]
	assert.Equal(t, label, q.Choices[0].Label)
	assert.Equal(t, desc, q.Choices[0].Description)
	assert.Equal(t, "Option B", q.Choices[1].Label)
	assert.Equal(t, "Option A", d.Questions[0].Choices[0].Label)
}

func TestAddScaleLabelIsIdempotentPerValue(t *testing.T) {
	d := NewTemplateDraft()
	id := d.Questions[0].ID

	once := d.AddScaleLabel(id, 3)
	twice := once.AddScaleLabel(id, 3)

	assert.Equal(t, once.Questions[0].ScaleLabels, twice.Questions[0].ScaleLabels)
	require.Len(t, twice.Questions[0].ScaleLabels, 1)
	assert.Equal(t, 3, twice.Questions[0].ScaleLabels[0].Value)
}

func TestUpdateAndRemoveScaleLabel(t *testing.T) {
	d := NewTemplateDraft()
	id := d.Questions[0].ID

	d = d.AddScaleLabel(id, 1)
	d = d.AddScaleLabel(id, 5)
	d = d.UpdateScaleLabel(id, 5, "Excellent")

	labels := d.Questions[0].ScaleLabels
	require.Len(t, labels, 2)
	assert.Equal(t, "", labels[0].Label)
	assert.Equal(t, "Excellent", labels[1].Label)

	d = d.RemoveScaleLabel(id, 1)
	labels = d.Questions[0].ScaleLabels
	require.Len(t, labels, 1)
	assert.Equal(t, 5, labels[0].Value)
}
