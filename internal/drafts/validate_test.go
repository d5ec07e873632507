package drafts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSingleChoiceDraft() TemplateDraft {
	d := NewTemplateDraft()
	d.Name = "Quarterly review"
	prompt := "How did the quarter go?"
	return d.UpdateQuestion(d.Questions[0].ID, QuestionPatch{Prompt: &prompt})
}

func TestValidateCleanDraftHasNoErrors(t *testing.T) {
	errs := Validate(validSingleChoiceDraft())
	assert.Empty(t, errs)
}

func TestValidateEmptyQuestionsReportsExactlyOneError(t *testing.T) {
	d := TemplateDraft{Name: "Named"}

	errs := Validate(d)

	require.Len(t, errs, 1)
	assert.Contains(t, errs, "questions")
}

func TestValidateTemplateNameTrimmed(t *testing.T) {
	d := validSingleChoiceDraft()
	d.Name = "   "

	errs := Validate(d)

	require.Len(t, errs, 1)
	assert.Equal(t, "Template name is required.", errs["templateName"])
}

func TestValidateChoiceQuestionNeedsTwoOptions(t *testing.T) {
	for _, questionType := range []QuestionType{QuestionSingleChoice, QuestionMultiChoice} {
		d := validSingleChoiceDraft()
		q := d.Questions[0]
		d = d.UpdateQuestion(q.ID, QuestionPatch{Type: &questionType})
		d = d.RemoveChoice(q.ID, q.Choices[0].ID)

		errs := Validate(d)

		require.Len(t, errs, 1, "type %s", questionType)
		assert.Equal(t, "Provide at least two options.", errs["questions.0.choices"])
	}
}

func TestValidateScaleBoundsMustBeOrdered(t *testing.T) {
	d := validSingleChoiceDraft()
	scale := QuestionScale
	minV, maxV := 5, 5
	d = d.UpdateQuestion(d.Questions[0].ID, QuestionPatch{Type: &scale, ScaleMin: &minV, ScaleMax: &maxV})

	errs := Validate(d)

	require.Len(t, errs, 1)
	assert.Equal(t, "Maximum must be greater than minimum.", errs["questions.0.scale"])
}

func TestValidateScaleQuestionIgnoresChoiceCount(t *testing.T) {
	d := validSingleChoiceDraft()
	q := d.Questions[0]
	scale := QuestionScale
	d = d.UpdateQuestion(q.ID, QuestionPatch{Type: &scale})
	d = d.RemoveChoice(q.ID, q.Choices[0].ID)
	d = d.RemoveChoice(q.ID, q.Choices[1].ID)

	errs := Validate(d)

	assert.Empty(t, errs, "retained but hidden choices must not trip the choice rule")
}

func TestValidateScoreWeight(t *testing.T) {
	for name, weight := range map[string]float64{"negative": -0.5, "nan": math.NaN()} {
		d := validSingleChoiceDraft()
		d = d.UpdateQuestion(d.Questions[0].ID, QuestionPatch{ScoreWeight: &weight})

		errs := Validate(d)

		require.Len(t, errs, 1, name)
		assert.Equal(t, "Score weight must be zero or positive.", errs["questions.0.scoreWeight"])
	}

	d := validSingleChoiceDraft()
	zero := 0.0
	d = d.UpdateQuestion(d.Questions[0].ID, QuestionPatch{ScoreWeight: &zero})
	assert.Empty(t, Validate(d), "zero weight is allowed")
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	d := NewTemplateDraft() // empty name, empty prompt
	d = d.AddQuestion()
	q := d.Questions[1]
	scale := QuestionScale
	minV, maxV := 3, 1
	d = d.UpdateQuestion(q.ID, QuestionPatch{Type: &scale, ScaleMin: &minV, ScaleMax: &maxV})

	errs := Validate(d)

	assert.Contains(t, errs, "templateName")
	assert.Contains(t, errs, "questions.0.prompt")
	assert.Contains(t, errs, "questions.1.prompt")
	assert.Contains(t, errs, "questions.1.scale")
	assert.Len(t, errs, 4)
}

func TestFieldErrorsClearReturnsNewMap(t *testing.T) {
	errs := FieldErrors{"templateName": "x", "questions": "y"}

	cleared := errs.Clear("templateName")

	assert.Len(t, errs, 2)
	assert.Len(t, cleared, 1)
	assert.Contains(t, cleared, "questions")

	same := cleared.Clear("not-there")
	assert.Len(t, same, 1)
}
