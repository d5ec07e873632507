package drafts

import (
	"strconv"

	"github.com/google/uuid"
)

type QuestionType string

const (
	QuestionSingleChoice QuestionType = "single_choice"
	QuestionMultiChoice  QuestionType = "multi_choice"
	QuestionScale        QuestionType = "scale"
)

type ScaleVariant string

const (
	ScaleVariantNumber ScaleVariant = "number"
	ScaleVariantStars  ScaleVariant = "stars"
	ScaleVariantHearts ScaleVariant = "hearts"
)

// HasChoices reports whether the type carries an answer-option list.
func (t QuestionType) HasChoices() bool {
	return t == QuestionSingleChoice || t == QuestionMultiChoice
}

type ChoiceDraft struct {
	ID          string
	Label       string
	Description string
	Value       int
}

type ScaleLabelDraft struct {
	Value int
	Label string
}

// QuestionDraft carries every variant's fields so that switching the type
// back and forth loses nothing. Fields irrelevant to the current type are
// ignored at persistence time.
type QuestionDraft struct {
	ID           string
	Type         QuestionType
	Prompt       string
	Details      string
	ScoreWeight  float64
	Choices      []ChoiceDraft
	ScaleMin     int
	ScaleMax     int
	ScaleVariant ScaleVariant
	ScaleLabels  []ScaleLabelDraft
}

// TemplateDraft is the in-memory editable form of one assessment template.
// Commands are value methods returning a new draft; the receiver is never
// mutated.
type TemplateDraft struct {
	Name        string
	Description string
	Questions   []QuestionDraft
}

// NewTemplateDraft seeds a fresh draft with one default question.
func NewTemplateDraft() TemplateDraft {
	return TemplateDraft{Questions: []QuestionDraft{NewEmptyQuestion()}}
}

// NewEmptyQuestion builds the default question shape: single choice with two
// placeholder options.
func NewEmptyQuestion() QuestionDraft {
	return QuestionDraft{
		ID:          uuid.New().String(),
		Type:        QuestionSingleChoice,
		ScoreWeight: 1,
		Choices: []ChoiceDraft{
			{ID: uuid.New().String(), Label: "Option A", Value: 1},
			{ID: uuid.New().String(), Label: "Option B", Value: 2},
		},
		ScaleMin:     1,
		ScaleMax:     5,
		ScaleVariant: ScaleVariantNumber,
	}
}

// QuestionPatch holds the fields UpdateQuestion may merge. Nil means leave
// unchanged.
type QuestionPatch struct {
	Type         *QuestionType
	Prompt       *string
	Details      *string
	ScoreWeight  *float64
	ScaleMin     *int
	ScaleMax     *int
	ScaleVariant *ScaleVariant
}

// ChoicePatch holds the fields UpdateChoice may merge.
type ChoicePatch struct {
	Label       *string
	Description *string
	Value       *int
}

func cloneQuestions(qs []QuestionDraft) []QuestionDraft {
	out := make([]QuestionDraft, len(qs))
	copy(out, qs)
	return out
}

// AddQuestion appends a default question.
func (d TemplateDraft) AddQuestion() TemplateDraft {
	d.Questions = append(cloneQuestions(d.Questions), NewEmptyQuestion())
	return d
}

// RemoveQuestion drops the question with the given id; no-op when absent.
func (d TemplateDraft) RemoveQuestion(questionID string) TemplateDraft {
	out := make([]QuestionDraft, 0, len(d.Questions))
	for _, q := range d.Questions {
		if q.ID != questionID {
			out = append(out, q)
		}
	}
	d.Questions = out
	return d
}

// QuestionIndex returns the position of the question with the given id, or
// -1 when absent.
func (d TemplateDraft) QuestionIndex(questionID string) int {
	for i, q := range d.Questions {
		if q.ID == questionID {
			return i
		}
	}
	return -1
}

func (d TemplateDraft) mutateQuestion(questionID string, fn func(QuestionDraft) QuestionDraft) TemplateDraft {
	out := cloneQuestions(d.Questions)
	for i, q := range out {
		if q.ID == questionID {
			out[i] = fn(q)
		}
	}
	d.Questions = out
	return d
}

// UpdateQuestion merges the patch into the question. Changing the type does
// not reset type-specific fields; the previous configuration stays available
// if the type is switched back.
func (d TemplateDraft) UpdateQuestion(questionID string, patch QuestionPatch) TemplateDraft {
	return d.mutateQuestion(questionID, func(q QuestionDraft) QuestionDraft {
		if patch.Type != nil {
			q.Type = *patch.Type
		}
		if patch.Prompt != nil {
			q.Prompt = *patch.Prompt
		}
		if patch.Details != nil {
			q.Details = *patch.Details
		}
		if patch.ScoreWeight != nil {
			q.ScoreWeight = *patch.ScoreWeight
		}
		if patch.ScaleMin != nil {
			q.ScaleMin = *patch.ScaleMin
		}
		if patch.ScaleMax != nil {
			q.ScaleMax = *patch.ScaleMax
		}
		if patch.ScaleVariant != nil {
			q.ScaleVariant = *patch.ScaleVariant
		}
		return q
	})
}

// AddChoice appends an option labelled "Option N" whose value is strictly
// greater than every existing value, so removals never cause reuse.
func (d TemplateDraft) AddChoice(questionID string) TemplateDraft {
	return d.mutateQuestion(questionID, func(q QuestionDraft) QuestionDraft {
		maxValue := 0
		for _, c := range q.Choices {
			if c.Value > maxValue {
				maxValue = c.Value
			}
		}
		choices := make([]ChoiceDraft, len(q.Choices), len(q.Choices)+1)
		copy(choices, q.Choices)
		q.Choices = append(choices, ChoiceDraft{
			ID:    uuid.New().String(),
			Label: "Option " + strconv.Itoa(len(q.Choices)+1),
			Value: maxValue + 1,
		})
		return q
	})
}

// UpdateChoice merges the patch into one choice of one question.
func (d TemplateDraft) UpdateChoice(questionID, choiceID string, patch ChoicePatch) TemplateDraft {
	return d.mutateQuestion(questionID, func(q QuestionDraft) QuestionDraft {
		choices := make([]ChoiceDraft, len(q.Choices))
		copy(choices, q.Choices)
		for i, c := range choices {
			if c.ID != choiceID {
				continue
			}
			if patch.Label != nil {
				c.Label = *patch.Label
			}
			if patch.Description != nil {
				c.Description = *patch.Description
			}
			if patch.Value != nil {
				c.Value = *patch.Value
			}
			choices[i] = c
		}
		q.Choices = choices
		return q
	})
}

// RemoveChoice drops one choice; no minimum count is enforced here.
func (d TemplateDraft) RemoveChoice(questionID, choiceID string) TemplateDraft {
	return d.mutateQuestion(questionID, func(q QuestionDraft) QuestionDraft {
		out := make([]ChoiceDraft, 0, len(q.Choices))
		for _, c := range q.Choices {
			if c.ID != choiceID {
				out = append(out, c)
			}
		}
		q.Choices = out
		return q
	})
}

// AddScaleLabel registers an empty label for the value. Idempotent: a value
// that already has a label is left alone.
func (d TemplateDraft) AddScaleLabel(questionID string, value int) TemplateDraft {
	return d.mutateQuestion(questionID, func(q QuestionDraft) QuestionDraft {
		for _, l := range q.ScaleLabels {
			if l.Value == value {
				return q
			}
		}
		labels := make([]ScaleLabelDraft, len(q.ScaleLabels), len(q.ScaleLabels)+1)
		copy(labels, q.ScaleLabels)
		q.ScaleLabels = append(labels, ScaleLabelDraft{Value: value})
		return q
	})
}

// UpdateScaleLabel sets the text of the label at the value.
func (d TemplateDraft) UpdateScaleLabel(questionID string, value int, label string) TemplateDraft {
	return d.mutateQuestion(questionID, func(q QuestionDraft) QuestionDraft {
		labels := make([]ScaleLabelDraft, len(q.ScaleLabels))
		copy(labels, q.ScaleLabels)
		for i, l := range labels {
			if l.Value == value {
				labels[i].Label = label
			}
		}
		q.ScaleLabels = labels
		return q
	})
}

// RemoveScaleLabel drops the label at the value.
func (d TemplateDraft) RemoveScaleLabel(questionID string, value int) TemplateDraft {
	return d.mutateQuestion(questionID, func(q QuestionDraft) QuestionDraft {
		out := make([]ScaleLabelDraft, 0, len(q.ScaleLabels))
		for _, l := range q.ScaleLabels {
			if l.Value != value {
				out = append(out, l)
			}
		}
		q.ScaleLabels = out
		return q
	})
}
