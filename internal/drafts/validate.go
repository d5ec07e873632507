package drafts

import (
	"math"
	"strconv"
	"strings"
)

// FieldErrors maps a dotted field path (templateName, questions,
// questions.<i>.prompt, ...) to a human-readable message. An empty map means
// the draft is submittable.
type FieldErrors map[string]string

// Clear removes the given paths, returning a new map. The receiver is not
// modified.
func (e FieldErrors) Clear(paths ...string) FieldErrors {
	touched := false
	for _, p := range paths {
		if _, ok := e[p]; ok {
			touched = true
			break
		}
	}
	if !touched {
		return e
	}
	out := make(FieldErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	for _, p := range paths {
		delete(out, p)
	}
	return out
}

// Validate checks the structural rules for submission. Every rule is
// evaluated; nothing short-circuits.
func Validate(d TemplateDraft) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(d.Name) == "" {
		errs["templateName"] = "Template name is required."
	}

	if len(d.Questions) == 0 {
		errs["questions"] = "Add at least one question."
	}

	for i, q := range d.Questions {
		path := "questions." + strconv.Itoa(i)

		if strings.TrimSpace(q.Prompt) == "" {
			errs[path+".prompt"] = "Prompt is required."
		}

		if math.IsNaN(q.ScoreWeight) || q.ScoreWeight < 0 {
			errs[path+".scoreWeight"] = "Score weight must be zero or positive."
		}

		if q.Type.HasChoices() && len(q.Choices) < 2 {
			errs[path+".choices"] = "Provide at least two options."
		}

		if q.Type == QuestionScale && q.ScaleMin >= q.ScaleMax {
			errs[path+".scale"] = "Maximum must be greater than minimum."
		}
	}

	return errs
}
