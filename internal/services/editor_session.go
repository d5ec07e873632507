package services

import (
	"context"
	"errors"
	"strconv"

	"assessly/internal/drafts"
	"github.com/google/uuid"
)

type SessionState string

const (
	SessionIdle       SessionState = "idle"
	SessionHydrating  SessionState = "hydrating"
	SessionReady      SessionState = "ready"
	SessionSubmitting SessionState = "submitting"
	SessionDone       SessionState = "done"
	SessionFailed     SessionState = "failed"
)

var (
	ErrSessionNotReady  = errors.New("session is not accepting edits")
	ErrSessionSubmitted = errors.New("session already submitted")
)

// EditorSession owns one template draft for its whole editing lifecycle:
// hydrate, mutate, validate, persist. All state lives on the session value,
// so independent sessions can coexist in one process. A session is not safe
// for concurrent use; callers are expected to drive it from a single
// goroutine, mirroring the sequential submit/mutate flow it models.
type EditorSession struct {
	service    TemplateServiceInterface
	ownerID    uuid.UUID
	templateID *uuid.UUID

	state       SessionState
	draft       drafts.TemplateDraft
	fieldErrors drafts.FieldErrors
	loadErr     error
	submitErr   error
	savedID     uuid.UUID
	disposed    bool
}

// NewEditorSession starts a session for the given acting owner. A nil
// templateID authors a new template; the draft then starts with one default
// question and the session is immediately ready.
func NewEditorSession(service TemplateServiceInterface, ownerID uuid.UUID, templateID *uuid.UUID) *EditorSession {
	s := &EditorSession{
		service:     service,
		ownerID:     ownerID,
		templateID:  templateID,
		state:       SessionIdle,
		fieldErrors: drafts.FieldErrors{},
	}
	if templateID == nil {
		s.draft = drafts.NewTemplateDraft()
		s.state = SessionReady
	}
	return s
}

// Hydrate loads the persisted template into the session. No-op for sessions
// authoring a new template. A response arriving after Dispose is discarded.
func (s *EditorSession) Hydrate(ctx context.Context) error {
	if s.state != SessionIdle || s.templateID == nil {
		return nil
	}
	s.state = SessionHydrating

	draft, err := s.service.HydrateDraft(ctx, *s.templateID)

	if s.disposed {
		return nil
	}
	if err != nil {
		// A load failure is terminal: the session never becomes editable
		// and a later Hydrate call is a no-op.
		s.state = SessionFailed
		s.loadErr = err
		return err
	}

	s.draft = draft
	s.state = SessionReady
	return nil
}

// Dispose marks the session torn down. An in-flight hydration result will
// not be applied afterwards.
func (s *EditorSession) Dispose() {
	s.disposed = true
}

func (s *EditorSession) State() SessionState             { return s.state }
func (s *EditorSession) Draft() drafts.TemplateDraft     { return s.draft }
func (s *EditorSession) FieldErrors() drafts.FieldErrors { return s.fieldErrors }
func (s *EditorSession) LoadError() error                { return s.loadErr }
func (s *EditorSession) SubmitError() error              { return s.submitErr }
func (s *EditorSession) SavedTemplateID() uuid.UUID      { return s.savedID }

func (s *EditorSession) mutable() error {
	if s.state != SessionReady {
		return ErrSessionNotReady
	}
	return nil
}

// questionErrorPaths qualifies per-question error keys with the question's
// current index, matching the validator's dotted paths.
func (s *EditorSession) questionErrorPaths(questionID string, keys ...string) []string {
	index := s.draft.QuestionIndex(questionID)
	if index < 0 {
		return nil
	}
	base := "questions." + strconv.Itoa(index)
	paths := make([]string, 0, len(keys))
	for _, key := range keys {
		if key == "" {
			paths = append(paths, base)
			continue
		}
		paths = append(paths, base+"."+key)
	}
	return paths
}

func (s *EditorSession) SetName(name string) error {
	if err := s.mutable(); err != nil {
		return err
	}
	s.draft.Name = name
	s.fieldErrors = s.fieldErrors.Clear("templateName")
	return nil
}

func (s *EditorSession) SetDescription(description string) error {
	if err := s.mutable(); err != nil {
		return err
	}
	s.draft.Description = description
	return nil
}

func (s *EditorSession) AddQuestion() error {
	if err := s.mutable(); err != nil {
		return err
	}
	s.draft = s.draft.AddQuestion()
	s.fieldErrors = s.fieldErrors.Clear("questions")
	return nil
}

func (s *EditorSession) RemoveQuestion(questionID string) error {
	if err := s.mutable(); err != nil {
		return err
	}
	s.draft = s.draft.RemoveQuestion(questionID)
	return nil
}

// UpdateQuestion merges the patch and clears the validation errors the
// patched fields were covering.
func (s *EditorSession) UpdateQuestion(questionID string, patch drafts.QuestionPatch) error {
	if err := s.mutable(); err != nil {
		return err
	}

	var keys []string
	if patch.Prompt != nil {
		keys = append(keys, "prompt")
	}
	if patch.ScoreWeight != nil {
		keys = append(keys, "scoreWeight")
	}
	if patch.ScaleMin != nil || patch.ScaleMax != nil {
		keys = append(keys, "scale")
	}
	if patch.Type != nil {
		keys = append(keys, "choices", "scale")
	}
	paths := s.questionErrorPaths(questionID, keys...)

	s.draft = s.draft.UpdateQuestion(questionID, patch)
	s.fieldErrors = s.fieldErrors.Clear(paths...)
	return nil
}

func (s *EditorSession) AddChoice(questionID string) error {
	if err := s.mutable(); err != nil {
		return err
	}
	paths := s.questionErrorPaths(questionID, "choices")
	s.draft = s.draft.AddChoice(questionID)
	s.fieldErrors = s.fieldErrors.Clear(paths...)
	return nil
}

func (s *EditorSession) UpdateChoice(questionID, choiceID string, patch drafts.ChoicePatch) error {
	if err := s.mutable(); err != nil {
		return err
	}
	paths := s.questionErrorPaths(questionID, "choices")
	s.draft = s.draft.UpdateChoice(questionID, choiceID, patch)
	s.fieldErrors = s.fieldErrors.Clear(paths...)
	return nil
}

func (s *EditorSession) RemoveChoice(questionID, choiceID string) error {
	if err := s.mutable(); err != nil {
		return err
	}
	paths := s.questionErrorPaths(questionID, "choices")
	s.draft = s.draft.RemoveChoice(questionID, choiceID)
	s.fieldErrors = s.fieldErrors.Clear(paths...)
	return nil
}

func (s *EditorSession) AddScaleLabel(questionID string, value int) error {
	if err := s.mutable(); err != nil {
		return err
	}
	paths := s.questionErrorPaths(questionID, "scale")
	s.draft = s.draft.AddScaleLabel(questionID, value)
	s.fieldErrors = s.fieldErrors.Clear(paths...)
	return nil
}

func (s *EditorSession) UpdateScaleLabel(questionID string, value int, label string) error {
	if err := s.mutable(); err != nil {
		return err
	}
	paths := s.questionErrorPaths(questionID, "scale")
	s.draft = s.draft.UpdateScaleLabel(questionID, value, label)
	s.fieldErrors = s.fieldErrors.Clear(paths...)
	return nil
}

func (s *EditorSession) RemoveScaleLabel(questionID string, value int) error {
	if err := s.mutable(); err != nil {
		return err
	}
	paths := s.questionErrorPaths(questionID, "scale")
	s.draft = s.draft.RemoveScaleLabel(questionID, value)
	s.fieldErrors = s.fieldErrors.Clear(paths...)
	return nil
}

// Submit validates and persists the draft. On validation failure the session
// returns to ready with the error map populated and nothing is written. On
// store failure the draft is preserved so the caller can retry. On success
// the session is done and holds only the durable identifier.
func (s *EditorSession) Submit(ctx context.Context) (uuid.UUID, error) {
	if s.state == SessionDone {
		return uuid.Nil, ErrSessionSubmitted
	}
	if s.state != SessionReady {
		return uuid.Nil, ErrSessionNotReady
	}
	s.state = SessionSubmitting
	s.submitErr = nil

	if errs := drafts.Validate(s.draft); len(errs) > 0 {
		s.fieldErrors = errs
		s.state = SessionReady
		return uuid.Nil, &ValidationError{Fields: errs}
	}

	id, err := s.service.SaveDraft(ctx, s.ownerID, s.templateID, s.draft)
	if err != nil {
		s.submitErr = err
		s.state = SessionReady
		return uuid.Nil, err
	}

	s.savedID = id
	s.draft = drafts.TemplateDraft{}
	s.fieldErrors = drafts.FieldErrors{}
	s.state = SessionDone
	return id, nil
}
