package assessment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrValidation = errors.New("validation failed")

// ValidationError describes why a test definition was rejected. Index is the
// 1-based position of the offending question, or 0 for test-level problems.
type ValidationError struct {
	Index  int
	Reason string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Index > 0 {
		return fmt.Sprintf("Question %d: %s", e.Index, e.Reason)
	}
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func questionError(index int, format string, args ...any) error {
	return &ValidationError{Index: index, Reason: fmt.Sprintf(format, args...)}
}

// ApplyDefaults fills the optional question fields the same way on create and update.
func (q *Question) ApplyDefaults() {
	q.Text = strings.TrimSpace(q.Text)
	if q.Type == "" {
		q.Type = QuestionTypeMCQ
	}
	if q.Marks == 0 {
		q.Marks = DefaultMarks
	}
	if q.Difficulty == "" {
		q.Difficulty = DifficultyMedium
	}
	if q.CareerTags == nil {
		q.CareerTags = []string{}
	}
	if q.Options == nil {
		q.Options = []Option{}
	}
	for i := range q.Options {
		if q.Options[i].Weight == 0 {
			q.Options[i].Weight = 1
		}
	}
}

// ValidateQuestions checks every question and stops at the first invalid one.
func ValidateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return &ValidationError{Reason: "at least one question is required"}
	}
	seen := make(map[uuid.UUID]struct{}, len(questions))
	for i, q := range questions {
		if err := validateQuestion(i+1, q); err != nil {
			return err
		}
		if q.ID == uuid.Nil {
			continue
		}
		if _, dup := seen[q.ID]; dup {
			return questionError(i+1, "duplicate id %s", q.ID)
		}
		seen[q.ID] = struct{}{}
	}
	return nil
}

func validateQuestion(index int, q Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return questionError(index, "text is required")
	}
	if q.QuestionCategory == "" {
		return questionError(index, "category is required")
	}
	if !q.QuestionCategory.Valid() {
		return questionError(index, "invalid category %q", q.QuestionCategory)
	}

	typ := q.Type
	if typ == "" {
		typ = QuestionTypeMCQ
	}
	if !typ.Valid() {
		return questionError(index, "invalid type %q", q.Type)
	}
	if q.Difficulty != "" && !q.Difficulty.Valid() {
		return questionError(index, "invalid difficulty %q", q.Difficulty)
	}
	if q.Marks < 0 {
		return questionError(index, "marks must be a positive integer")
	}

	for _, tag := range q.CareerTags {
		if !ValidCareerTag(tag) {
			return questionError(index, "invalid career tag %q", tag)
		}
	}

	for j, o := range q.Options {
		if strings.TrimSpace(o.Text) == "" {
			return questionError(index, "option %d text is required", j+1)
		}
		if !o.PersonalityImpact.Valid() {
			return questionError(index, "option %d has invalid personality impact %q", j+1, o.PersonalityImpact)
		}
	}

	if typ.IsChoice() {
		if len(q.Options) < 2 {
			return questionError(index, "must have at least 2 options")
		}
		correct := 0
		for _, o := range q.Options {
			if o.IsCorrect {
				correct++
			}
		}
		if correct == 0 {
			return questionError(index, "must have at least one correct option")
		}
	}

	if typ == QuestionTypeNumeric && !q.CorrectAnswer.IsDefined() {
		return questionError(index, "requires correctAnswer")
	}

	return nil
}

// ValidateTestFields checks the test-level scalar fields.
func ValidateTestFields(title string, category TestCategory, duration int) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Reason: "title is required"}
	}
	if category != "" && !category.Valid() {
		return &ValidationError{Reason: fmt.Sprintf("invalid category %q", category)}
	}
	if duration < 0 {
		return &ValidationError{Reason: "duration must not be negative"}
	}
	return nil
}
