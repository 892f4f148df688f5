package dto

import (
	"career-compass/internal/domain/assessment"
	"career-compass/internal/domain/vector"

	"github.com/google/uuid"
)

type QuestionRequest struct {
	ID                uuid.UUID                   `json:"id"`
	QuestionText      string                      `json:"questionText"`
	Type              assessment.QuestionType     `json:"type"`
	CorrectAnswer     assessment.Answer           `json:"correctAnswer"`
	Marks             int                         `json:"marks"`
	Difficulty        assessment.Difficulty       `json:"difficulty"`
	Competencies      vector.Competencies         `json:"competencies"`
	PersonalityTraits vector.PersonalityTraits    `json:"personalityTraits"`
	CareerTags        []string                    `json:"careerTags"`
	Options           []assessment.Option         `json:"options"`
	QuestionCategory  assessment.QuestionCategory `json:"questionCategory"`
	IsActive          *bool                       `json:"isActive"`
}

type CreateTestRequest struct {
	Title              string                  `json:"title"`
	Description        string                  `json:"description"`
	Category           assessment.TestCategory `json:"category"`
	Duration           *int                    `json:"duration"`
	RandomizeQuestions *bool                   `json:"randomizeQuestions"`
	IsActive           *bool                   `json:"isActive"`
	Questions          []QuestionRequest       `json:"questions"`
}

type UpdateTestRequest struct {
	Title              *string                  `json:"title"`
	Description        *string                  `json:"description"`
	Category           *assessment.TestCategory `json:"category"`
	Duration           *int                     `json:"duration"`
	RandomizeQuestions *bool                    `json:"randomizeQuestions"`
	IsActive           *bool                    `json:"isActive"`
	Questions          []QuestionRequest        `json:"questions"`
}

// ToQuestions converts request questions to domain questions. A nil input stays
// nil so updates can tell "not sent" from "sent empty".
func ToQuestions(in []QuestionRequest) []assessment.Question {
	if in == nil {
		return nil
	}
	out := make([]assessment.Question, len(in))
	for i, q := range in {
		active := true
		if q.IsActive != nil {
			active = *q.IsActive
		}
		out[i] = assessment.Question{
			ID:                q.ID,
			Text:              q.QuestionText,
			Type:              q.Type,
			CorrectAnswer:     q.CorrectAnswer,
			Marks:             q.Marks,
			Difficulty:        q.Difficulty,
			Competencies:      q.Competencies,
			PersonalityTraits: q.PersonalityTraits,
			CareerTags:        q.CareerTags,
			Options:           q.Options,
			QuestionCategory:  q.QuestionCategory,
			IsActive:          active,
		}
	}
	return out
}
