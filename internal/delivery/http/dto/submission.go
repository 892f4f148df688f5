package dto

import (
	"errors"
	"strings"

	"career-compass/internal/domain/assessment"
	"career-compass/internal/domain/grading"
	"career-compass/internal/domain/recommendation"
	"career-compass/internal/domain/vector"
	"career-compass/internal/usecase"

	"github.com/google/uuid"
)

var ErrInvalidQuestionID = errors.New("invalid question id")

type SubmitAnswerRequest struct {
	QuestionID string            `json:"questionId"`
	Answer     assessment.Answer `json:"answer"`
	TimeTaken  int               `json:"timeTaken"`
}

type SubmitTestRequest struct {
	Answers       []SubmitAnswerRequest `json:"answers"`
	DurationTaken int                   `json:"durationTaken"`
}

// ToSubmission keys answers by question id. A repeated question id keeps the
// last answer sent.
func (r SubmitTestRequest) ToSubmission() (grading.Submission, error) {
	sub := grading.Submission{
		Answers:         make(map[uuid.UUID]grading.SubmittedAnswer, len(r.Answers)),
		DurationSeconds: r.DurationTaken,
	}
	for _, a := range r.Answers {
		id, err := uuid.Parse(strings.TrimSpace(a.QuestionID))
		if err != nil {
			return grading.Submission{}, ErrInvalidQuestionID
		}
		sub.Answers[id] = grading.SubmittedAnswer{Answer: a.Answer, TimeTakenSeconds: a.TimeTaken}
	}
	return sub, nil
}

type SubmitTestResponse struct {
	TestResultID      uuid.UUID                     `json:"testResultId"`
	TotalScore        int                           `json:"totalScore"`
	TotalPossible     int                           `json:"totalPossible"`
	Percentage        float64                       `json:"percentage"`
	CompetencyProfile vector.Competencies           `json:"competencyProfile"`
	Recommendation    recommendation.Recommendation `json:"recommendation"`
}

func NewSubmitTestResponse(o usecase.SubmissionOutcome) SubmitTestResponse {
	return SubmitTestResponse{
		TestResultID:      o.TestResultID,
		TotalScore:        o.TotalScore,
		TotalPossible:     o.TotalPossible,
		Percentage:        vector.Round(o.Percentage, 2),
		CompetencyProfile: o.CompetencyProfile,
		Recommendation:    o.Recommendation,
	}
}
