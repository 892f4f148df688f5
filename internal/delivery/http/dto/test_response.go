package dto

import (
	"time"

	"career-compass/internal/domain/assessment"
	"career-compass/internal/usecase"

	"github.com/google/uuid"
)

type TestSummaryResponse struct {
	ID                    uuid.UUID               `json:"id"`
	Title                 string                  `json:"title"`
	Description           string                  `json:"description"`
	Category              assessment.TestCategory `json:"category"`
	Duration              int                     `json:"duration"`
	TotalMarks            int                     `json:"totalMarks"`
	IsActive              bool                    `json:"isActive"`
	DominantCareerSignals []string                `json:"dominantCareerSignals"`
	CreatedBy             uuid.UUID               `json:"createdBy"`
	CreatedAt             time.Time               `json:"createdAt"`
}

func NewTestSummaries(items []assessment.Test) []TestSummaryResponse {
	out := make([]TestSummaryResponse, 0, len(items))
	for _, t := range items {
		signals := t.DominantCareerSignals
		if signals == nil {
			signals = []string{}
		}
		out = append(out, TestSummaryResponse{
			ID:                    t.ID,
			Title:                 t.Title,
			Description:           t.Description,
			Category:              t.Category,
			Duration:              t.Duration,
			TotalMarks:            t.TotalMarks,
			IsActive:              t.IsActive,
			DominantCareerSignals: signals,
			CreatedBy:             t.CreatedBy,
			CreatedAt:             t.CreatedAt,
		})
	}
	return out
}

type TestAnalyticsResponse struct {
	TestID            uuid.UUID `json:"testId"`
	Title             string    `json:"title"`
	TotalMarks        int       `json:"totalMarks"`
	QuestionCount     int       `json:"questionCount"`
	TimesTaken        int       `json:"timesTaken"`
	AveragePercentage float64   `json:"averagePercentage"`
	AverageScore      float64   `json:"averageScore"`
}

func NewTestAnalyticsResponse(a usecase.TestAnalytics) TestAnalyticsResponse {
	return TestAnalyticsResponse{
		TestID:            a.TestID,
		Title:             a.Title,
		TotalMarks:        a.TotalMarks,
		QuestionCount:     a.QuestionCount,
		TimesTaken:        a.TimesTaken,
		AveragePercentage: a.AveragePercentage,
		AverageScore:      a.AverageScore,
	}
}
