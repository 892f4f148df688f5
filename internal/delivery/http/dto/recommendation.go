package dto

import (
	"career-compass/internal/domain/recommendation"
	"career-compass/internal/usecase"
)

type GenerateForResultRequest struct {
	TestResultID string `json:"testResultId"`
}

type OnboardingResponse struct {
	HasTakenTest   bool                           `json:"hasTakenTest"`
	Recommendation *recommendation.Recommendation `json:"recommendation"`
	Message        string                         `json:"message,omitempty"`
}

func NewOnboardingResponse(st usecase.OnboardingStatus) OnboardingResponse {
	return OnboardingResponse{
		HasTakenTest:   st.HasTakenTest,
		Recommendation: st.Recommendation,
		Message:        st.Message,
	}
}
