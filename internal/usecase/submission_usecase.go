package usecase

import (
	"context"
	"log"

	"career-compass/internal/domain/assessment"
	"career-compass/internal/domain/grading"
	"career-compass/internal/domain/recommendation"
	"career-compass/internal/domain/vector"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type SubmissionOutcome struct {
	TestResultID      uuid.UUID
	TotalScore        int
	TotalPossible     int
	Percentage        float64
	CompetencyProfile vector.Competencies
	Recommendation    recommendation.Recommendation
}

type SubmissionUsecase interface {
	Submit(ctx context.Context, userID, testID uuid.UUID, sub grading.Submission) (SubmissionOutcome, error)
}

type testLoader interface {
	GetTest(ctx context.Context, testID uuid.UUID) (assessment.Test, error)
}

type recommender interface {
	Generate(ctx context.Context, userID uuid.UUID, tr grading.TestResult) (recommendation.Recommendation, error)
}

type Submission struct {
	tests       testLoader
	results     repository.TestResultRepository
	recommender recommender
	logger      *log.Logger
}

func NewSubmissionUsecase(tests testLoader, results repository.TestResultRepository, rec recommender, logger *log.Logger) *Submission {
	return &Submission{tests: tests, results: results, recommender: rec, logger: logger}
}

// Submit grades the answers, stores the result and only then generates the
// recommendation from the stored result. Inactive tests are still accepted.
func (u *Submission) Submit(ctx context.Context, userID, testID uuid.UUID, sub grading.Submission) (SubmissionOutcome, error) {
	test, err := u.tests.GetTest(ctx, testID)
	if err != nil {
		return SubmissionOutcome{}, err
	}

	graded := grading.Grade(test, sub)
	tr, err := u.results.Create(ctx, grading.NewTestResult(userID, testID, graded))
	if err != nil {
		u.logf("[Submission] persist failed user_id=%s test_id=%s err=%v", userID, testID, err)
		return SubmissionOutcome{}, ErrInternal
	}

	u.logf("[Submission] graded user_id=%s test_id=%s result_id=%s score=%d/%d answered=%d",
		userID, testID, tr.ID, tr.TotalScore, tr.TotalPossible, len(tr.Responses))

	rec, err := u.recommender.Generate(ctx, userID, tr)
	if err != nil {
		return SubmissionOutcome{}, err
	}

	return SubmissionOutcome{
		TestResultID:      tr.ID,
		TotalScore:        tr.TotalScore,
		TotalPossible:     tr.TotalPossible,
		Percentage:        tr.Percentage,
		CompetencyProfile: tr.CompetencyScores,
		Recommendation:    rec,
	}, nil
}

func (u *Submission) logf(format string, args ...any) {
	if u != nil && u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
