package usecase

import (
	"context"
	"errors"
	"log"

	"career-compass/internal/domain/recommendation"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

const MessageAssessmentRequired = "Student must take career assessment"

type OnboardingStatus struct {
	HasTakenTest   bool
	Recommendation *recommendation.Recommendation
	Message        string
}

type OnboardingUsecase interface {
	Check(ctx context.Context, userID uuid.UUID) (OnboardingStatus, error)
}

type Onboarding struct {
	results repository.TestResultRepository
	recs    repository.RecommendationRepository
	cache   Cache
	logger  *log.Logger
}

func NewOnboardingUsecase(results repository.TestResultRepository, recs repository.RecommendationRepository, cache Cache, logger *log.Logger) *Onboarding {
	return &Onboarding{results: results, recs: recs, cache: cache, logger: logger}
}

func (u *Onboarding) Check(ctx context.Context, userID uuid.UUID) (OnboardingStatus, error) {
	n, err := u.results.CountByUser(ctx, userID)
	if err != nil {
		u.logf("[Onboarding] count failed user_id=%s err=%v", userID, err)
		return OnboardingStatus{}, ErrInternal
	}
	if n == 0 {
		return OnboardingStatus{HasTakenTest: false, Message: MessageAssessmentRequired}, nil
	}

	rec, err := u.latest(ctx, userID)
	if err != nil {
		return OnboardingStatus{}, err
	}
	return OnboardingStatus{HasTakenTest: true, Recommendation: rec}, nil
}

func (u *Onboarding) latest(ctx context.Context, userID uuid.UUID) (*recommendation.Recommendation, error) {
	key := OnboardingCacheKey(userID)
	if u.cache != nil {
		var cached recommendation.Recommendation
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			u.logf("[Onboarding] Cache HIT: %s", key)
			return &cached, nil
		}
	}

	rec, err := u.recs.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRecommendationNotFound) {
			return nil, nil
		}
		u.logf("[Onboarding] latest failed user_id=%s err=%v", userID, err)
		return nil, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, rec, 0); err != nil {
			u.logf("[Onboarding] cache set failed key=%s err=%v", key, err)
		}
	}
	return &rec, nil
}

func (u *Onboarding) logf(format string, args ...any) {
	if u != nil && u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
