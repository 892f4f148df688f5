package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const (
	onboardingCachePrefix = "onboarding:latest:"
	testCachePrefix       = "tests:def:"
)

func OnboardingCacheKey(userID uuid.UUID) string {
	return onboardingCachePrefix + userID.String()
}

func TestCacheKey(testID uuid.UUID) string {
	return testCachePrefix + testID.String()
}
