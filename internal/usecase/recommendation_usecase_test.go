package usecase

import (
	"context"
	"errors"
	"testing"

	"career-compass/internal/domain/grading"
	"career-compass/internal/domain/user"
	"career-compass/internal/domain/vector"

	"github.com/google/uuid"
)

type recommendationFixture struct {
	uc       *Recommendation
	results  *memResultRepo
	recs     *memRecRepo
	cache    *memCache
	notifier *recordingNotifier
}

func newRecommendationFixture() recommendationFixture {
	courses, jobs := sampleCatalog()
	f := recommendationFixture{
		results:  &memResultRepo{},
		recs:     &memRecRepo{},
		cache:    newMemCache(),
		notifier: &recordingNotifier{},
	}
	f.uc = NewRecommendationUsecase(courses, jobs, f.results, f.recs, nil, f.cache, f.notifier, nil)
	return f
}

func (f recommendationFixture) storeResult(t *testing.T, userID uuid.UUID) grading.TestResult {
	t.Helper()
	tr, err := f.results.Create(context.Background(), grading.TestResult{
		ID:               uuid.New(),
		UserID:           userID,
		TestID:           uuid.New(),
		CompetencyScores: vector.Competencies{Analytical: 3, Verbal: 1},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return tr
}

func TestGenerate_AlwaysStoresNewRecord(t *testing.T) {
	f := newRecommendationFixture()
	userID := uuid.New()
	tr := f.storeResult(t, userID)
	ctx := context.Background()

	_ = f.cache.SetJSON(ctx, OnboardingCacheKey(userID), "stale", 0)

	first, err := f.uc.Generate(ctx, userID, tr)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := f.uc.Generate(ctx, userID, tr)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("expected distinct recommendation ids")
	}
	if len(f.recs.items) != 2 {
		t.Fatalf("expected 2 stored recommendations, got %d", len(f.recs.items))
	}
	if f.cache.has(OnboardingCacheKey(userID)) {
		t.Fatalf("expected onboarding cache to be invalidated")
	}
	if len(f.notifier.users) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(f.notifier.users))
	}
	if got := first.TopCompetencies; len(got) != 3 || got[0] != "analytical" || got[1] != "verbal" || got[2] != "creative" {
		t.Fatalf("unexpected top competencies %v", got)
	}
}

func TestGenerate_CatalogFailure(t *testing.T) {
	_, jobs := sampleCatalog()
	recs := &memRecRepo{}
	uc := NewRecommendationUsecase(stubCourseRepo{err: errBoom}, jobs, &memResultRepo{}, recs, nil, nil, nil, nil)

	if _, err := uc.Generate(context.Background(), uuid.New(), grading.TestResult{ID: uuid.New()}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if len(recs.items) != 0 {
		t.Fatalf("nothing may be stored on failure")
	}
}

func TestGenerateForResult_Ownership(t *testing.T) {
	f := newRecommendationFixture()
	owner := uuid.New()
	tr := f.storeResult(t, owner)
	ctx := context.Background()

	stranger := Actor{UserID: uuid.New(), Role: user.RoleStudent}
	if _, err := f.uc.GenerateForResult(ctx, stranger, tr.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	admin := Actor{UserID: uuid.New(), Role: user.RoleAdmin}
	rec, err := f.uc.GenerateForResult(ctx, admin, tr.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.UserID != owner {
		t.Fatalf("recommendation must belong to the result owner")
	}

	if _, err := f.uc.GenerateForResult(ctx, admin, uuid.New()); !errors.Is(err, ErrTestResultNotFound) {
		t.Fatalf("expected ErrTestResultNotFound, got %v", err)
	}
}

func TestGenerateForUser_UsesLatestResult(t *testing.T) {
	f := newRecommendationFixture()
	userID := uuid.New()
	ctx := context.Background()

	if _, err := f.uc.GenerateForUser(ctx, userID); !errors.Is(err, ErrTestResultNotFound) {
		t.Fatalf("expected ErrTestResultNotFound, got %v", err)
	}

	f.storeResult(t, userID)
	latest := f.storeResult(t, userID)

	rec, err := f.uc.GenerateForUser(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.TestResultID != latest.ID {
		t.Fatalf("expected latest result to be used")
	}
}

func TestGetByIDAndDelete(t *testing.T) {
	f := newRecommendationFixture()
	owner := Actor{UserID: uuid.New(), Role: user.RoleStudent}
	ctx := context.Background()
	rec, err := f.uc.Generate(ctx, owner.UserID, f.storeResult(t, owner.UserID))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := f.uc.GetByID(ctx, owner, rec.ID); err != nil {
		t.Fatalf("owner should read own recommendation, got %v", err)
	}
	other := Actor{UserID: uuid.New(), Role: user.RoleStudent}
	if _, err := f.uc.GetByID(ctx, other, rec.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := f.uc.Delete(ctx, other, rec.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	_ = f.cache.SetJSON(ctx, OnboardingCacheKey(owner.UserID), rec, 0)
	if err := f.uc.Delete(ctx, owner, rec.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if f.cache.has(OnboardingCacheKey(owner.UserID)) {
		t.Fatalf("expected onboarding cache to be invalidated on delete")
	}
	if _, err := f.uc.GetByID(ctx, owner, rec.ID); !errors.Is(err, ErrRecommendationNotFound) {
		t.Fatalf("expected ErrRecommendationNotFound, got %v", err)
	}
}

func TestListMine_NewestFirst(t *testing.T) {
	f := newRecommendationFixture()
	userID := uuid.New()
	ctx := context.Background()
	tr := f.storeResult(t, userID)

	first, _ := f.uc.Generate(ctx, userID, tr)
	second, _ := f.uc.Generate(ctx, userID, tr)
	if _, err := f.uc.Generate(ctx, uuid.New(), tr); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	items, err := f.uc.ListMine(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 || items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("expected newest first for the user only")
	}
}

func TestTopRecommendedCourses(t *testing.T) {
	f := newRecommendationFixture()
	ctx := context.Background()

	if _, err := f.uc.TopRecommendedCourses(ctx, -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	for i := 0; i < 3; i++ {
		userID := uuid.New()
		if _, err := f.uc.Generate(ctx, userID, f.storeResult(t, userID)); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}

	stats, err := f.uc.TopRecommendedCourses(ctx, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(stats) != 1 || stats[0].Appearances != 3 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}
