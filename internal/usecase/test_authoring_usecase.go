package usecase

import (
	"context"
	"errors"
	"log"
	"math/rand/v2"
	"strings"

	"career-compass/internal/domain/assessment"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type CreateTestInput struct {
	Title              string
	Description        string
	Category           assessment.TestCategory
	Duration           *int
	RandomizeQuestions *bool
	IsActive           *bool
	Questions          []assessment.Question
}

// UpdateTestInput patches a test. Nil fields are left unchanged; a non-nil
// Questions slice replaces the whole question list.
type UpdateTestInput struct {
	Title              *string
	Description        *string
	Category           *assessment.TestCategory
	Duration           *int
	RandomizeQuestions *bool
	IsActive           *bool
	Questions          []assessment.Question
}

type ListTestsParams struct {
	Category   assessment.TestCategory
	ActiveOnly bool
}

type TestAnalytics struct {
	TestID            uuid.UUID
	Title             string
	TotalMarks        int
	QuestionCount     int
	TimesTaken        int
	AveragePercentage float64
	AverageScore      float64
}

type TestAuthoringUsecase interface {
	CreateTest(ctx context.Context, actor Actor, in CreateTestInput) (assessment.Test, error)
	UpdateTest(ctx context.Context, actor Actor, testID uuid.UUID, in UpdateTestInput) (assessment.Test, error)
	GetTest(ctx context.Context, testID uuid.UUID) (assessment.Test, error)
	ListTests(ctx context.Context, params ListTestsParams) ([]assessment.Test, error)
	DeleteTest(ctx context.Context, actor Actor, testID uuid.UUID) error
	RandomTest(ctx context.Context) (assessment.Test, error)
	TakeTest(ctx context.Context, testID uuid.UUID) (assessment.Test, error)
	TestAnalytics(ctx context.Context, testID uuid.UUID) (TestAnalytics, error)
}

type TestAuthoring struct {
	tests   repository.TestRepository
	results repository.TestResultRepository
	cache   Cache
	logger  *log.Logger

	shuffle assessment.Shuffler
}

func NewTestAuthoringUsecase(tests repository.TestRepository, results repository.TestResultRepository, cache Cache, logger *log.Logger) *TestAuthoring {
	return &TestAuthoring{
		tests:   tests,
		results: results,
		cache:   cache,
		logger:  logger,
		shuffle: rand.Shuffle,
	}
}

func (u *TestAuthoring) CreateTest(ctx context.Context, actor Actor, in CreateTestInput) (assessment.Test, error) {
	title := strings.TrimSpace(in.Title)
	duration := assessment.DefaultDuration
	if in.Duration != nil {
		duration = *in.Duration
	}
	if err := assessment.ValidateTestFields(title, in.Category, duration); err != nil {
		return assessment.Test{}, err
	}

	questions, err := buildQuestions(in.Questions)
	if err != nil {
		return assessment.Test{}, err
	}

	exists, err := u.tests.ExistsByTitle(ctx, title, uuid.Nil)
	if err != nil {
		u.logf("[Tests] title check failed title=%q err=%v", title, err)
		return assessment.Test{}, ErrInternal
	}
	if exists {
		return assessment.Test{}, ErrTestTitleConflict
	}

	category := in.Category
	if category == "" {
		category = assessment.TestCategoryCareerAssessment
	}
	if duration == 0 {
		duration = assessment.DefaultDuration
	}

	t := assessment.Test{
		ID:                 uuid.New(),
		Title:              title,
		Description:        strings.TrimSpace(in.Description),
		Category:           category,
		Duration:           duration,
		RandomizeQuestions: boolOr(in.RandomizeQuestions, true),
		CreatedBy:          actor.UserID,
		Questions:          questions,
		IsActive:           boolOr(in.IsActive, true),
	}
	t.RecomputeDerivedFields()

	created, err := u.tests.Create(ctx, t)
	if err != nil {
		return assessment.Test{}, u.mapRepoError("create", err)
	}

	u.logf("[Tests] created test_id=%s title=%q questions=%d total_marks=%d", created.ID, created.Title, len(created.Questions), created.TotalMarks)
	return created, nil
}

func (u *TestAuthoring) UpdateTest(ctx context.Context, actor Actor, testID uuid.UUID, in UpdateTestInput) (assessment.Test, error) {
	var questions []assessment.Question
	if in.Questions != nil {
		qs, err := buildQuestions(in.Questions)
		if err != nil {
			return assessment.Test{}, err
		}
		questions = qs
	}

	updated, err := u.tests.Update(ctx, testID, func(t *assessment.Test) error {
		if !actor.canManage(t.CreatedBy) {
			return ErrForbidden
		}

		if in.Title != nil {
			title := strings.TrimSpace(*in.Title)
			if title != t.Title {
				if err := assessment.ValidateTestFields(title, t.Category, t.Duration); err != nil {
					return err
				}
				exists, err := u.tests.ExistsByTitle(ctx, title, t.ID)
				if err != nil {
					return err
				}
				if exists {
					return ErrTestTitleConflict
				}
				t.Title = title
			}
		}
		if in.Description != nil {
			t.Description = strings.TrimSpace(*in.Description)
		}
		if in.Category != nil {
			if err := assessment.ValidateTestFields(t.Title, *in.Category, t.Duration); err != nil {
				return err
			}
			if *in.Category != "" {
				t.Category = *in.Category
			}
		}
		if in.Duration != nil {
			if err := assessment.ValidateTestFields(t.Title, t.Category, *in.Duration); err != nil {
				return err
			}
			if *in.Duration > 0 {
				t.Duration = *in.Duration
			}
		}
		if in.RandomizeQuestions != nil {
			t.RandomizeQuestions = *in.RandomizeQuestions
		}
		if in.IsActive != nil {
			t.IsActive = *in.IsActive
		}
		if questions != nil {
			t.Questions = questions
		}

		t.RecomputeDerivedFields()
		return nil
	})
	if err != nil {
		return assessment.Test{}, u.mapRepoError("update", err)
	}

	u.invalidateTest(ctx, testID)
	u.logf("[Tests] updated test_id=%s questions=%d total_marks=%d", updated.ID, len(updated.Questions), updated.TotalMarks)
	return updated, nil
}

func (u *TestAuthoring) GetTest(ctx context.Context, testID uuid.UUID) (assessment.Test, error) {
	key := TestCacheKey(testID)
	if u.cache != nil {
		var cached assessment.Test
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	t, err := u.tests.GetByID(ctx, testID)
	if err != nil {
		return assessment.Test{}, u.mapRepoError("get", err)
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, t, 0); err != nil {
			u.logf("[Tests] cache set failed key=%s err=%v", key, err)
		}
	}
	return t, nil
}

func (u *TestAuthoring) ListTests(ctx context.Context, params ListTestsParams) ([]assessment.Test, error) {
	if params.Category != "" && !params.Category.Valid() {
		return nil, ErrInvalidInput
	}
	items, err := u.tests.List(ctx, repository.TestListFilter{
		Category:   string(params.Category),
		ActiveOnly: params.ActiveOnly,
	})
	if err != nil {
		return nil, u.mapRepoError("list", err)
	}
	return items, nil
}

func (u *TestAuthoring) DeleteTest(ctx context.Context, actor Actor, testID uuid.UUID) error {
	t, err := u.tests.GetByID(ctx, testID)
	if err != nil {
		return u.mapRepoError("delete", err)
	}
	if !actor.canManage(t.CreatedBy) {
		return ErrForbidden
	}

	if err := u.tests.Delete(ctx, testID); err != nil {
		return u.mapRepoError("delete", err)
	}

	u.invalidateTest(ctx, testID)
	u.logf("[Tests] deleted test_id=%s by=%s", testID, actor.UserID)
	return nil
}

func (u *TestAuthoring) RandomTest(ctx context.Context) (assessment.Test, error) {
	t, err := u.tests.RandomActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrTestNotFound) {
			return assessment.Test{}, ErrNoActiveTests
		}
		return assessment.Test{}, u.mapRepoError("random", err)
	}
	return t.StudentView(u.shuffle), nil
}

// TakeTest returns the test as a student sees it: no correct answers and,
// when the test asks for it, questions in random order.
func (u *TestAuthoring) TakeTest(ctx context.Context, testID uuid.UUID) (assessment.Test, error) {
	t, err := u.GetTest(ctx, testID)
	if err != nil {
		return assessment.Test{}, err
	}
	return t.StudentView(u.shuffle), nil
}

func (u *TestAuthoring) TestAnalytics(ctx context.Context, testID uuid.UUID) (TestAnalytics, error) {
	t, err := u.GetTest(ctx, testID)
	if err != nil {
		return TestAnalytics{}, err
	}

	stats, err := u.results.StatsByTest(ctx, testID)
	if err != nil {
		u.logf("[Tests] analytics failed test_id=%s err=%v", testID, err)
		return TestAnalytics{}, ErrInternal
	}

	return TestAnalytics{
		TestID:            t.ID,
		Title:             t.Title,
		TotalMarks:        t.TotalMarks,
		QuestionCount:     len(t.Questions),
		TimesTaken:        stats.TimesTaken,
		AveragePercentage: stats.AveragePercentage,
		AverageScore:      stats.AverageScore,
	}, nil
}

// buildQuestions validates the raw questions first so error indexes match the
// caller's input, then fills defaults and assigns ids to new questions.
func buildQuestions(in []assessment.Question) ([]assessment.Question, error) {
	if err := assessment.ValidateQuestions(in); err != nil {
		return nil, err
	}
	out := make([]assessment.Question, len(in))
	for i, q := range in {
		q.ApplyDefaults()
		if q.ID == uuid.Nil {
			q.ID = uuid.New()
		}
		out[i] = q
	}
	return out, nil
}

func (u *TestAuthoring) invalidateTest(ctx context.Context, testID uuid.UUID) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(ctx, TestCacheKey(testID)); err != nil {
		u.logf("[Tests] cache invalidate failed test_id=%s err=%v", testID, err)
	}
}

func (u *TestAuthoring) mapRepoError(op string, err error) error {
	var verr *assessment.ValidationError
	switch {
	case errors.As(err, &verr):
		return err
	case errors.Is(err, repository.ErrTestNotFound):
		return ErrTestNotFound
	case errors.Is(err, repository.ErrTestTitleTaken), errors.Is(err, ErrTestTitleConflict):
		return ErrTestTitleConflict
	case errors.Is(err, ErrForbidden):
		return ErrForbidden
	}
	u.logf("[Tests] %s failed err=%v", op, err)
	return ErrInternal
}

func (u *TestAuthoring) logf(format string, args ...any) {
	if u != nil && u.logger != nil {
		u.logger.Printf(format, args...)
	}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
