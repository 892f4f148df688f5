package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"career-compass/internal/domain/catalog"
	"career-compass/internal/domain/grading"
	"career-compass/internal/domain/recommendation"
	"career-compass/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultTopCoursesLimit = 10
	maxTopCoursesLimit     = 100
)

// RecommendationNotifier is told about every stored recommendation. It must
// not block.
type RecommendationNotifier interface {
	RecommendationReady(userID uuid.UUID, rec recommendation.Recommendation)
}

type RecommendationUsecase interface {
	Generate(ctx context.Context, userID uuid.UUID, tr grading.TestResult) (recommendation.Recommendation, error)
	GenerateForResult(ctx context.Context, actor Actor, testResultID uuid.UUID) (recommendation.Recommendation, error)
	GenerateForUser(ctx context.Context, userID uuid.UUID) (recommendation.Recommendation, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]recommendation.Recommendation, error)
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (recommendation.Recommendation, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
	TopRecommendedCourses(ctx context.Context, limit int) ([]recommendation.CourseStat, error)
}

type Recommendation struct {
	courses  repository.CourseRepository
	jobs     repository.JobRepository
	results  repository.TestResultRepository
	recs     repository.RecommendationRepository
	engine   *recommendation.Engine
	cache    Cache
	notifier RecommendationNotifier
	logger   *log.Logger

	now func() time.Time
}

func NewRecommendationUsecase(
	courses repository.CourseRepository,
	jobs repository.JobRepository,
	results repository.TestResultRepository,
	recs repository.RecommendationRepository,
	engine *recommendation.Engine,
	cache Cache,
	notifier RecommendationNotifier,
	logger *log.Logger,
) *Recommendation {
	if engine == nil {
		engine = recommendation.NewEngine(recommendation.DefaultWeights())
	}
	return &Recommendation{
		courses:  courses,
		jobs:     jobs,
		results:  results,
		recs:     recs,
		engine:   engine,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Generate ranks the active courses and open jobs against the result's
// competency scores and stores a new recommendation. Calling it twice for the
// same result stores two records.
func (u *Recommendation) Generate(ctx context.Context, userID uuid.UUID, tr grading.TestResult) (recommendation.Recommendation, error) {
	started := u.now()

	courses, jobs, err := u.loadCandidates(ctx)
	if err != nil {
		u.logf("[Recommendation] step=load_candidates user_id=%s err=%v", userID, err)
		return recommendation.Recommendation{}, ErrInternal
	}

	rec := u.engine.Build(recommendation.Input{
		UserID:       userID,
		TestResultID: tr.ID,
		Competencies: tr.CompetencyScores,
		Courses:      courses,
		Jobs:         jobs,
		Started:      started,
	})

	saved, err := u.recs.Create(ctx, rec)
	if err != nil {
		u.logf("[Recommendation] step=persist user_id=%s err=%v", userID, err)
		return recommendation.Recommendation{}, ErrInternal
	}

	u.invalidateOnboarding(ctx, userID)
	if u.notifier != nil {
		u.notifier.RecommendationReady(userID, saved)
	}

	u.logf("[Recommendation] step=generate user_id=%s test_result_id=%s courses=%d jobs=%d candidates=%d took=%dms",
		userID, tr.ID, len(saved.RecommendedCourses), len(saved.RecommendedJobs), saved.Meta.CandidateCount, saved.Meta.GenerationTimeMs)
	return saved, nil
}

// loadCandidates reads active courses and open jobs concurrently.
func (u *Recommendation) loadCandidates(ctx context.Context) ([]catalog.Course, []catalog.Job, error) {
	var (
		courses []catalog.Course
		jobs    []catalog.Job
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		courses, err = u.courses.ListByStatus(gctx, catalog.CourseStatusActive)
		return err
	})
	g.Go(func() error {
		var err error
		jobs, err = u.jobs.ListByStatus(gctx, catalog.JobStatusOpen)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return courses, jobs, nil
}

func (u *Recommendation) GenerateForResult(ctx context.Context, actor Actor, testResultID uuid.UUID) (recommendation.Recommendation, error) {
	tr, err := u.results.GetByID(ctx, testResultID)
	if err != nil {
		return recommendation.Recommendation{}, u.mapResultError(err)
	}
	if !actor.canManage(tr.UserID) {
		return recommendation.Recommendation{}, ErrForbidden
	}
	return u.Generate(ctx, tr.UserID, tr)
}

// GenerateForUser regenerates from the user's most recent test result.
func (u *Recommendation) GenerateForUser(ctx context.Context, userID uuid.UUID) (recommendation.Recommendation, error) {
	tr, err := u.results.LatestByUser(ctx, userID)
	if err != nil {
		return recommendation.Recommendation{}, u.mapResultError(err)
	}
	return u.Generate(ctx, userID, tr)
}

func (u *Recommendation) ListMine(ctx context.Context, userID uuid.UUID) ([]recommendation.Recommendation, error) {
	items, err := u.recs.ListByUser(ctx, userID)
	if err != nil {
		u.logf("[Recommendation] step=list user_id=%s err=%v", userID, err)
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Recommendation) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (recommendation.Recommendation, error) {
	rec, err := u.recs.GetByID(ctx, id)
	if err != nil {
		return recommendation.Recommendation{}, u.mapRecommendationError(err)
	}
	if !actor.canManage(rec.UserID) {
		return recommendation.Recommendation{}, ErrForbidden
	}
	return rec, nil
}

func (u *Recommendation) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	rec, err := u.GetByID(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := u.recs.Delete(ctx, id); err != nil {
		return u.mapRecommendationError(err)
	}

	u.invalidateOnboarding(ctx, rec.UserID)
	u.logf("[Recommendation] step=delete id=%s user_id=%s by=%s", id, rec.UserID, actor.UserID)
	return nil
}

func (u *Recommendation) TopRecommendedCourses(ctx context.Context, limit int) ([]recommendation.CourseStat, error) {
	if limit < 0 || limit > maxTopCoursesLimit {
		return nil, ErrInvalidInput
	}
	if limit == 0 {
		limit = defaultTopCoursesLimit
	}
	stats, err := u.recs.TopCourses(ctx, limit)
	if err != nil {
		u.logf("[Recommendation] step=top_courses err=%v", err)
		return nil, ErrInternal
	}
	return stats, nil
}

func (u *Recommendation) invalidateOnboarding(ctx context.Context, userID uuid.UUID) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(ctx, OnboardingCacheKey(userID)); err != nil {
		u.logf("[Recommendation] cache invalidate failed user_id=%s err=%v", userID, err)
	}
}

func (u *Recommendation) mapResultError(err error) error {
	if errors.Is(err, repository.ErrTestResultNotFound) {
		return ErrTestResultNotFound
	}
	u.logf("[Recommendation] load result failed err=%v", err)
	return ErrInternal
}

func (u *Recommendation) mapRecommendationError(err error) error {
	if errors.Is(err, repository.ErrRecommendationNotFound) {
		return ErrRecommendationNotFound
	}
	u.logf("[Recommendation] load failed err=%v", err)
	return ErrInternal
}

func (u *Recommendation) logf(format string, args ...any) {
	if u != nil && u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
