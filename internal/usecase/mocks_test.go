package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"career-compass/internal/domain/assessment"
	"career-compass/internal/domain/catalog"
	"career-compass/internal/domain/grading"
	"career-compass/internal/domain/recommendation"
	"career-compass/internal/domain/user"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

var errBoom = errors.New("boom")

type memTestRepo struct {
	items map[uuid.UUID]assessment.Test
}

func newMemTestRepo() *memTestRepo {
	return &memTestRepo{items: map[uuid.UUID]assessment.Test{}}
}

func (m *memTestRepo) Create(_ context.Context, t assessment.Test) (assessment.Test, error) {
	for _, existing := range m.items {
		if existing.Title == t.Title {
			return assessment.Test{}, repository.ErrTestTitleTaken
		}
	}
	t.CreatedAt = time.Now().UTC()
	t.UpdatedAt = t.CreatedAt
	m.items[t.ID] = t
	return t, nil
}

func (m *memTestRepo) GetByID(_ context.Context, id uuid.UUID) (assessment.Test, error) {
	t, ok := m.items[id]
	if !ok {
		return assessment.Test{}, repository.ErrTestNotFound
	}
	return t, nil
}

func (m *memTestRepo) ExistsByTitle(_ context.Context, title string, excludeID uuid.UUID) (bool, error) {
	for id, t := range m.items {
		if id != excludeID && t.Title == strings.TrimSpace(title) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memTestRepo) Update(_ context.Context, id uuid.UUID, mutate func(t *assessment.Test) error) (assessment.Test, error) {
	t, ok := m.items[id]
	if !ok {
		return assessment.Test{}, repository.ErrTestNotFound
	}
	if err := mutate(&t); err != nil {
		return assessment.Test{}, err
	}
	t.UpdatedAt = time.Now().UTC()
	m.items[id] = t
	return t, nil
}

func (m *memTestRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return repository.ErrTestNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memTestRepo) List(_ context.Context, f repository.TestListFilter) ([]assessment.Test, error) {
	out := make([]assessment.Test, 0, len(m.items))
	for _, t := range m.items {
		if f.Category != "" && string(t.Category) != f.Category {
			continue
		}
		if f.ActiveOnly && !t.IsActive {
			continue
		}
		t.Questions = []assessment.Question{}
		out = append(out, t)
	}
	return out, nil
}

func (m *memTestRepo) RandomActive(_ context.Context) (assessment.Test, error) {
	for _, t := range m.items {
		if t.IsActive {
			return t, nil
		}
	}
	return assessment.Test{}, repository.ErrTestNotFound
}

type memResultRepo struct {
	mu        sync.Mutex
	items     []grading.TestResult
	createErr error
}

func (m *memResultRepo) Create(_ context.Context, r grading.TestResult) (grading.TestResult, error) {
	if m.createErr != nil {
		return grading.TestResult{}, m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r.CreatedAt = time.Now().UTC()
	m.items = append(m.items, r)
	return r, nil
}

func (m *memResultRepo) GetByID(_ context.Context, id uuid.UUID) (grading.TestResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.items {
		if r.ID == id {
			return r, nil
		}
	}
	return grading.TestResult{}, repository.ErrTestResultNotFound
}

func (m *memResultRepo) LatestByUser(_ context.Context, userID uuid.UUID) (grading.TestResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.items) - 1; i >= 0; i-- {
		if m.items[i].UserID == userID {
			return m.items[i], nil
		}
	}
	return grading.TestResult{}, repository.ErrTestResultNotFound
}

func (m *memResultRepo) CountByUser(_ context.Context, userID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.items {
		if r.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (m *memResultRepo) StatsByTest(_ context.Context, testID uuid.UUID) (repository.TestStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var st repository.TestStats
	var pct, score float64
	for _, r := range m.items {
		if r.TestID != testID {
			continue
		}
		st.TimesTaken++
		pct += r.Percentage
		score += float64(r.TotalScore)
	}
	if st.TimesTaken > 0 {
		st.AveragePercentage = pct / float64(st.TimesTaken)
		st.AverageScore = score / float64(st.TimesTaken)
	}
	return st, nil
}

type memRecRepo struct {
	mu    sync.Mutex
	items []recommendation.Recommendation
	clock time.Time
}

func (m *memRecRepo) Create(_ context.Context, rec recommendation.Recommendation) (recommendation.Recommendation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clock.IsZero() {
		m.clock = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	m.clock = m.clock.Add(time.Second)
	rec.CreatedAt = m.clock
	m.items = append(m.items, rec)
	return rec, nil
}

func (m *memRecRepo) GetByID(_ context.Context, id uuid.UUID) (recommendation.Recommendation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.items {
		if r.ID == id {
			return r, nil
		}
	}
	return recommendation.Recommendation{}, repository.ErrRecommendationNotFound
}

func (m *memRecRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]recommendation.Recommendation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []recommendation.Recommendation{}
	for _, r := range m.items {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memRecRepo) LatestByUser(ctx context.Context, userID uuid.UUID) (recommendation.Recommendation, error) {
	items, _ := m.ListByUser(ctx, userID)
	if len(items) == 0 {
		return recommendation.Recommendation{}, repository.ErrRecommendationNotFound
	}
	return items[0], nil
}

func (m *memRecRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.items {
		if r.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrRecommendationNotFound
}

func (m *memRecRepo) TopCourses(_ context.Context, limit int) ([]recommendation.CourseStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := map[uuid.UUID]int{}
	out := []recommendation.CourseStat{}
	for _, r := range m.items {
		for _, c := range r.RecommendedCourses {
			i, ok := idx[c.CourseID]
			if !ok {
				i = len(out)
				idx[c.CourseID] = i
				out = append(out, recommendation.CourseStat{CourseID: c.CourseID})
			}
			out[i].Appearances++
			out[i].AverageScore += c.SimilarityScore
		}
	}
	for i := range out {
		out[i].AverageScore /= float64(out[i].Appearances)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Appearances > out[j].Appearances })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type stubCourseRepo struct {
	items []catalog.Course
	err   error
}

func (s stubCourseRepo) ListByStatus(_ context.Context, status string) ([]catalog.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []catalog.Course{}
	for _, c := range s.items {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

type stubJobRepo struct {
	items []catalog.Job
}

func (s stubJobRepo) ListByStatus(_ context.Context, status string) ([]catalog.Job, error) {
	out := []catalog.Job{}
	for _, j := range s.items {
		if j.Status == status {
			out = append(out, j)
		}
	}
	return out, nil
}

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

type recordingNotifier struct {
	mu    sync.Mutex
	users []uuid.UUID
}

func (n *recordingNotifier) RecommendationReady(userID uuid.UUID, _ recommendation.Recommendation) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.users = append(n.users, userID)
}

type memUserRepo struct {
	byID map[uuid.UUID]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[uuid.UUID]user.User{}}
}

func (m *memUserRepo) CreateUser(_ context.Context, u user.User) error {
	m.byID[u.ID] = u
	return nil
}

func (m *memUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetUserByEmail(ctx, email)
	return err == nil, nil
}
