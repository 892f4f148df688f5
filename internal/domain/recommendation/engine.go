package recommendation

import (
	"sort"
	"time"

	"career-compass/internal/domain/catalog"
	"career-compass/internal/domain/vector"

	"github.com/google/uuid"
)

const topCompetencyCount = 3

// Weights are the blend factors for the final score. Similarity and boost
// weights of one kind are expected to sum to 1 but this is not enforced.
type Weights struct {
	CourseSimilarity float64
	CourseBoost      float64
	JobSimilarity    float64
	JobBoost         float64
	TopK             int
}

func DefaultWeights() Weights {
	return Weights{
		CourseSimilarity: 0.85,
		CourseBoost:      0.15,
		JobSimilarity:    0.9,
		JobBoost:         0.1,
		TopK:             30,
	}
}

type Engine struct {
	weights Weights
}

func NewEngine(w Weights) *Engine {
	if w.TopK <= 0 {
		w.TopK = DefaultWeights().TopK
	}
	return &Engine{weights: w}
}

func (e *Engine) Weights() Weights {
	return e.weights
}

type Input struct {
	UserID       uuid.UUID
	TestResultID uuid.UUID
	Competencies vector.Competencies
	Courses      []catalog.Course
	Jobs         []catalog.Job
	Started      time.Time
}

// Build ranks the candidate courses and jobs against the student's competencies
// and returns a fresh Recommendation. Started is used for GenerationTimeMs and
// should be taken before the candidates were fetched.
func (e *Engine) Build(in Input) Recommendation {
	started := in.Started
	if started.IsZero() {
		started = time.Now()
	}

	courses := e.RankCourses(in.Competencies, in.Courses)
	jobs := e.RankJobs(in.Competencies, in.Jobs)

	return Recommendation{
		ID:                 uuid.New(),
		UserID:             in.UserID,
		TestResultID:       in.TestResultID,
		CompetencyVector:   in.Competencies,
		RecommendedCourses: courses,
		RecommendedJobs:    jobs,
		TopCompetencies:    TopCompetencies(in.Competencies, topCompetencyCount),
		Meta: Meta{
			CandidateCount:   len(in.Courses) + len(in.Jobs),
			GenerationTimeMs: time.Since(started).Milliseconds(),
			Algorithm:        Algorithm,
		},
	}
}

func (e *Engine) RankCourses(student vector.Competencies, courses []catalog.Course) []CourseMatch {
	sv := vector.ToCourseSpace(student).Vector()

	out := make([]CourseMatch, 0, len(courses))
	for _, c := range courses {
		sim := vector.CosineSimilarity(sv, c.SkillOutcomeProfile.Vector())
		out = append(out, CourseMatch{
			CourseID:        c.ID,
			CollegeID:       c.CollegeID,
			SimilarityScore: blend(sim, e.weights.CourseSimilarity, c.Popularity(), e.weights.CourseBoost),
			Reasoning:       CourseReasoning,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SimilarityScore > out[j].SimilarityScore
	})
	if len(out) > e.weights.TopK {
		out = out[:e.weights.TopK]
	}
	return out
}

func (e *Engine) RankJobs(student vector.Competencies, jobs []catalog.Job) []JobMatch {
	sv := vector.ToJobSpace(student).Vector()

	out := make([]JobMatch, 0, len(jobs))
	for _, j := range jobs {
		sim := vector.CosineSimilarity(sv, j.CompetencyWeights.Vector())
		out = append(out, JobMatch{
			JobID:           j.ID,
			SimilarityScore: blend(sim, e.weights.JobSimilarity, j.Priority(), e.weights.JobBoost),
			Reasoning:       JobReasoning,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SimilarityScore > out[j].SimilarityScore
	})
	if len(out) > e.weights.TopK {
		out = out[:e.weights.TopK]
	}
	return out
}

func blend(sim, simWeight, boost, boostWeight float64) float64 {
	return vector.Round(sim*simWeight+(boost/100)*boostWeight, 4)
}

// TopCompetencies returns the n dimension names with the highest raw value.
// Ties keep canonical key order.
func TopCompetencies(c vector.Competencies, n int) []string {
	entries := c.Vector()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries.Keys()
}
