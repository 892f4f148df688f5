package recommendation

import (
	"time"

	"career-compass/internal/domain/vector"

	"github.com/google/uuid"
)

const (
	Algorithm = "hybrid_cosine_boost_v2"

	CourseReasoning = "Strong alignment with course skill profile."
	JobReasoning    = "Matches required competency strengths."
)

type CourseMatch struct {
	CourseID        uuid.UUID `json:"courseId"`
	CollegeID       uuid.UUID `json:"collegeId"`
	SimilarityScore float64   `json:"similarityScore"`
	Reasoning       string    `json:"reasoning"`
}

type JobMatch struct {
	JobID           uuid.UUID `json:"jobId"`
	SimilarityScore float64   `json:"similarityScore"`
	Reasoning       string    `json:"reasoning"`
}

type Meta struct {
	CandidateCount   int    `json:"candidateCount"`
	GenerationTimeMs int64  `json:"generationTimeMs"`
	Algorithm        string `json:"algorithm"`
}

// Recommendation is a snapshot produced for one test result. A new one is
// stored on every generation; the latest is found by CreatedAt.
type Recommendation struct {
	ID                 uuid.UUID           `json:"id"`
	UserID             uuid.UUID           `json:"userId"`
	TestResultID       uuid.UUID           `json:"testResultId"`
	CompetencyVector   vector.Competencies `json:"competencyVector"`
	RecommendedCourses []CourseMatch       `json:"recommendedCourses"`
	RecommendedJobs    []JobMatch          `json:"recommendedJobs"`
	TopCompetencies    []string            `json:"topCompetencies"`
	Meta               Meta                `json:"meta"`
	CreatedAt          time.Time           `json:"createdAt"`
}

// CourseStat is how often a course shows up across stored recommendations.
type CourseStat struct {
	CourseID     uuid.UUID `json:"courseId"`
	Appearances  int       `json:"appearances"`
	AverageScore float64   `json:"averageScore"`
}
