package catalog

import (
	"time"

	"career-compass/internal/domain/vector"

	"github.com/google/uuid"
)

const (
	CourseStatusActive   = "active"
	CourseStatusInactive = "inactive"

	JobStatusDraft  = "draft"
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
	JobStatusPaused = "paused"
)

// DefaultBoostScore applies when a course or job has no popularity/priority set.
const DefaultBoostScore = 50

type Course struct {
	ID                  uuid.UUID
	CollegeID           uuid.UUID
	Title               string
	Status              string
	SkillOutcomeProfile vector.CourseSkillProfile
	PopularityScore     *float64
	CreatedAt           time.Time
}

// Popularity returns the popularity score, defaulting to DefaultBoostScore when unset.
func (c Course) Popularity() float64 {
	if c.PopularityScore == nil {
		return DefaultBoostScore
	}
	return *c.PopularityScore
}

type Job struct {
	ID                uuid.UUID
	CompanyID         uuid.UUID
	Title             string
	Status            string
	CompetencyWeights vector.JobCompetencyWeights
	PriorityScore     *float64
	CreatedAt         time.Time
}

func (j Job) Priority() float64 {
	if j.PriorityScore == nil {
		return DefaultBoostScore
	}
	return *j.PriorityScore
}
