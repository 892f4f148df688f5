package repository

import (
	"context"

	"career-compass/internal/database"
	"career-compass/internal/domain/catalog"
)

type CourseRepository interface {
	ListByStatus(ctx context.Context, status string) ([]catalog.Course, error)
}

type JobRepository interface {
	ListByStatus(ctx context.Context, status string) ([]catalog.Job, error)
}

type PostgresCourseRepository struct {
	db database.DB
}

func NewPostgresCourseRepository(db database.DB) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

// ListByStatus returns every course with the status. The filter runs in SQL so
// inactive rows never leave the database.
func (r *PostgresCourseRepository) ListByStatus(ctx context.Context, status string) ([]catalog.Course, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, college_id, title, status, skill_outcome_profile, popularity_score, created_at
		 FROM courses
		 WHERE status = $1
		 ORDER BY created_at ASC, id ASC`,
		status,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Course, 0)
	for rows.Next() {
		var (
			c       catalog.Course
			profile []byte
		)
		if err := rows.Scan(&c.ID, &c.CollegeID, &c.Title, &c.Status, &profile, &c.PopularityScore, &c.CreatedAt); err != nil {
			return nil, err
		}
		if err := unmarshalJSON(profile, &c.SkillOutcomeProfile); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) ListByStatus(ctx context.Context, status string) ([]catalog.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, company_id, title, status, competency_weights, priority_score, created_at
		 FROM jobs
		 WHERE status = $1
		 ORDER BY created_at ASC, id ASC`,
		status,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Job, 0)
	for rows.Next() {
		var (
			j       catalog.Job
			weights []byte
		)
		if err := rows.Scan(&j.ID, &j.CompanyID, &j.Title, &j.Status, &weights, &j.PriorityScore, &j.CreatedAt); err != nil {
			return nil, err
		}
		if err := unmarshalJSON(weights, &j.CompetencyWeights); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
