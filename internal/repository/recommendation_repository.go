package repository

import (
	"context"
	"errors"

	"career-compass/internal/database"
	"career-compass/internal/domain/recommendation"

	"github.com/google/uuid"
)

type RecommendationRepository interface {
	// Create always inserts; recommendations are snapshots and never upserted.
	Create(ctx context.Context, rec recommendation.Recommendation) (recommendation.Recommendation, error)
	GetByID(ctx context.Context, id uuid.UUID) (recommendation.Recommendation, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]recommendation.Recommendation, error)
	LatestByUser(ctx context.Context, userID uuid.UUID) (recommendation.Recommendation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	TopCourses(ctx context.Context, limit int) ([]recommendation.CourseStat, error)
}

type PostgresRecommendationRepository struct {
	db database.DB
}

func NewPostgresRecommendationRepository(db database.DB) *PostgresRecommendationRepository {
	return &PostgresRecommendationRepository{db: db}
}

const recommendationColumns = `id, user_id, test_result_id, competency_vector, recommended_courses, recommended_jobs,
	top_competencies, candidate_count, generation_time_ms, algorithm, created_at`

func (r *PostgresRecommendationRepository) Create(ctx context.Context, rec recommendation.Recommendation) (recommendation.Recommendation, error) {
	courses := rec.RecommendedCourses
	if courses == nil {
		courses = []recommendation.CourseMatch{}
	}
	jobs := rec.RecommendedJobs
	if jobs == nil {
		jobs = []recommendation.JobMatch{}
	}
	top := rec.TopCompetencies
	if top == nil {
		top = []string{}
	}

	vecJSON, err := marshalJSON(rec.CompetencyVector)
	if err != nil {
		return recommendation.Recommendation{}, err
	}
	coursesJSON, err := marshalJSON(courses)
	if err != nil {
		return recommendation.Recommendation{}, err
	}
	jobsJSON, err := marshalJSON(jobs)
	if err != nil {
		return recommendation.Recommendation{}, err
	}
	topJSON, err := marshalJSON(top)
	if err != nil {
		return recommendation.Recommendation{}, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO recommendations (id, user_id, test_result_id, competency_vector, recommended_courses,
			recommended_jobs, top_competencies, candidate_count, generation_time_ms, algorithm)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 RETURNING `+recommendationColumns,
		rec.ID, rec.UserID, rec.TestResultID, vecJSON, coursesJSON,
		jobsJSON, topJSON, rec.Meta.CandidateCount, rec.Meta.GenerationTimeMs, rec.Meta.Algorithm,
	)
	return scanRecommendation(row)
}

func (r *PostgresRecommendationRepository) GetByID(ctx context.Context, id uuid.UUID) (recommendation.Recommendation, error) {
	return scanRecommendation(r.db.QueryRow(ctx, `SELECT `+recommendationColumns+` FROM recommendations WHERE id = $1`, id))
}

func (r *PostgresRecommendationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]recommendation.Recommendation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+recommendationColumns+`
		 FROM recommendations
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]recommendation.Recommendation, 0)
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRecommendationRepository) LatestByUser(ctx context.Context, userID uuid.UUID) (recommendation.Recommendation, error) {
	return scanRecommendation(r.db.QueryRow(ctx,
		`SELECT `+recommendationColumns+`
		 FROM recommendations
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`,
		userID,
	))
}

func (r *PostgresRecommendationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM recommendations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRecommendationNotFound
	}
	return nil
}

func (r *PostgresRecommendationRepository) TopCourses(ctx context.Context, limit int) ([]recommendation.CourseStat, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT (c->>'courseId')::uuid AS course_id,
			COUNT(1) AS appearances,
			AVG((c->>'similarityScore')::double precision) AS avg_score
		 FROM recommendations r
		 CROSS JOIN LATERAL jsonb_array_elements(r.recommended_courses) AS c
		 GROUP BY course_id
		 ORDER BY appearances DESC, avg_score DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]recommendation.CourseStat, 0)
	for rows.Next() {
		var s recommendation.CourseStat
		if err := rows.Scan(&s.CourseID, &s.Appearances, &s.AverageScore); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRecommendation(row database.Row) (recommendation.Recommendation, error) {
	var (
		rec         recommendation.Recommendation
		vecJSON     []byte
		coursesJSON []byte
		jobsJSON    []byte
		topJSON     []byte
	)
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.TestResultID, &vecJSON, &coursesJSON, &jobsJSON,
		&topJSON, &rec.Meta.CandidateCount, &rec.Meta.GenerationTimeMs, &rec.Meta.Algorithm, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return recommendation.Recommendation{}, ErrRecommendationNotFound
		}
		return recommendation.Recommendation{}, err
	}
	for _, f := range []struct {
		b   []byte
		out any
	}{
		{vecJSON, &rec.CompetencyVector},
		{coursesJSON, &rec.RecommendedCourses},
		{jobsJSON, &rec.RecommendedJobs},
		{topJSON, &rec.TopCompetencies},
	} {
		if err := unmarshalJSON(f.b, f.out); err != nil {
			return recommendation.Recommendation{}, err
		}
	}
	return rec, nil
}
