package repository

import (
	"context"
	"errors"

	"career-compass/internal/database"
	"career-compass/internal/domain/grading"

	"github.com/google/uuid"
)

// TestStats summarises the stored results of one test.
type TestStats struct {
	TimesTaken        int
	AveragePercentage float64
	AverageScore      float64
}

type TestResultRepository interface {
	Create(ctx context.Context, r grading.TestResult) (grading.TestResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (grading.TestResult, error)
	LatestByUser(ctx context.Context, userID uuid.UUID) (grading.TestResult, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	StatsByTest(ctx context.Context, testID uuid.UUID) (TestStats, error)
}

type PostgresTestResultRepository struct {
	db database.DB
}

func NewPostgresTestResultRepository(db database.DB) *PostgresTestResultRepository {
	return &PostgresTestResultRepository{db: db}
}

const testResultColumns = `id, user_id, test_id, responses, total_score, total_possible, percentage,
	competency_scores, duration_taken, created_at`

func (r *PostgresTestResultRepository) Create(ctx context.Context, tr grading.TestResult) (grading.TestResult, error) {
	responses := tr.Responses
	if responses == nil {
		responses = []grading.Response{}
	}
	respJSON, err := marshalJSON(responses)
	if err != nil {
		return grading.TestResult{}, err
	}
	compJSON, err := marshalJSON(tr.CompetencyScores)
	if err != nil {
		return grading.TestResult{}, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO test_results (id, user_id, test_id, responses, total_score, total_possible, percentage,
			competency_scores, duration_taken)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 RETURNING `+testResultColumns,
		tr.ID, tr.UserID, tr.TestID, respJSON, tr.TotalScore, tr.TotalPossible, tr.Percentage,
		compJSON, tr.DurationTaken,
	)
	return scanTestResult(row)
}

func (r *PostgresTestResultRepository) GetByID(ctx context.Context, id uuid.UUID) (grading.TestResult, error) {
	return scanTestResult(r.db.QueryRow(ctx, `SELECT `+testResultColumns+` FROM test_results WHERE id = $1`, id))
}

func (r *PostgresTestResultRepository) LatestByUser(ctx context.Context, userID uuid.UUID) (grading.TestResult, error) {
	return scanTestResult(r.db.QueryRow(ctx,
		`SELECT `+testResultColumns+`
		 FROM test_results
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`,
		userID,
	))
}

func (r *PostgresTestResultRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM test_results WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

func (r *PostgresTestResultRepository) StatsByTest(ctx context.Context, testID uuid.UUID) (TestStats, error) {
	var out TestStats
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(1), COALESCE(AVG(percentage), 0), COALESCE(AVG(total_score), 0)
		 FROM test_results
		 WHERE test_id = $1`,
		testID,
	).Scan(&out.TimesTaken, &out.AveragePercentage, &out.AverageScore)
	return out, err
}

func scanTestResult(row database.Row) (grading.TestResult, error) {
	var (
		tr       grading.TestResult
		respJSON []byte
		compJSON []byte
	)
	err := row.Scan(
		&tr.ID, &tr.UserID, &tr.TestID, &respJSON, &tr.TotalScore, &tr.TotalPossible, &tr.Percentage,
		&compJSON, &tr.DurationTaken, &tr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return grading.TestResult{}, ErrTestResultNotFound
		}
		return grading.TestResult{}, err
	}
	if err := unmarshalJSON(respJSON, &tr.Responses); err != nil {
		return grading.TestResult{}, err
	}
	if err := unmarshalJSON(compJSON, &tr.CompetencyScores); err != nil {
		return grading.TestResult{}, err
	}
	return tr, nil
}
