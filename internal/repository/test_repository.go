package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"career-compass/internal/database"
	"career-compass/internal/domain/assessment"

	"github.com/google/uuid"
)

type TestListFilter struct {
	Category   string
	ActiveOnly bool
}

type TestRepository interface {
	Create(ctx context.Context, t assessment.Test) (assessment.Test, error)
	GetByID(ctx context.Context, id uuid.UUID) (assessment.Test, error)
	ExistsByTitle(ctx context.Context, title string, excludeID uuid.UUID) (bool, error)
	// Update loads the test under a row lock, applies mutate and writes the
	// result back in the same transaction.
	Update(ctx context.Context, id uuid.UUID, mutate func(t *assessment.Test) error) (assessment.Test, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f TestListFilter) ([]assessment.Test, error)
	RandomActive(ctx context.Context) (assessment.Test, error)
}

type PostgresTestRepository struct {
	db database.DB
}

func NewPostgresTestRepository(db database.DB) *PostgresTestRepository {
	return &PostgresTestRepository{db: db}
}

const testColumns = `id, title, description, category, duration_minutes, randomize_questions, created_by,
	questions, is_active, total_marks, competency_profile, personality_profile, dominant_career_signals,
	created_at, updated_at`

type testJSON struct {
	questions []byte
	comp      []byte
	pers      []byte
	signals   []byte
}

func encodeTest(t assessment.Test) (testJSON, error) {
	var (
		out testJSON
		err error
	)
	questions := t.Questions
	if questions == nil {
		questions = []assessment.Question{}
	}
	signals := t.DominantCareerSignals
	if signals == nil {
		signals = []string{}
	}
	if out.questions, err = marshalJSON(questions); err != nil {
		return testJSON{}, err
	}
	if out.comp, err = marshalJSON(t.CompetencyProfile); err != nil {
		return testJSON{}, err
	}
	if out.pers, err = marshalJSON(t.PersonalityProfile); err != nil {
		return testJSON{}, err
	}
	if out.signals, err = marshalJSON(signals); err != nil {
		return testJSON{}, err
	}
	return out, nil
}

func nullableUUID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func (r *PostgresTestRepository) Create(ctx context.Context, t assessment.Test) (assessment.Test, error) {
	enc, err := encodeTest(t)
	if err != nil {
		return assessment.Test{}, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO tests (id, title, description, category, duration_minutes, randomize_questions, created_by,
			questions, is_active, total_marks, competency_profile, personality_profile, dominant_career_signals)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		 RETURNING `+testColumns,
		t.ID, t.Title, t.Description, string(t.Category), t.Duration, t.RandomizeQuestions, nullableUUID(t.CreatedBy),
		enc.questions, t.IsActive, t.TotalMarks, enc.comp, enc.pers, enc.signals,
	)
	created, err := scanTest(row, true)
	if err != nil {
		if errors.Is(err, database.ErrUniqueViolation) {
			return assessment.Test{}, ErrTestTitleTaken
		}
		return assessment.Test{}, err
	}
	return created, nil
}

func (r *PostgresTestRepository) GetByID(ctx context.Context, id uuid.UUID) (assessment.Test, error) {
	row := r.db.QueryRow(ctx, `SELECT `+testColumns+` FROM tests WHERE id = $1`, id)
	return scanTest(row, true)
}

func (r *PostgresTestRepository) ExistsByTitle(ctx context.Context, title string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM tests WHERE title = $1 AND id <> $2)`,
		strings.TrimSpace(title), excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *PostgresTestRepository) Update(ctx context.Context, id uuid.UUID, mutate func(t *assessment.Test) error) (assessment.Test, error) {
	var updated assessment.Test
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		current, err := scanTest(tx.QueryRow(ctx, `SELECT `+testColumns+` FROM tests WHERE id = $1 FOR UPDATE`, id), true)
		if err != nil {
			return err
		}

		if err := mutate(&current); err != nil {
			return err
		}

		enc, err := encodeTest(current)
		if err != nil {
			return err
		}

		row := tx.QueryRow(ctx,
			`UPDATE tests SET
				title = $2,
				description = $3,
				category = $4,
				duration_minutes = $5,
				randomize_questions = $6,
				questions = $7,
				is_active = $8,
				total_marks = $9,
				competency_profile = $10,
				personality_profile = $11,
				dominant_career_signals = $12,
				updated_at = $13
			 WHERE id = $1
			 RETURNING `+testColumns,
			id, current.Title, current.Description, string(current.Category), current.Duration, current.RandomizeQuestions,
			enc.questions, current.IsActive, current.TotalMarks, enc.comp, enc.pers, enc.signals, time.Now().UTC(),
		)
		updated, err = scanTest(row, true)
		return err
	})
	if err != nil {
		if errors.Is(err, database.ErrUniqueViolation) {
			return assessment.Test{}, ErrTestTitleTaken
		}
		return assessment.Test{}, err
	}
	return updated, nil
}

func (r *PostgresTestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM tests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTestNotFound
	}
	return nil
}

// List returns test summaries, newest first. Questions are not loaded.
func (r *PostgresTestRepository) List(ctx context.Context, f TestListFilter) ([]assessment.Test, error) {
	where := make([]string, 0, 2)
	args := make([]any, 0, 2)
	if c := strings.TrimSpace(f.Category); c != "" {
		args = append(args, c)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.ActiveOnly {
		where = append(where, "is_active = true")
	}

	q := `SELECT id, title, description, category, duration_minutes, randomize_questions, created_by,
		'[]'::jsonb, is_active, total_marks, competency_profile, personality_profile, dominant_career_signals,
		created_at, updated_at
		FROM tests`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]assessment.Test, 0)
	for rows.Next() {
		t, err := scanTest(rows, false)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTestRepository) RandomActive(ctx context.Context) (assessment.Test, error) {
	row := r.db.QueryRow(ctx, `SELECT `+testColumns+` FROM tests WHERE is_active = true ORDER BY random() LIMIT 1`)
	return scanTest(row, true)
}

func scanTest(row database.Row, withQuestions bool) (assessment.Test, error) {
	var (
		t         assessment.Test
		category  string
		createdBy *uuid.UUID
		enc       testJSON
	)
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &category, &t.Duration, &t.RandomizeQuestions, &createdBy,
		&enc.questions, &t.IsActive, &t.TotalMarks, &enc.comp, &enc.pers, &enc.signals,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return assessment.Test{}, ErrTestNotFound
		}
		return assessment.Test{}, err
	}

	t.Category = assessment.TestCategory(category)
	if createdBy != nil {
		t.CreatedBy = *createdBy
	}
	if withQuestions {
		if err := unmarshalJSON(enc.questions, &t.Questions); err != nil {
			return assessment.Test{}, err
		}
	}
	if err := unmarshalJSON(enc.comp, &t.CompetencyProfile); err != nil {
		return assessment.Test{}, err
	}
	if err := unmarshalJSON(enc.pers, &t.PersonalityProfile); err != nil {
		return assessment.Test{}, err
	}
	if err := unmarshalJSON(enc.signals, &t.DominantCareerSignals); err != nil {
		return assessment.Test{}, err
	}
	return t, nil
}
