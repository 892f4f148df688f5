package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"career-compass/internal/database"
	"career-compass/internal/domain/catalog"
	"career-compass/internal/domain/vector"

	"github.com/google/uuid"
)

// seedID derives a stable id so re-running seeders does not duplicate rows.
func seedID(kind, name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("career-compass/"+kind+"/"+name))
}

func ptrFloat(v float64) *float64 { return &v }

type CoursesSeeder struct{}

func (CoursesSeeder) Name() string { return "courses" }

func (CoursesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "courses", "id", "college_id", "title", "status", "skill_outcome_profile", "popularity_score"); err != nil {
		return err
	}

	items := []struct {
		College    string
		Title      string
		Profile    vector.CourseSkillProfile
		Popularity *float64
	}{
		{College: "Institute of Technology", Title: "B.Tech Computer Science", Profile: vector.CourseSkillProfile{Analytical: 8, Technical: 9, Creative: 4, Communication: 3, Research: 5, Leadership: 2}, Popularity: ptrFloat(90)},
		{College: "Institute of Technology", Title: "B.Tech Mechanical Engineering", Profile: vector.CourseSkillProfile{Analytical: 7, Technical: 8, Creative: 3, Communication: 2, Research: 4, Leadership: 3}, Popularity: ptrFloat(70)},
		{College: "National Design School", Title: "B.Des Communication Design", Profile: vector.CourseSkillProfile{Analytical: 3, Technical: 4, Creative: 9, Communication: 7, Research: 3, Leadership: 3}, Popularity: ptrFloat(65)},
		{College: "City Medical College", Title: "MBBS", Profile: vector.CourseSkillProfile{Analytical: 7, Technical: 5, Creative: 2, Communication: 6, Research: 8, Leadership: 4}, Popularity: ptrFloat(95)},
		{College: "School of Law", Title: "BA LLB", Profile: vector.CourseSkillProfile{Analytical: 7, Technical: 1, Creative: 4, Communication: 9, Research: 6, Leadership: 6}},
		{College: "Business School", Title: "BBA", Profile: vector.CourseSkillProfile{Analytical: 6, Technical: 2, Creative: 5, Communication: 7, Research: 3, Leadership: 8}, Popularity: ptrFloat(75)},
		{College: "Science College", Title: "B.Sc Physics", Profile: vector.CourseSkillProfile{Analytical: 9, Technical: 5, Creative: 3, Communication: 3, Research: 9, Leadership: 1}, Popularity: ptrFloat(55)},
		{College: "Arts College", Title: "BA Journalism", Profile: vector.CourseSkillProfile{Analytical: 4, Technical: 2, Creative: 7, Communication: 9, Research: 5, Leadership: 4}},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range items {
		profile, err := json.Marshal(it.Profile)
		if err != nil {
			return err
		}
		_, err = tx.Exec(
			ctx,
			`INSERT INTO courses (id, college_id, title, status, skill_outcome_profile, popularity_score)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (college_id, title) DO NOTHING`,
			seedID("course", it.College+"/"+it.Title),
			seedID("college", it.College),
			it.Title,
			catalog.CourseStatusActive,
			profile,
			it.Popularity,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "company_id", "title", "status", "competency_weights", "priority_score"); err != nil {
		return err
	}

	items := []struct {
		Company  string
		Title    string
		Status   string
		Weights  vector.JobCompetencyWeights
		Priority *float64
	}{
		{Company: "Acme Software", Title: "Junior Backend Developer", Status: catalog.JobStatusOpen, Weights: vector.JobCompetencyWeights{Analytical: 7, Technical: 9, Creative: 3, Communication: 4, Leadership: 2, Research: 3}, Priority: ptrFloat(80)},
		{Company: "Acme Software", Title: "Product Designer", Status: catalog.JobStatusOpen, Weights: vector.JobCompetencyWeights{Analytical: 4, Technical: 4, Creative: 9, Communication: 7, Leadership: 3, Research: 4}},
		{Company: "Northwind Research", Title: "Research Assistant", Status: catalog.JobStatusOpen, Weights: vector.JobCompetencyWeights{Analytical: 8, Technical: 5, Creative: 3, Communication: 4, Leadership: 1, Research: 9}, Priority: ptrFloat(60)},
		{Company: "Global Media", Title: "Content Writer", Status: catalog.JobStatusOpen, Weights: vector.JobCompetencyWeights{Analytical: 3, Technical: 2, Creative: 8, Communication: 9, Leadership: 2, Research: 4}, Priority: ptrFloat(40)},
		{Company: "Summit Consulting", Title: "Business Analyst", Status: catalog.JobStatusOpen, Weights: vector.JobCompetencyWeights{Analytical: 8, Technical: 4, Creative: 4, Communication: 7, Leadership: 6, Research: 5}, Priority: ptrFloat(70)},
		{Company: "Summit Consulting", Title: "Team Lead Operations", Status: catalog.JobStatusPaused, Weights: vector.JobCompetencyWeights{Analytical: 5, Technical: 3, Creative: 3, Communication: 7, Leadership: 9, Research: 2}},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range items {
		weights, err := json.Marshal(it.Weights)
		if err != nil {
			return err
		}
		_, err = tx.Exec(
			ctx,
			`INSERT INTO jobs (id, company_id, title, status, competency_weights, priority_score)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (company_id, title) DO NOTHING`,
			seedID("job", it.Company+"/"+it.Title),
			seedID("company", it.Company),
			it.Title,
			it.Status,
			weights,
			it.Priority,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
