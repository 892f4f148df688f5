package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"career-compass/internal/database"
	"career-compass/internal/domain/assessment"
	"career-compass/internal/domain/vector"
)

const sampleAssessmentTitle = "Foundation Career Assessment"

// AssessmentSeeder stores one ready-to-take career assessment.
type AssessmentSeeder struct{}

func (AssessmentSeeder) Name() string { return "assessment" }

func (AssessmentSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "tests",
		"id", "title", "description", "category", "duration_minutes", "randomize_questions",
		"questions", "is_active", "total_marks", "competency_profile", "personality_profile", "dominant_career_signals",
	); err != nil {
		return err
	}

	t := SampleAssessment()
	if err := assessment.ValidateQuestions(t.Questions); err != nil {
		return err
	}

	questions, err := json.Marshal(t.Questions)
	if err != nil {
		return err
	}
	comp, err := json.Marshal(t.CompetencyProfile)
	if err != nil {
		return err
	}
	pers, err := json.Marshal(t.PersonalityProfile)
	if err != nil {
		return err
	}
	signals, err := json.Marshal(t.DominantCareerSignals)
	if err != nil {
		return err
	}

	_, err = db.Exec(
		ctx,
		`INSERT INTO tests (id, title, description, category, duration_minutes, randomize_questions,
			questions, is_active, total_marks, competency_profile, personality_profile, dominant_career_signals)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		 ON CONFLICT (title) DO NOTHING`,
		t.ID, t.Title, t.Description, string(t.Category), t.Duration, t.RandomizeQuestions,
		questions, t.IsActive, t.TotalMarks, comp, pers, signals,
	)
	if err != nil {
		return fmt.Errorf("insert sample assessment: %w", err)
	}
	return nil
}

// SampleAssessment returns the seeded test with derived fields computed.
func SampleAssessment() assessment.Test {
	qs := []assessment.Question{
		{
			Text:             "A train travels 300 km in 3 hours. What is its average speed in km/h?",
			Type:             assessment.QuestionTypeNumeric,
			CorrectAnswer:    assessment.NumberAnswer(100),
			Marks:            2,
			Difficulty:       assessment.DifficultyEasy,
			QuestionCategory: assessment.QuestionCategoryAnalytical,
			Competencies:     vector.Competencies{Analytical: 4, Scientific: 2},
			CareerTags:       []string{"Engineering", "Research"},
		},
		{
			Text:             "Which word is closest in meaning to 'concise'?",
			Type:             assessment.QuestionTypeMCQ,
			QuestionCategory: assessment.QuestionCategoryAptitude,
			Competencies:     vector.Competencies{Verbal: 4},
			CareerTags:       []string{"Media", "Law"},
			Options: []assessment.Option{
				{Text: "Brief", IsCorrect: true},
				{Text: "Lengthy"},
				{Text: "Vague"},
				{Text: "Elaborate"},
			},
		},
		{
			Text:             "Your team misses a deadline. What do you do first?",
			Type:             assessment.QuestionTypeScenario,
			CorrectAnswer:    assessment.TextAnswer("Call a short meeting to re-plan"),
			QuestionCategory: assessment.QuestionCategoryPersonality,
			Competencies:     vector.Competencies{Social: 3},
			PersonalityTraits: vector.PersonalityTraits{
				Leadership: 4,
				Teamwork:   3,
			},
			CareerTags: []string{"Management", "Entrepreneurship"},
			Options: []assessment.Option{
				{Text: "Call a short meeting to re-plan", PersonalityImpact: assessment.PersonalityImpactLeader},
				{Text: "Finish the remaining work alone", PersonalityImpact: assessment.PersonalityImpactPractical},
			},
		},
		{
			Text:             "Binary search runs in logarithmic time.",
			Type:             assessment.QuestionTypeTrueFalse,
			QuestionCategory: assessment.QuestionCategoryTechnical,
			Competencies:     vector.Competencies{Technical: 4, Analytical: 1},
			CareerTags:       []string{"Engineering", "AI"},
			Options: []assessment.Option{
				{Text: "True", IsCorrect: true},
				{Text: "False"},
			},
		},
		{
			Text:             "Describe a poster you would design for a science fair.",
			Type:             assessment.QuestionTypeDescriptive,
			QuestionCategory: assessment.QuestionCategoryCreative,
			Competencies:     vector.Competencies{Creative: 5},
			PersonalityTraits: vector.PersonalityTraits{
				Creativity: 5,
			},
			CareerTags: []string{"Design"},
		},
	}

	t := assessment.Test{
		ID:                 seedID("test", sampleAssessmentTitle),
		Title:              sampleAssessmentTitle,
		Description:        "Short mixed assessment covering aptitude, personality and technical basics.",
		Category:           assessment.TestCategoryCareerAssessment,
		Duration:           assessment.DefaultDuration,
		RandomizeQuestions: true,
		IsActive:           true,
	}
	for i := range qs {
		qs[i].ApplyDefaults()
		qs[i].ID = seedID("question", fmt.Sprintf("%s/%d", sampleAssessmentTitle, i+1))
		qs[i].IsActive = true
	}
	t.Questions = qs
	t.RecomputeDerivedFields()
	return t
}
