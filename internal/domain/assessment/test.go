package assessment

import (
	"time"

	"career-compass/internal/domain/vector"

	"github.com/google/uuid"
)

type QuestionType string

const (
	QuestionTypeMCQ         QuestionType = "MCQ"
	QuestionTypeTrueFalse   QuestionType = "TrueFalse"
	QuestionTypeNumeric     QuestionType = "Numeric"
	QuestionTypeScenario    QuestionType = "Scenario"
	QuestionTypeDescriptive QuestionType = "Descriptive"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeMCQ, QuestionTypeTrueFalse, QuestionTypeNumeric, QuestionTypeScenario, QuestionTypeDescriptive:
		return true
	}
	return false
}

// IsChoice reports whether the type is answered by picking an option.
func (t QuestionType) IsChoice() bool {
	return t == QuestionTypeMCQ || t == QuestionTypeTrueFalse
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

type QuestionCategory string

const (
	QuestionCategoryAptitude    QuestionCategory = "Aptitude"
	QuestionCategoryPersonality QuestionCategory = "Personality"
	QuestionCategoryTechnical   QuestionCategory = "Technical"
	QuestionCategoryAnalytical  QuestionCategory = "Analytical"
	QuestionCategoryCreative    QuestionCategory = "Creative"
)

func (c QuestionCategory) Valid() bool {
	switch c {
	case QuestionCategoryAptitude, QuestionCategoryPersonality, QuestionCategoryTechnical, QuestionCategoryAnalytical, QuestionCategoryCreative:
		return true
	}
	return false
}

type TestCategory string

const (
	TestCategoryAptitude         TestCategory = "Aptitude"
	TestCategoryPersonality      TestCategory = "Personality"
	TestCategoryTechnical        TestCategory = "Technical"
	TestCategoryCareerAssessment TestCategory = "Career Assessment"
)

func (c TestCategory) Valid() bool {
	switch c {
	case TestCategoryAptitude, TestCategoryPersonality, TestCategoryTechnical, TestCategoryCareerAssessment:
		return true
	}
	return false
}

type PersonalityImpact string

const (
	PersonalityImpactLeader     PersonalityImpact = "Leader"
	PersonalityImpactCreative   PersonalityImpact = "Creative"
	PersonalityImpactAnalytical PersonalityImpact = "Analytical"
	PersonalityImpactEmpathetic PersonalityImpact = "Empathetic"
	PersonalityImpactPractical  PersonalityImpact = "Practical"
)

func (p PersonalityImpact) Valid() bool {
	switch p {
	case "", PersonalityImpactLeader, PersonalityImpactCreative, PersonalityImpactAnalytical, PersonalityImpactEmpathetic, PersonalityImpactPractical:
		return true
	}
	return false
}

var careerTags = map[string]struct{}{
	"Engineering":      {},
	"Medical":          {},
	"Design":           {},
	"Law":              {},
	"Management":       {},
	"Research":         {},
	"Entrepreneurship": {},
	"Teaching":         {},
	"Defense":          {},
	"Civil Services":   {},
	"Media":            {},
	"AI":               {},
	"Finance":          {},
}

func ValidCareerTag(tag string) bool {
	_, ok := careerTags[tag]
	return ok
}

const (
	DefaultMarks    = 1
	DefaultDuration = 30
)

type Option struct {
	Text              string            `json:"text"`
	Weight            float64           `json:"weight"`
	IsCorrect         bool              `json:"isCorrect"`
	PersonalityImpact PersonalityImpact `json:"personalityImpact,omitempty"`
}

// Question is owned by its Test and has no lifecycle of its own.
type Question struct {
	ID                uuid.UUID                `json:"id"`
	Text              string                   `json:"questionText"`
	Type              QuestionType             `json:"type"`
	CorrectAnswer     Answer                   `json:"correctAnswer"`
	Marks             int                      `json:"marks"`
	Difficulty        Difficulty               `json:"difficulty"`
	Competencies      vector.Competencies      `json:"competencies"`
	PersonalityTraits vector.PersonalityTraits `json:"personalityTraits"`
	CareerTags        []string                 `json:"careerTags"`
	Options           []Option                 `json:"options"`
	QuestionCategory  QuestionCategory         `json:"questionCategory"`
	IsActive          bool                     `json:"isActive"`
}

// EffectiveMarks returns the marks a question is worth; unset counts as DefaultMarks.
func (q Question) EffectiveMarks() int {
	if q.Marks <= 0 {
		return DefaultMarks
	}
	return q.Marks
}

// ExpectedAnswer is the value a submission must equal to be correct. For choice
// questions without an explicit correct answer the first option flagged correct
// is used.
func (q Question) ExpectedAnswer() Answer {
	if q.CorrectAnswer.IsDefined() {
		return q.CorrectAnswer
	}
	if q.Type.IsChoice() {
		for _, o := range q.Options {
			if o.IsCorrect {
				return TextAnswer(o.Text)
			}
		}
	}
	return Answer{}
}

type Test struct {
	ID                 uuid.UUID    `json:"id"`
	Title              string       `json:"title"`
	Description        string       `json:"description"`
	Category           TestCategory `json:"category"`
	Duration           int          `json:"duration"`
	RandomizeQuestions bool         `json:"randomizeQuestions"`
	CreatedBy          uuid.UUID    `json:"createdBy"`
	Questions          []Question   `json:"questions"`
	IsActive           bool         `json:"isActive"`

	TotalMarks            int                      `json:"totalMarks"`
	CompetencyProfile     vector.Competencies      `json:"competencyProfile"`
	PersonalityProfile    vector.PersonalityTraits `json:"personalityProfile"`
	DominantCareerSignals []string                 `json:"dominantCareerSignals"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecomputeDerivedFields rebuilds TotalMarks and the aggregate profiles from the
// current question set. It must run after every mutation of Questions.
func (t *Test) RecomputeDerivedFields() {
	p := Aggregate(t.Questions)
	t.TotalMarks = p.TotalMarks
	t.CompetencyProfile = p.CompetencyProfile
	t.PersonalityProfile = p.PersonalityProfile
	t.DominantCareerSignals = p.DominantCareerSignals
}

// QuestionByID returns the question with the given id.
func (t Test) QuestionByID(id uuid.UUID) (Question, bool) {
	for _, q := range t.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
