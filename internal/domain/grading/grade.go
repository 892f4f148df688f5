package grading

import (
	"time"

	"career-compass/internal/domain/assessment"
	"career-compass/internal/domain/vector"

	"github.com/google/uuid"
)

type SubmittedAnswer struct {
	Answer           assessment.Answer `json:"answer"`
	TimeTakenSeconds int               `json:"timeTakenSeconds"`
}

// Submission is the transient answer set a student hands in for one test.
type Submission struct {
	Answers         map[uuid.UUID]SubmittedAnswer
	DurationSeconds int
}

type Response struct {
	QuestionID       uuid.UUID           `json:"questionId"`
	Answer           assessment.Answer   `json:"answer"`
	IsCorrect        bool                `json:"isCorrect"`
	MarksObtained    int                 `json:"marksObtained"`
	Competencies     vector.Competencies `json:"competencies"`
	TimeTakenSeconds int                 `json:"timeTakenSeconds"`
}

type Result struct {
	Responses        []Response
	TotalScore       int
	TotalPossible    int
	Percentage       float64
	CompetencyScores vector.Competencies
	DurationTaken    int
}

// TestResult is the persisted outcome of one submission. It is never updated.
type TestResult struct {
	ID               uuid.UUID           `json:"id"`
	UserID           uuid.UUID           `json:"userId"`
	TestID           uuid.UUID           `json:"testId"`
	Responses        []Response          `json:"responses"`
	TotalScore       int                 `json:"totalScore"`
	TotalPossible    int                 `json:"totalPossible"`
	Percentage       float64             `json:"percentage"`
	CompetencyScores vector.Competencies `json:"competencyScores"`
	DurationTaken    int                 `json:"durationTaken"`
	CreatedAt        time.Time           `json:"createdAt"`
}

func NewTestResult(userID, testID uuid.UUID, r Result) TestResult {
	responses := r.Responses
	if responses == nil {
		responses = []Response{}
	}
	return TestResult{
		ID:               uuid.New(),
		UserID:           userID,
		TestID:           testID,
		Responses:        responses,
		TotalScore:       r.TotalScore,
		TotalPossible:    r.TotalPossible,
		Percentage:       r.Percentage,
		CompetencyScores: r.CompetencyScores,
		DurationTaken:    r.DurationTaken,
	}
}

// Grade scores a submission against a test. Only questions present in the
// submission produce a response; TotalPossible still counts every question.
// Competencies are credited as raw sums over correct answers, unlike the
// per-question mean the test profile uses. Each submitted answer is graded at
// most once.
func Grade(test assessment.Test, sub Submission) Result {
	res := Result{Responses: make([]Response, 0, len(sub.Answers))}

	timed := 0
	graded := make(map[uuid.UUID]struct{}, len(sub.Answers))
	for _, q := range test.Questions {
		marks := q.EffectiveMarks()
		res.TotalPossible += marks

		submitted, ok := sub.Answers[q.ID]
		if !ok {
			continue
		}
		// an answer is consumed by the first question carrying its id
		if _, done := graded[q.ID]; done {
			continue
		}
		graded[q.ID] = struct{}{}
		timed += submitted.TimeTakenSeconds

		correct := isCorrect(q, submitted.Answer)
		resp := Response{
			QuestionID:       q.ID,
			Answer:           submitted.Answer,
			IsCorrect:        correct,
			TimeTakenSeconds: submitted.TimeTakenSeconds,
		}
		if correct {
			resp.MarksObtained = marks
			resp.Competencies = q.Competencies
		}

		res.TotalScore += resp.MarksObtained
		res.CompetencyScores = res.CompetencyScores.Add(resp.Competencies)
		res.Responses = append(res.Responses, resp)
	}

	if res.TotalPossible > 0 {
		res.Percentage = float64(res.TotalScore) / float64(res.TotalPossible) * 100
	}

	res.DurationTaken = sub.DurationSeconds
	if res.DurationTaken <= 0 {
		res.DurationTaken = timed
	}
	return res
}

func isCorrect(q assessment.Question, submitted assessment.Answer) bool {
	// descriptive answers are a rubric for human review
	if q.Type == assessment.QuestionTypeDescriptive {
		return false
	}
	return q.ExpectedAnswer().Equal(submitted)
}
