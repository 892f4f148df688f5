package grading

import (
	"testing"

	"career-compass/internal/domain/assessment"
	"career-compass/internal/domain/vector"

	"github.com/google/uuid"
)

func mcq(marks int, correct string, comp vector.Competencies) assessment.Question {
	return assessment.Question{
		ID:            uuid.New(),
		Text:          "pick one",
		Type:          assessment.QuestionTypeMCQ,
		CorrectAnswer: assessment.TextAnswer(correct),
		Marks:         marks,
		Competencies:  comp,
		Options: []assessment.Option{
			{Text: "A"},
			{Text: "B", IsCorrect: correct == "B"},
		},
	}
}

func answer(q assessment.Question, a assessment.Answer) Submission {
	return Submission{Answers: map[uuid.UUID]SubmittedAnswer{q.ID: {Answer: a}}}
}

func TestGrade_CorrectAnswer(t *testing.T) {
	comp := vector.Competencies{Analytical: 3, Technical: 2}
	q := mcq(2, "B", comp)
	test := assessment.Test{Questions: []assessment.Question{q}}

	res := Grade(test, answer(q, assessment.TextAnswer("B")))

	if res.TotalScore != 2 || res.TotalPossible != 2 {
		t.Fatalf("expected 2/2, got %d/%d", res.TotalScore, res.TotalPossible)
	}
	if res.Percentage != 100 {
		t.Fatalf("expected 100%%, got %v", res.Percentage)
	}
	if res.CompetencyScores != comp {
		t.Fatalf("expected competency scores %+v, got %+v", comp, res.CompetencyScores)
	}
	if len(res.Responses) != 1 || !res.Responses[0].IsCorrect || res.Responses[0].MarksObtained != 2 {
		t.Fatalf("unexpected responses: %+v", res.Responses)
	}
}

func TestGrade_WrongAnswerCreditsNothing(t *testing.T) {
	q := mcq(2, "B", vector.Competencies{Analytical: 3, Technical: 2})
	test := assessment.Test{Questions: []assessment.Question{q}}

	res := Grade(test, answer(q, assessment.TextAnswer("A")))

	if res.TotalScore != 0 {
		t.Fatalf("expected score 0, got %d", res.TotalScore)
	}
	if res.CompetencyScores != (vector.Competencies{}) {
		t.Fatalf("expected zero competency scores, got %+v", res.CompetencyScores)
	}
	if res.Responses[0].Competencies != (vector.Competencies{}) {
		t.Fatalf("expected zero credited vector on wrong response")
	}
}

func TestGrade_UnansweredQuestionsCountTowardPossible(t *testing.T) {
	q1 := mcq(2, "B", vector.Competencies{Verbal: 1})
	q2 := mcq(3, "A", vector.Competencies{Social: 4})
	test := assessment.Test{Questions: []assessment.Question{q1, q2}}

	res := Grade(test, answer(q1, assessment.TextAnswer("B")))

	if res.TotalPossible != 5 {
		t.Fatalf("expected total possible 5, got %d", res.TotalPossible)
	}
	if res.TotalScore != 2 {
		t.Fatalf("expected total score 2, got %d", res.TotalScore)
	}
	if len(res.Responses) != 1 {
		t.Fatalf("expected only the answered question to be recorded, got %d", len(res.Responses))
	}
	if res.Percentage != 40 {
		t.Fatalf("expected 40%%, got %v", res.Percentage)
	}
}

func TestGrade_SumsAcrossCorrectAnswers(t *testing.T) {
	q1 := mcq(1, "B", vector.Competencies{Analytical: 4})
	q2 := mcq(1, "B", vector.Competencies{Analytical: 6, Creative: 1})
	test := assessment.Test{Questions: []assessment.Question{q1, q2}}

	sub := Submission{Answers: map[uuid.UUID]SubmittedAnswer{
		q1.ID: {Answer: assessment.TextAnswer("B")},
		q2.ID: {Answer: assessment.TextAnswer("B")},
	}}
	res := Grade(test, sub)

	// raw sum, the test profile would report the mean (5)
	if res.CompetencyScores.Analytical != 10 || res.CompetencyScores.Creative != 1 {
		t.Fatalf("expected summed scores, got %+v", res.CompetencyScores)
	}
	if p := assessment.Aggregate(test.Questions); p.CompetencyProfile.Analytical != 5 {
		t.Fatalf("expected aggregated mean 5, got %v", p.CompetencyProfile.Analytical)
	}
}

func TestGrade_EmptySubmission(t *testing.T) {
	q := mcq(2, "B", vector.Competencies{Analytical: 3})
	test := assessment.Test{Questions: []assessment.Question{q}}

	res := Grade(test, Submission{})

	if res.TotalScore != 0 || res.TotalPossible != 2 || res.Percentage != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(res.Responses) != 0 {
		t.Fatalf("expected no responses, got %d", len(res.Responses))
	}
}

func TestGrade_NumericComparesAsString(t *testing.T) {
	q := assessment.Question{
		ID:            uuid.New(),
		Type:          assessment.QuestionTypeNumeric,
		CorrectAnswer: assessment.NumberAnswer(100),
		Competencies:  vector.Competencies{Scientific: 2},
	}
	test := assessment.Test{Questions: []assessment.Question{q}}

	cases := []struct {
		name    string
		ans     assessment.Answer
		correct bool
	}{
		{name: "number", ans: assessment.NumberAnswer(100), correct: true},
		{name: "string", ans: assessment.TextAnswer("100"), correct: true},
		{name: "no tolerance", ans: assessment.NumberAnswer(100.5), correct: false},
		{name: "formatted differently", ans: assessment.TextAnswer("100.0"), correct: false},
	}
	for _, tc := range cases {
		res := Grade(test, answer(q, tc.ans))
		if res.Responses[0].IsCorrect != tc.correct {
			t.Fatalf("%s: expected correct=%v", tc.name, tc.correct)
		}
	}
}

func TestGrade_DescriptiveNeverAutoCorrect(t *testing.T) {
	q := assessment.Question{
		ID:            uuid.New(),
		Type:          assessment.QuestionTypeDescriptive,
		CorrectAnswer: assessment.TextAnswer("rubric"),
		Competencies:  vector.Competencies{Verbal: 5},
	}
	test := assessment.Test{Questions: []assessment.Question{q}}

	res := Grade(test, answer(q, assessment.TextAnswer("rubric")))
	if res.Responses[0].IsCorrect || res.TotalScore != 0 {
		t.Fatalf("expected descriptive answer not to be auto graded: %+v", res.Responses[0])
	}
}

func TestGrade_ChoiceFallsBackToCorrectOption(t *testing.T) {
	q := mcq(1, "B", vector.Competencies{Technical: 1})
	q.CorrectAnswer = assessment.Answer{}
	test := assessment.Test{Questions: []assessment.Question{q}}

	res := Grade(test, answer(q, assessment.TextAnswer("B")))
	if !res.Responses[0].IsCorrect {
		t.Fatalf("expected option flagged correct to be accepted")
	}
}

func TestGrade_DurationTaken(t *testing.T) {
	q1 := mcq(1, "B", vector.Competencies{})
	q2 := mcq(1, "B", vector.Competencies{})
	test := assessment.Test{Questions: []assessment.Question{q1, q2}}

	sub := Submission{Answers: map[uuid.UUID]SubmittedAnswer{
		q1.ID: {Answer: assessment.TextAnswer("A"), TimeTakenSeconds: 12},
		q2.ID: {Answer: assessment.TextAnswer("B"), TimeTakenSeconds: 30},
	}}
	if got := Grade(test, sub).DurationTaken; got != 42 {
		t.Fatalf("expected summed timings 42, got %d", got)
	}

	sub.DurationSeconds = 90
	if got := Grade(test, sub).DurationTaken; got != 90 {
		t.Fatalf("expected explicit duration 90, got %d", got)
	}
}

func TestGrade_DoesNotMutateTest(t *testing.T) {
	q := mcq(2, "B", vector.Competencies{Analytical: 3})
	test := assessment.Test{Questions: []assessment.Question{q}}
	test.RecomputeDerivedFields()
	before := test.CompetencyProfile

	Grade(test, answer(q, assessment.TextAnswer("B")))

	if test.CompetencyProfile != before || test.TotalMarks != 2 {
		t.Fatalf("expected test to be untouched")
	}
}

func TestGrade_SharedQuestionIDUsesAnswerOnce(t *testing.T) {
	q := assessment.Question{
		ID:            uuid.New(),
		Type:          assessment.QuestionTypeNumeric,
		CorrectAnswer: assessment.NumberAnswer(4),
		Marks:         2,
		Competencies:  vector.Competencies{Analytical: 8},
	}
	test := assessment.Test{Questions: []assessment.Question{q, q}}

	res := Grade(test, answer(q, assessment.NumberAnswer(4)))
	if len(res.Responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(res.Responses))
	}
	if res.TotalScore != 2 || res.TotalPossible != 4 {
		t.Fatalf("expected 2/4, got %d/%d", res.TotalScore, res.TotalPossible)
	}
	if res.CompetencyScores.Analytical != 8 {
		t.Fatalf("expected analytical credited once, got %v", res.CompetencyScores.Analytical)
	}
}
