package assessment

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func validMCQ() Question {
	return Question{
		Text:             "2 + 2 = ?",
		Type:             QuestionTypeMCQ,
		QuestionCategory: QuestionCategoryAptitude,
		Options: []Option{
			{Text: "3"},
			{Text: "4", IsCorrect: true},
		},
	}
}

func TestValidateQuestions(t *testing.T) {
	noOptions := validMCQ()
	noOptions.Options = noOptions.Options[:1]

	noCorrect := validMCQ()
	noCorrect.Options = []Option{{Text: "a"}, {Text: "b"}}

	numeric := Question{Text: "Speed?", Type: QuestionTypeNumeric, QuestionCategory: QuestionCategoryAnalytical}

	badTag := validMCQ()
	badTag.CareerTags = []string{"Astronaut"}

	noText := validMCQ()
	noText.Text = "   "

	noCategory := validMCQ()
	noCategory.QuestionCategory = ""

	cases := []struct {
		name      string
		questions []Question
		wantIndex int
		wantText  string
	}{
		{name: "empty", questions: nil, wantIndex: 0, wantText: "at least one question"},
		{name: "missing text", questions: []Question{validMCQ(), noText}, wantIndex: 2, wantText: "text is required"},
		{name: "missing category", questions: []Question{noCategory}, wantIndex: 1, wantText: "category is required"},
		{name: "too few options", questions: []Question{validMCQ(), validMCQ(), noOptions}, wantIndex: 3, wantText: "at least 2 options"},
		{name: "no correct option", questions: []Question{noCorrect}, wantIndex: 1, wantText: "at least one correct option"},
		{name: "numeric without answer", questions: []Question{numeric}, wantIndex: 1, wantText: "requires correctAnswer"},
		{name: "unknown career tag", questions: []Question{badTag}, wantIndex: 1, wantText: "invalid career tag"},
	}

	for _, tc := range cases {
		err := ValidateQuestions(tc.questions)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", tc.name, err)
		}
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("%s: expected *ValidationError, got %T", tc.name, err)
		}
		if vErr.Index != tc.wantIndex {
			t.Fatalf("%s: expected index %d, got %d", tc.name, tc.wantIndex, vErr.Index)
		}
		if !strings.Contains(err.Error(), tc.wantText) {
			t.Fatalf("%s: expected message to contain %q, got %q", tc.name, tc.wantText, err.Error())
		}
	}
}

func TestValidateQuestions_Valid(t *testing.T) {
	numeric := Question{Text: "Speed?", Type: QuestionTypeNumeric, QuestionCategory: QuestionCategoryAnalytical, CorrectAnswer: NumberAnswer(100)}
	descriptive := Question{Text: "Describe a project", Type: QuestionTypeDescriptive, QuestionCategory: QuestionCategoryCreative}

	if err := ValidateQuestions([]Question{validMCQ(), numeric, descriptive}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestValidationError_MessageNamesQuestion(t *testing.T) {
	err := ValidateQuestions([]Question{validMCQ(), {Text: "x"}})
	if err == nil || err.Error() != "Question 2: category is required" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestValidateQuestions_DuplicateID(t *testing.T) {
	first := validMCQ()
	first.ID = uuid.New()
	second := validMCQ()
	second.ID = first.ID
	fresh := validMCQ()

	err := ValidateQuestions([]Question{first, fresh, second})
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Index != 3 || !strings.Contains(err.Error(), "duplicate id") {
		t.Fatalf("expected duplicate id on question 3, got %v", err)
	}

	// questions without an id get one later and never collide here
	if err := ValidateQuestions([]Question{validMCQ(), validMCQ()}); err != nil {
		t.Fatalf("unexpected err for id-less questions: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	q := Question{Text: "  hi  ", Options: []Option{{Text: "a"}}}
	q.ApplyDefaults()

	if q.Text != "hi" {
		t.Fatalf("expected trimmed text, got %q", q.Text)
	}
	if q.Type != QuestionTypeMCQ || q.Marks != 1 || q.Difficulty != DifficultyMedium {
		t.Fatalf("unexpected defaults: %+v", q)
	}
	if q.Options[0].Weight != 1 {
		t.Fatalf("expected option weight 1, got %v", q.Options[0].Weight)
	}
}

func TestAnswer_StringCoercion(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{raw: `"B"`, want: "B"},
		{raw: `100`, want: "100"},
		{raw: `100.0`, want: "100"},
		{raw: `"100.0"`, want: "100.0"},
		{raw: `2.5`, want: "2.5"},
		{raw: `true`, want: "true"},
	}

	for _, tc := range cases {
		var a Answer
		if err := json.Unmarshal([]byte(tc.raw), &a); err != nil {
			t.Fatalf("%s: unmarshal: %v", tc.raw, err)
		}
		if a.String() != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.raw, tc.want, a.String())
		}
	}

	var null Answer
	if err := json.Unmarshal([]byte(`null`), &null); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if null.IsDefined() {
		t.Fatalf("expected null answer to be undefined")
	}
	if null.Equal(null) {
		t.Fatalf("expected undefined answers never to be equal")
	}

	if !NumberAnswer(100).Equal(TextAnswer("100")) {
		t.Fatalf("expected 100 and \"100\" to be equal")
	}
	if NumberAnswer(100).Equal(TextAnswer("100.0")) {
		t.Fatalf("expected 100 and \"100.0\" to differ")
	}
}

func TestAnswer_RoundTrip(t *testing.T) {
	b, err := json.Marshal(struct {
		A Answer `json:"a"`
		B Answer `json:"b"`
	}{A: NumberAnswer(42), B: Answer{}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"a":42,"b":null}` {
		t.Fatalf("unexpected json: %s", b)
	}
}

func TestStudentView_HidesAnswers(t *testing.T) {
	q := validMCQ()
	q.CorrectAnswer = TextAnswer("4")
	test := Test{RandomizeQuestions: true, Questions: []Question{q, validMCQ()}}

	swaps := 0
	view := test.StudentView(func(n int, swap func(i, j int)) {
		swaps++
		swap(0, n-1)
	})

	if swaps != 1 {
		t.Fatalf("expected shuffle to run once, got %d", swaps)
	}
	for _, vq := range view.Questions {
		if vq.CorrectAnswer.IsDefined() {
			t.Fatalf("expected correct answer hidden")
		}
		for _, o := range vq.Options {
			if o.IsCorrect {
				t.Fatalf("expected option correctness hidden")
			}
		}
	}
	if !test.Questions[0].Options[1].IsCorrect || !test.Questions[0].CorrectAnswer.IsDefined() {
		t.Fatalf("expected original test to be untouched")
	}
}
