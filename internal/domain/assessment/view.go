package assessment

// Shuffler permutes n elements through swap, e.g. (*rand.Rand).Shuffle.
type Shuffler func(n int, swap func(i, j int))

// StudentView returns a copy of the test that is safe to hand to a test taker:
// correct answers and option correctness are stripped and question order is
// shuffled when RandomizeQuestions is set.
func (t Test) StudentView(shuffle Shuffler) Test {
	out := t
	out.Questions = make([]Question, 0, len(t.Questions))
	for _, q := range t.Questions {
		q.CorrectAnswer = Answer{}
		opts := make([]Option, len(q.Options))
		for i, o := range q.Options {
			o.IsCorrect = false
			opts[i] = o
		}
		q.Options = opts
		out.Questions = append(out.Questions, q)
	}

	if t.RandomizeQuestions && shuffle != nil {
		qs := out.Questions
		shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
	}
	return out
}
