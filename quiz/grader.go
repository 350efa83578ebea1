package quiz

// GradeResult holds the deterministic outcome of grading one submission.
type GradeResult struct {
	Correct int
	Wrong   []WrongAnswer
}

// Grade scores a submission against the quiz. The answers map is keyed
// by question index and may be sparse; an absent index counts as wrong
// with the NotAnswered sentinel. An index is correct iff the submitted
// string equals the question's designated answer.
func Grade(questions []Question, answers map[int]string) GradeResult {
	result := GradeResult{}

	for i, q := range questions {
		selected, ok := answers[i]
		if ok && selected == q.Answer {
			result.Correct++
			continue
		}
		if !ok {
			selected = NotAnswered
		}
		result.Wrong = append(result.Wrong, WrongAnswer{
			Question: q.Question,
			Selected: selected,
			Correct:  q.Answer,
		})
	}

	return result
}
