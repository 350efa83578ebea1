package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedModelOutput indicates the model replied with something
// that does not decode or validate as the requested shape. Callers
// treat this as a user-retryable failure, not a crash.
var ErrMalformedModelOutput = errors.New("malformed model output")

// ParseQuiz decodes the model's raw reply into validated questions.
// Every question must have non-empty text, exactly 4 distinct options,
// and an answer that is one of them.
func ParseQuiz(raw string) ([]Question, error) {
	text := stripCodeFence(raw)

	var questions []Question
	if err := json.Unmarshal([]byte(text), &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedModelOutput, err)
	}

	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("%w: question %d has empty text", ErrMalformedModelOutput, i)
		}
		if len(q.Options) != OptionsPerQuestion {
			return nil, fmt.Errorf("%w: question %d has %d options, want %d",
				ErrMalformedModelOutput, i, len(q.Options), OptionsPerQuestion)
		}
		seen := make(map[string]bool, OptionsPerQuestion)
		answerFound := false
		for _, opt := range q.Options {
			if seen[opt] {
				return nil, fmt.Errorf("%w: question %d has duplicate option %q",
					ErrMalformedModelOutput, i, opt)
			}
			seen[opt] = true
			if opt == q.Answer {
				answerFound = true
			}
		}
		if !answerFound {
			return nil, fmt.Errorf("%w: question %d answer %q is not among its options",
				ErrMalformedModelOutput, i, q.Answer)
		}
	}

	return questions, nil
}

// ParseFlashcards decodes the model's raw reply into validated
// flashcards. Every card must have a non-empty question and answer.
func ParseFlashcards(raw string) ([]Flashcard, error) {
	text := stripCodeFence(raw)

	var cards []Flashcard
	if err := json.Unmarshal([]byte(text), &cards); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedModelOutput, err)
	}

	for i, c := range cards {
		if strings.TrimSpace(c.Question) == "" {
			return nil, fmt.Errorf("%w: flashcard %d has empty question", ErrMalformedModelOutput, i)
		}
		if strings.TrimSpace(c.Answer) == "" {
			return nil, fmt.Errorf("%w: flashcard %d has empty answer", ErrMalformedModelOutput, i)
		}
	}

	return cards, nil
}

// ParseExplanations decodes the model's reply to an explanation request.
func ParseExplanations(raw string) ([]Explanation, error) {
	text := stripCodeFence(raw)

	var explanations []Explanation
	if err := json.Unmarshal([]byte(text), &explanations); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedModelOutput, err)
	}
	return explanations, nil
}

// stripCodeFence removes markdown code-fence wrapping the model may
// have added around the JSON payload, e.g. ```json ... ```.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	// Skip the opening fence and its optional language tag line.
	start := 3
	if idx := strings.Index(s[start:], "\n"); idx != -1 {
		start += idx + 1
	}
	if end := strings.Index(s[start:], "```"); end != -1 {
		s = s[start : start+end]
	} else {
		s = s[start:]
	}
	return strings.TrimSpace(s)
}
