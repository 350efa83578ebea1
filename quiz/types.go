package quiz

// Question is a single multiple-choice quiz question. Questions are
// ephemeral: generated per request and never persisted themselves, only
// the derived progress entry is.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
	Topic    string   `json:"topic,omitempty"`
}

// Flashcard is one generated question/answer pair.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// WrongAnswer records one missed question for the explanation request.
// It is never persisted.
type WrongAnswer struct {
	Question string `json:"question"`
	Selected string `json:"selected"`
	Correct  string `json:"correct"`
}

// Explanation is the model's short explanation for one missed question.
type Explanation struct {
	Question    string `json:"question"`
	Explanation string `json:"explanation"`
}

const (
	// QuestionsPerQuiz is the fixed quiz size requested from the model.
	QuestionsPerQuiz = 5

	// OptionsPerQuestion is the required number of choices per question.
	OptionsPerQuestion = 4

	// CardsPerSet is the fixed flashcard set size requested from the model.
	CardsPerSet = 5

	// NotAnswered marks a question the user left blank.
	NotAnswered = "Not answered"
)
