package handlers

import (
	"net/http"

	"github.com/adamind/quizwhizz-api/middleware"
	"github.com/adamind/quizwhizz-api/quiz"
)

// GenerateQuiz builds a 5-question multiple-choice quiz for the topic.
// Nothing is persisted on this path.
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic string `json:"topic"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	questions, err := h.Quiz.GenerateQuiz(r.Context(), req.Topic)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"quiz": questions,
	})
}

// SummarizeQuiz grades a finished quiz, asks the model for a short
// summary, and appends a progress entry for the user. Summary failure
// degrades to a fallback string; only a persistence failure is an error.
func (h *Handler) SummarizeQuiz(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID       string          `json:"userId"`
		Topic        string          `json:"topic"`
		Quiz         []quiz.Question `json:"quiz"`
		CorrectCount int             `json:"correctCount"`
		Answers      map[int]string  `json:"answers"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if len(req.Quiz) == 0 {
		respondMessage(w, http.StatusBadRequest, "No quiz data provided.")
		return
	}

	// When the raw answers are supplied the server grades them itself;
	// a client-computed count is only accepted within range.
	score := req.CorrectCount
	if req.Answers != nil {
		score = quiz.Grade(req.Quiz, req.Answers).Correct
	}
	if score < 0 || score > len(req.Quiz) {
		respondMessage(w, http.StatusBadRequest, "correctCount out of range for this quiz")
		return
	}

	userID, ok := h.effectiveUserID(w, r, req.UserID)
	if !ok {
		return
	}

	summary, err := h.Quiz.Summarize(r.Context(), req.Topic, req.Quiz, score, userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"summary": summary,
		"score":   score,
	})
}

// ExplainAnswers asks the model for one short explanation per missed
// question. Explanations are supplementary, so a failed model call
// reports success:false with an empty list rather than an HTTP error.
func (h *Handler) ExplainAnswers(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WrongQuestions []quiz.WrongAnswer `json:"wrongQuestions"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if len(req.WrongQuestions) == 0 {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"explanations": []quiz.Explanation{},
		})
		return
	}

	explanations, err := h.Quiz.Explain(r.Context(), req.WrongQuestions)
	if err != nil {
		respondPayload(w, http.StatusOK, map[string]interface{}{
			"success":      false,
			"explanations": []quiz.Explanation{},
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"explanations": explanations,
	})
}

// GenerateFlashcards builds a flashcard set and, for a logged-in user,
// saves it to their history. A failed save is logged, not surfaced.
func (h *Handler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic  string `json:"topic"`
		UserID string `json:"userId"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	userID, ok := h.effectiveUserID(w, r, req.UserID)
	if !ok {
		return
	}

	cards, err := h.Quiz.GenerateFlashcards(r.Context(), req.Topic, userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"flashcards": cards,
	})
}

// GetQuizUser returns the full user record, history included.
func (h *Handler) GetQuizUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.requireSameUser(w, r, id) {
		return
	}

	user, err := h.Store.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user": user,
	})
}

// effectiveUserID resolves which user a request acts for. Identity comes
// from the verified token only: without one the request is anonymous and
// nothing is persisted, whatever userId the body claims. A body userId
// that contradicts the token is rejected. Returns ok=false after writing
// the response.
func (h *Handler) effectiveUserID(w http.ResponseWriter, r *http.Request, bodyUserID string) (string, bool) {
	tokenID := middleware.UserID(r.Context())
	if tokenID == "" {
		return "", true
	}
	if bodyUserID != "" && bodyUserID != tokenID {
		respondMessage(w, http.StatusUnauthorized, "token does not match user")
		return "", false
	}
	return tokenID, true
}

// requireSameUser rejects requests whose token subject differs from the
// user ID in the path.
func (h *Handler) requireSameUser(w http.ResponseWriter, r *http.Request, pathUserID string) bool {
	tokenID := middleware.UserID(r.Context())
	if tokenID != pathUserID {
		respondMessage(w, http.StatusUnauthorized, "token does not match user")
		return false
	}
	return true
}
