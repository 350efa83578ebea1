package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/adamind/quizwhizz-api/middleware"
)

// Mux builds the API route table. Literal segments outrank wildcards
// under ServeMux precedence, so /api/user/{userId}/flashcardsprogress
// can never be swallowed by /api/user/{userId}.
func (h *Handler) Mux() *http.ServeMux {
	requireAuth := middleware.RequireAuth(h.JWTSecret)
	optionalAuth := middleware.OptionalAuth(h.JWTSecret)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/ping", Ping)

	// Auth
	mux.HandleFunc("POST /api/auth/signup", h.Signup)
	mux.HandleFunc("POST /api/auth/login", h.Login)

	// Quiz
	mux.HandleFunc("POST /api/quiz/generate", h.GenerateQuiz)
	mux.HandleFunc("POST /api/quiz/summarize", optionalAuth(h.SummarizeQuiz))
	mux.HandleFunc("POST /api/quiz/explain", h.ExplainAnswers)
	mux.HandleFunc("POST /api/quiz/flashcards", optionalAuth(h.GenerateFlashcards))
	mux.HandleFunc("GET /api/quiz/user/{id}", requireAuth(h.GetQuizUser))

	// User history
	mux.HandleFunc("POST /api/user/save-result", requireAuth(h.SaveResult))
	mux.HandleFunc("GET /api/user/{userId}/flashcardsprogress", requireAuth(h.GetUserFlashcards))
	mux.HandleFunc("GET /api/user/{userId}", requireAuth(h.GetUserProgress))

	return mux
}

// Ping is the health route.
func Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ok":   true,
		"time": time.Now().UnixMilli(),
	})
}
