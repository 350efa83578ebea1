package handlers

import (
	"net/http"
	"strings"
)

// SaveResult stores a quiz outcome as both a result row and a progress
// entry, in one transaction.
func (h *Handler) SaveResult(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
		QuizID string `json:"quizId"`
		Topic  string `json:"topic"`
		Score  int    `json:"score"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if req.UserID == "" || strings.TrimSpace(req.Topic) == "" {
		respondMessage(w, http.StatusBadRequest, "Missing userId or topic")
		return
	}
	if !h.requireSameUser(w, r, req.UserID) {
		return
	}
	if req.Score < 0 {
		respondMessage(w, http.StatusBadRequest, "score must not be negative")
		return
	}

	if err := h.Store.SaveResult(r.Context(), req.UserID, req.QuizID, req.Topic, req.Score); err != nil {
		h.Log.Error("save result failed", "user", req.UserID, "error", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Result saved successfully!",
	})
}

// GetUserProgress returns the user record plus their saved results,
// newest first.
func (h *Handler) GetUserProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if !h.requireSameUser(w, r, userID) {
		return
	}

	user, err := h.Store.GetByID(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	results, err := h.Store.ResultsByUser(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user":    user,
		"results": results,
	})
}

// GetUserFlashcards returns the user's saved flashcard sets, newest
// first.
func (h *Handler) GetUserFlashcards(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if !h.requireSameUser(w, r, userID) {
		return
	}

	sets, err := h.Store.FlashcardSets(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"flashcards": sets,
	})
}
