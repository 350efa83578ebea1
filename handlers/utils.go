package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adamind/quizwhizz-api/auth"
	"github.com/adamind/quizwhizz-api/quiz"
	"github.com/adamind/quizwhizz-api/store"
	"github.com/adamind/quizwhizz-api/utils"
)

// respondPayload writes an arbitrary JSON payload as-is.
func respondPayload(w http.ResponseWriter, status int, payload map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondJSON writes the payload with success:true merged in.
func respondJSON(w http.ResponseWriter, status int, fields map[string]interface{}) {
	payload := map[string]interface{}{"success": true}
	for k, v := range fields {
		payload[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondMessage writes a {success:false, message} body with the given
// status.
func respondMessage(w http.ResponseWriter, status int, message string) {
	utils.RespondMessage(w, status, message)
}

// respondError maps an error to its HTTP status. One status per failure
// class, everywhere.
func respondError(w http.ResponseWriter, err error) {
	respondMessage(w, statusFor(err), err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, quiz.ErrEmptyTopic), errors.Is(err, store.ErrEmptyTopic):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, quiz.ErrGenerationFailed), errors.Is(err, quiz.ErrMalformedModelOutput):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody decodes a JSON request body into dst sending a 400 on
// failure. Returns false when the response has already been written.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
