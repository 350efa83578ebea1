package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/adamind/quizwhizz-api/auth"
	"github.com/adamind/quizwhizz-api/store"
)

// Signup registers a new user and returns the public user summary.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "name, email, and password are required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.Log.Error("password hashing failed", "error", err)
		respondMessage(w, http.StatusInternalServerError, "server error during signup")
		return
	}

	user, err := h.Store.Create(r.Context(), req.Name, req.Email, hash)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			respondMessage(w, http.StatusConflict, "User already exists")
			return
		}
		h.Log.Error("signup failed", "email", req.Email, "error", err)
		respondMessage(w, http.StatusInternalServerError, "server error during signup")
		return
	}

	h.Log.Info("user registered", "user", user.PublicID)
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Signup successful",
		"user":    user.Public(),
	})
}

// Login authenticates a user and issues a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.Store.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondMessage(w, http.StatusUnauthorized, "User not found")
			return
		}
		h.Log.Error("login lookup failed", "email", req.Email, "error", err)
		respondMessage(w, http.StatusInternalServerError, "server error during login")
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.CreateToken(h.JWTSecret, user.PublicID)
	if err != nil {
		h.Log.Error("token issue failed", "user", user.PublicID, "error", err)
		respondMessage(w, http.StatusInternalServerError, "server error during login")
		return
	}

	h.Log.Info("user logged in", "user", user.PublicID)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user":    user.Public(),
	})
}
