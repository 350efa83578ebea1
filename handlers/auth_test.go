package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamind/quizwhizz-api/auth"
	"github.com/adamind/quizwhizz-api/models"
)

func TestSignup(t *testing.T) {
	env := newTestEnv(t)

	status, payload := env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "correct-horse-battery",
	})

	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, payload["success"])

	user := payload["user"].(map[string]interface{})
	assert.NotEmpty(t, user["_id"])
	assert.Equal(t, "Ada", user["name"])
	assert.Equal(t, "ada@example.com", user["email"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword, "the password must never be serialized")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.signupAndLogin(t, "ada@example.com")

	status, payload := env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     "Imposter",
		"email":    "ada@example.com",
		"password": "another-password",
	})

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, false, payload["success"])

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "a rejected signup must not mutate the store")
}

func TestSignup_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	tests := []map[string]string{
		{"email": "a@b.c", "password": "x"},
		{"name": "Ada", "password": "x"},
		{"name": "Ada", "email": "a@b.c"},
		{"name": "  ", "email": "a@b.c", "password": "x"},
	}
	for _, body := range tests {
		status, payload := env.do(t, http.MethodPost, "/api/auth/signup", "", body)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, false, payload["success"])
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	id, _ := env.signupAndLogin(t, "ada@example.com")

	status, payload := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "hunter2-but-longer",
	})

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, payload["success"])

	token := payload["token"].(string)
	subject, err := auth.ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, id, subject, "the token subject is the user's public ID")
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.signupAndLogin(t, "ada@example.com")

	status, payload := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "not-the-password",
	})

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, payload["success"])
	_, hasToken := payload["token"]
	assert.False(t, hasToken, "no credential may be issued on a failed login")
}

func TestLogin_UnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	status, payload := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, payload["success"])
}
