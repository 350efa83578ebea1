package handlers

import (
	"github.com/adamind/quizwhizz-api/logger"
	"github.com/adamind/quizwhizz-api/quiz"
	"github.com/adamind/quizwhizz-api/store"
)

// Handler carries the dependencies every route needs.
type Handler struct {
	Store     *store.UserStore
	Quiz      *quiz.Service
	JWTSecret string
	Log       *logger.Logger
}

func New(userStore *store.UserStore, quizService *quiz.Service, jwtSecret string, log *logger.Logger) *Handler {
	return &Handler{
		Store:     userStore,
		Quiz:      quizService,
		JWTSecret: jwtSecret,
		Log:       log.With("component", "handlers"),
	}
}
