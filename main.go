package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/adamind/quizwhizz-api/config"
	"github.com/adamind/quizwhizz-api/handlers"
	"github.com/adamind/quizwhizz-api/llm"
	"github.com/adamind/quizwhizz-api/logger"
	"github.com/adamind/quizwhizz-api/quiz"
	"github.com/adamind/quizwhizz-api/store"
)

func init() {
	// Load .env outside of managed deployments.
	if os.Getenv("APP_ENV") == "" {
		if err := godotenv.Load(); err != nil {
			log.Printf("no .env file loaded: %v", err)
		}
	}
}

func main() {
	env, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	appLog, err := logger.New(env.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer appLog.Sync()

	db, err := config.Connect(env.DatabaseURL)
	if err != nil {
		appLog.Fatal("database connect failed", "error", err)
	}

	provider, err := llm.NewProvider(context.Background(), llm.Config{
		Provider: env.LLMProvider,
		APIKey:   env.LLMAPIKey,
		Model:    env.LLMModel,
	})
	if err != nil {
		appLog.Fatal("model provider init failed", "error", err)
	}
	appLog.Info("model provider ready", "model", provider.ModelID())

	userStore := store.NewUserStore(db)
	quizService := quiz.NewService(provider, userStore, appLog)
	h := handlers.New(userStore, quizService, env.JWTSecret, appLog)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   env.AllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(h.Mux())

	addr := "0.0.0.0:" + env.Port
	appLog.Info("server listening", "addr", addr)
	if err := http.ListenAndServe(addr, corsHandler); err != nil {
		appLog.Fatal("server stopped", "error", err)
	}
}
