package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment is the process configuration read once at startup.
type Environment struct {
	// AppEnv is "development" or "production"; it drives the zap mode
	// and the allowed CORS origins.
	AppEnv string

	// DatabaseURL is the postgres connection string.
	DatabaseURL string

	// JWTSecret signs bearer tokens.
	JWTSecret string

	// LLMProvider selects the text-model backend ("gemini", "openai").
	LLMProvider string

	// LLMAPIKey is the text-model API credential.
	LLMAPIKey string

	// LLMModel optionally overrides the provider's default model.
	LLMModel string

	// Port is the HTTP listen port.
	Port string
}

// Load reads the environment into a typed struct and validates the
// required settings.
func Load() (Environment, error) {
	env := Environment{
		AppEnv:      getenvDefault("APP_ENV", "development"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET_KEY"),
		LLMProvider: getenvDefault("LLM_PROVIDER", "gemini"),
		LLMModel:    os.Getenv("LLM_MODEL"),
		Port:        getenvDefault("PORT", "8080"),
	}

	switch env.LLMProvider {
	case "openai":
		env.LLMAPIKey = os.Getenv("OPENAI_API_KEY")
	default:
		env.LLMAPIKey = os.Getenv("GEMINI_API_KEY")
	}

	if env.DatabaseURL == "" {
		return env, fmt.Errorf("DATABASE_URL is required")
	}
	if env.JWTSecret == "" {
		return env, fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if env.LLMAPIKey == "" {
		return env, fmt.Errorf("API key for provider %q is required", env.LLMProvider)
	}

	return env, nil
}

// IsProduction reports whether the deployment-mode flag is set.
func (e Environment) IsProduction() bool {
	return strings.EqualFold(e.AppEnv, "production") || strings.EqualFold(e.AppEnv, "prod")
}

// AllowedOrigins returns the cross-origin callers permitted in this
// deployment mode.
func (e Environment) AllowedOrigins() []string {
	if e.IsProduction() {
		if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
			return strings.Split(origins, ",")
		}
		return []string{"https://quizwhizz.app"}
	}
	return []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}
}

func getenvDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
