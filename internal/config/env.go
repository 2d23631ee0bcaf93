package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppAddr      = ":8080"
	defaultLLMModel     = "llama-3.3-70b-versatile"
	defaultLLMBaseURL   = "https://api.groq.com/openai/v1"
	defaultTemperature  = 0.1
	defaultUSDToINR     = 83.0
	defaultWriteTimeout = 5 * time.Minute
)

type Env struct {
	AppAddr      string
	GinMode      string
	LogLevel     string
	WriteTimeout time.Duration

	GroqAPIKey     string
	LLMModel       string
	LLMBaseURL     string
	LLMTemperature float64

	USDToINR float64

	CORSAllowedOrigins []string

	// DBDSN enables user accounts and bearer auth on the JSON API when set.
	DBDSN     string
	JWTSecret string
}

// AccountsEnabled reports whether the MySQL-backed account layer should be wired.
func (e Env) AccountsEnabled() bool {
	return e.DBDSN != ""
}

// Validate rejects settings the server cannot run with safely.
func (e Env) Validate() error {
	if e.AccountsEnabled() && e.JWTSecret == "" {
		return errors.New("JWT_SECRET is required when DB_DSN is set")
	}
	return nil
}

// LoadEnv reads .env (if present) and then the process environment.
func LoadEnv() Env {
	_ = godotenv.Load()
	return envFrom(os.Getenv)
}

func envFrom(getenv func(string) string) Env {
	get := func(key string) string {
		return strings.TrimSpace(getenv(key))
	}

	appAddr := get("APP_ADDR")
	if appAddr == "" {
		appAddr = defaultAppAddr
	}

	model := get("LLM_MODEL")
	if model == "" {
		model = defaultLLMModel
	}

	baseURL := get("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = defaultLLMBaseURL
	}

	var origins []string
	for _, o := range strings.Split(get("CORS_ALLOWED_ORIGINS"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}

	return Env{
		AppAddr:            appAddr,
		GinMode:            get("GIN_MODE"),
		LogLevel:           get("LOG_LEVEL"),
		WriteTimeout:       parseDuration(get("HTTP_WRITE_TIMEOUT"), defaultWriteTimeout),
		GroqAPIKey:         get("GROQ_API_KEY"),
		LLMModel:           model,
		LLMBaseURL:         baseURL,
		LLMTemperature:     parseFloat(get("LLM_TEMPERATURE"), defaultTemperature),
		USDToINR:           parseFloat(get("USD_TO_INR"), defaultUSDToINR),
		CORSAllowedOrigins: origins,
		DBDSN:              get("DB_DSN"),
		JWTSecret:          get("JWT_SECRET"),
	}
}

func parseFloat(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
