package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Chat    ChatConfig
	Ai      AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type StorageConfig struct {
	Driver     string // "file", "memory", "redis", "postgres"
	FilePath   string
	Connection string // postgres DSN, used when Driver == "postgres"
}

type ChatConfig struct {
	RevealIntervalMs int
	// Stage deleted conversations for restore instead of discarding them.
	TrashRetainOnDelete bool
}

type AIConfig struct {
	LLMProvider   string // "openai" or "ollama"
	LLMModel      string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OllamaBaseURL string
	// Seconds; 0 keeps the source behavior of no client-side timeout.
	RequestTimeout int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Storage: StorageConfig{
			Driver:     getEnv("STORAGE_DRIVER", "file"),
			FilePath:   getEnv("STORAGE_FILE_PATH", "data/state.json"),
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Chat: ChatConfig{
			RevealIntervalMs:    getEnvAsInt("REVEAL_INTERVAL_MS", 30),
			TrashRetainOnDelete: getEnvAsBool("TRASH_RETAIN_ON_DELETE", true),
		},
		Ai: AIConfig{
			LLMProvider:    getEnv("LLM_PROVIDER", "openai"),
			LLMModel:       getEnv("LLM_MODEL", "gpt-3.5-turbo"),
			OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			RequestTimeout: getEnvAsInt("AI_REQUEST_TIMEOUT", 0),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
