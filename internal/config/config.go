// Package config loads configuration from an optional YAML file and the
// environment. Environment variables always win over file values.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Provider names for the assistant LLM.
const (
	ProviderOllama    = "ollama"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config holds all configuration values.
type Config struct {
	// Directory/assistant server (client side)
	ServerURL     string
	ClientTimeout time.Duration

	// HTTP server
	ServerPort string

	// SurrealDB connection (server side)
	SurrealDBURL       string
	SurrealDBNamespace string
	SurrealDBDatabase  string
	SurrealDBUser      string
	SurrealDBPass      string
	SurrealDBAuthLevel string

	// Assistant LLM
	LLMProvider     string
	LLMModel        string
	OllamaHost      string
	OpenAIAPIKey    string
	AnthropicAPIKey string

	// Logging
	LogFile  string
	LogLevel slog.Level

	// Chat typing simulation
	TypingDelay  time.Duration
	TypingJitter time.Duration
}

// fileConfig mirrors the YAML config file layout. All fields are optional.
type fileConfig struct {
	ServerURL     string `yaml:"server_url"`
	ClientTimeout string `yaml:"client_timeout"`
	ServerPort    string `yaml:"server_port"`

	SurrealDB struct {
		URL       string `yaml:"url"`
		Namespace string `yaml:"namespace"`
		Database  string `yaml:"database"`
		User      string `yaml:"user"`
		Pass      string `yaml:"pass"`
		AuthLevel string `yaml:"auth_level"`
	} `yaml:"surrealdb"`

	LLM struct {
		Provider string `yaml:"provider"`
		Model    string `yaml:"model"`
	} `yaml:"llm"`

	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`

	TypingDelay  string `yaml:"typing_delay"`
	TypingJitter string `yaml:"typing_jitter"`
}

// Load reads configuration from the optional config file and the environment.
func Load() Config {
	file := loadFile()

	return Config{
		ServerURL:     getEnv("CONTACTBOT_SERVER_URL", orDefault(file.ServerURL, "http://localhost:8090")),
		ClientTimeout: parseDuration(getEnv("CONTACTBOT_CLIENT_TIMEOUT", orDefault(file.ClientTimeout, "30s")), 30*time.Second),
		ServerPort:    getEnv("CONTACTBOT_SERVER_PORT", orDefault(file.ServerPort, "8090")),

		SurrealDBURL:       getEnv("SURREALDB_URL", orDefault(file.SurrealDB.URL, "ws://localhost:8000/rpc")),
		SurrealDBNamespace: getEnv("SURREALDB_NAMESPACE", orDefault(file.SurrealDB.Namespace, "contactbot")),
		SurrealDBDatabase:  getEnv("SURREALDB_DATABASE", orDefault(file.SurrealDB.Database, "directory")),
		SurrealDBUser:      getEnv("SURREALDB_USER", orDefault(file.SurrealDB.User, "root")),
		SurrealDBPass:      getEnv("SURREALDB_PASS", orDefault(file.SurrealDB.Pass, "root")),
		SurrealDBAuthLevel: getEnv("SURREALDB_AUTH_LEVEL", orDefault(file.SurrealDB.AuthLevel, "root")),

		LLMProvider:     getEnv("CONTACTBOT_LLM_PROVIDER", orDefault(file.LLM.Provider, ProviderOllama)),
		LLMModel:        getEnv("CONTACTBOT_LLM_MODEL", orDefault(file.LLM.Model, "llama3.2")),
		OllamaHost:      getEnv("OLLAMA_HOST", "http://localhost:11434"),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),

		LogFile:  getEnv("CONTACTBOT_LOG_FILE", orDefault(file.LogFile, "/tmp/contactbot.log")),
		LogLevel: parseLogLevel(getEnv("CONTACTBOT_LOG_LEVEL", orDefault(file.LogLevel, "INFO"))),

		TypingDelay:  parseDuration(getEnv("CONTACTBOT_TYPING_DELAY", orDefault(file.TypingDelay, "1500ms")), 1500*time.Millisecond),
		TypingJitter: parseDuration(getEnv("CONTACTBOT_TYPING_JITTER", orDefault(file.TypingJitter, "1s")), time.Second),
	}
}

// loadFile reads the YAML config file if one exists. A missing or malformed
// file is not an error; env defaults cover everything.
func loadFile() fileConfig {
	var fc fileConfig

	path := os.Getenv("CONTACTBOT_CONFIG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fc
		}
		path = filepath.Join(home, ".config", "contactbot", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fc
	}
	_ = yaml.Unmarshal(data, &fc)
	return fc
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func orDefault(val, defaultVal string) string {
	if val != "" {
		return val
	}
	return defaultVal
}

func parseDuration(s string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return defaultVal
	}
	return d
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
