// Package config loads configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds runtime settings.
type Config struct {
	DeepSeekAPIKey string
	GoogleAPIKey   string
	TTSAPIKey      string
	DatabaseURL    string
	DataDir        string
	ListenAddr     string
	LLMProvider    string
	LLMBaseURL     string
	LLMModel       string
	TTSModel       string
	TTSVoice       string
	PolicyFile     string
	ResumeMaxChars int
	RequestTimeout time.Duration
}

// Load reads env vars, applies defaults, and validates required
// fields. The completion API key is the one required secret; speech
// stays disabled without TTS_API_KEY.
func Load() Config {
	cfg := Config{
		DeepSeekAPIKey: os.Getenv("DEEPSEEK_API_KEY"),
		GoogleAPIKey:   os.Getenv("GOOGLE_API_KEY"),
		TTSAPIKey:      os.Getenv("TTS_API_KEY"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DataDir:        os.Getenv("DATA_DIR"),
		ListenAddr:     os.Getenv("LISTEN_ADDR"),
		LLMProvider:    os.Getenv("LLM_PROVIDER"),
		LLMBaseURL:     os.Getenv("LLM_BASE_URL"),
		LLMModel:       os.Getenv("LLM_MODEL"),
		TTSModel:       os.Getenv("TTS_MODEL"),
		TTSVoice:       os.Getenv("TTS_VOICE"),
		PolicyFile:     os.Getenv("HR_POLICY_FILE"),
	}

	cfg.ResumeMaxChars = getEnvInt("RESUME_MAX_CHARS", 3000)
	cfg.RequestTimeout = time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 60)) * time.Second

	if cfg.DataDir == "" {
		cfg.DataDir, _ = os.Getwd()
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.LLMProvider == "" {
		cfg.LLMProvider = "deepseek"
	}
	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = "https://api.deepseek.com"
	}
	if cfg.LLMModel == "" {
		switch cfg.LLMProvider {
		case "gemini":
			cfg.LLMModel = "gemini-2.5-flash"
		default:
			cfg.LLMModel = "deepseek-chat"
		}
	}

	switch cfg.LLMProvider {
	case "deepseek":
		if cfg.DeepSeekAPIKey == "" {
			log.Fatal("DEEPSEEK_API_KEY environment variable is required")
		}
	case "gemini":
		if cfg.GoogleAPIKey == "" {
			log.Fatal("GOOGLE_API_KEY environment variable is required when LLM_PROVIDER=gemini")
		}
	default:
		log.Fatalf("unknown LLM_PROVIDER %q (expected deepseek or gemini)", cfg.LLMProvider)
	}

	return cfg
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}
