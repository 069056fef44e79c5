// Package main is the entry point for the HR assistant service.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/konantech/hr-assistant/internal/chat"
	"github.com/konantech/hr-assistant/internal/config"
	"github.com/konantech/hr-assistant/internal/llm"
	"github.com/konantech/hr-assistant/internal/mood"
	"github.com/konantech/hr-assistant/internal/prompt"
	"github.com/konantech/hr-assistant/internal/server"
	"github.com/konantech/hr-assistant/internal/speech"
	"github.com/konantech/hr-assistant/internal/storage/csvfile"
	"github.com/konantech/hr-assistant/internal/storage/memory"
	"github.com/konantech/hr-assistant/internal/storage/postgres"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		moods    mood.Log
		checkins mood.CheckinStore
		history  chat.HistoryStore
	)
	if cfg.DatabaseURL != "" {
		store, err := postgres.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer store.Close()
		moods = store.MoodLog()
		checkins = store.CheckinLog()
		history = store.History()
	} else {
		moods = csvfile.NewMoodLog(filepath.Join(cfg.DataDir, "mood_log.csv"))
		checkins = csvfile.NewCheckinLog(filepath.Join(cfg.DataDir, "checkin_log.csv"))
		history = memory.NewHistoryStore()
	}

	completer, err := newCompleter(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to create completion client: %v", err)
	}

	var tts speech.Synthesizer
	if cfg.TTSAPIKey != "" {
		synthesizer, err := speech.NewOpenAISynthesizer(cfg.TTSAPIKey, cfg.TTSModel, cfg.TTSVoice)
		if err != nil {
			log.Fatalf("failed to create speech synthesizer: %v", err)
		}
		tts = synthesizer
	} else {
		slog.Info("TTS_API_KEY not set, replies will be text only")
	}

	policy := ""
	if cfg.PolicyFile != "" {
		data, err := os.ReadFile(cfg.PolicyFile)
		if err != nil {
			log.Fatalf("failed to read HR policy file: %v", err)
		}
		policy = string(data)
	}

	service := chat.NewService(
		mood.NewClassifier(nil),
		moods,
		checkins,
		history,
		prompt.NewBuilder(policy, cfg.ResumeMaxChars),
		completer,
		tts,
	)

	srv := server.New(server.Config{
		Addr:           cfg.ListenAddr,
		RequestTimeout: cfg.RequestTimeout,
	}, service, moods, checkins)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		slog.Info("shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shut down cleanly", "error", err.Error())
		}
		cancel()
	}()

	slog.Info("starting HR assistant", "addr", cfg.ListenAddr, "provider", cfg.LLMProvider)
	if err := srv.Start(); err != nil {
		slog.Info("server stopped", "reason", err.Error())
	}
}

func newCompleter(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if cfg.LLMProvider == "gemini" {
		return llm.NewGeminiClient(ctx, cfg.GoogleAPIKey, cfg.LLMModel)
	}
	return llm.NewOpenAIClient(cfg.DeepSeekAPIKey, cfg.LLMBaseURL, cfg.LLMModel)
}
