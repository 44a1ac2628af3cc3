// cmd/server/main.go
package main

import (
	"log"
	"log/slog"

	"github.com/sozercan/ai-copywriter/internal/config"
	"github.com/sozercan/ai-copywriter/internal/generator"
	"github.com/sozercan/ai-copywriter/internal/llm"
	"github.com/sozercan/ai-copywriter/internal/logger"
	"github.com/sozercan/ai-copywriter/internal/metrics"
	"github.com/sozercan/ai-copywriter/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger := logger.New(logger.FromConfig(cfg.Log.Level, cfg.Log.Format))
	slog.SetDefault(appLogger.Logger)

	prompts, err := config.LoadPrompts(cfg.Prompts.File)
	if err != nil {
		log.Fatalf("failed to load prompts: %v", err)
	}

	llmProvider, err := llm.NewOpenAI(&cfg.OpenAI)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}

	m := metrics.New()
	gen := generator.New(llmProvider, prompts, appLogger, m)

	srv := server.New(*cfg, gen, m, appLogger)
	slog.Info("starting server",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"provider", cfg.OpenAI.Provider,
		"model", cfg.OpenAI.Model,
	)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
