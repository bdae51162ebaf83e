package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"legal-qa-bot/internal/chat"
	"legal-qa-bot/internal/client"
	"legal-qa-bot/internal/config"
	"legal-qa-bot/internal/service"
	"legal-qa-bot/internal/session"
	"legal-qa-bot/internal/tui"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	cfg, err := config.LoadClient()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Stdout belongs to the terminal UI, so logs go to a file.
	logger := newFileLogger()
	defer logger.Sync()

	tokens, err := session.NewFileTokenStorage(cfg.TokenPath)
	if err != nil {
		log.Fatalf("token storage: %v", err)
	}

	api := client.NewAPI(cfg.APIBaseURL, nil)
	store := session.NewStore(logger, tokens, session.FallbackFetcher{
		Primary:   api,
		Secondary: session.StaticAccountFetcher{},
	})
	store.Hydrate(ctx)

	var answerer service.Answerer
	switch cfg.AnswerMode {
	case "http":
		answerer = client.NewQueryAnswerer(api, store.Token)
	default:
		answerer = service.NewCannedAnswerer(cfg.MockAnswerDelay)
	}

	history := chat.NewHistory()
	controller := chat.NewController(logger, answerer, history)

	app := tui.NewApp(logger, store, api, controller, history)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("tui: %v", err)
	}
}

func newFileLogger() *zap.Logger {
	dir, err := os.UserConfigDir()
	if err != nil {
		return zap.NewNop()
	}
	path := filepath.Join(dir, "legal-qa-bot", "client.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return zap.NewNop()
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{path}
	logger, err := zapCfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
