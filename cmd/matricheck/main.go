package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rifat-hossain/matricheck/internal/bridge"
	"github.com/rifat-hossain/matricheck/internal/config"
	"github.com/rifat-hossain/matricheck/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// The terminal owns stdout; diagnostics go to a file when one can be
	// opened, otherwise logging is off.
	logger := zerolog.Nop()
	logPath := config.LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err == nil {
		if logFile, ferr := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); ferr == nil {
			defer logFile.Close()
			logger = zerolog.New(logFile).With().Timestamp().Logger()
		}
	}

	timeout := time.Duration(cfg.Bridge.TimeoutSeconds) * time.Second
	client := bridge.NewHTTPClient(cfg.Bridge.URL, timeout, logger)

	p := tea.NewProgram(tui.New(ctx, cfg, client, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
