// Command qdeck is an interactive terminal explorer for a small qubit
// register: apply gates, watch the amplitudes, measure and sample.
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"qreg/internal/config"
	"qreg/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "qdeck:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The terminal belongs to the UI, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Output: out})

	m, err := newModel(cfg, log)
	if err != nil {
		return err
	}

	log.Info().Int("qubits", cfg.Qubits).Int("shots", cfg.Shots).Uint64("seed", cfg.Seed).Msg("qdeck starting")
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	log.Info().Msg("qdeck stopped")
	return nil
}
