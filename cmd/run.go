package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/trivia/internal/app"
	"github.com/abhisek/trivia/internal/config"
	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/session"
)

// loadConfig resolves the configuration layers for cmd: defaults, the
// YAML file, .env and the environment, then the --log flag.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "Ignoring .env:", err)
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Resolve(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	if p, _ := cmd.Flags().GetString("log"); p != "" {
		cfg.LogFile = p
	}
	return cfg, nil
}

// openLog routes the standard logger to path. With no path, logging is
// discarded because the terminal belongs to the TUI.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return log.Default(), func() {}, nil
	}
	f, err := tea.LogToFile(path, "trivia")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.Default(), func() { f.Close() }, nil
}

// runApp loads configuration, then launches the TUI over the built-in
// bank. A non-empty sel skips the category menu.
func runApp(cmd *cobra.Command, sel session.Selection) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	bank := questionbank.Default()

	logger, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Printf("starting: questions=%d min=%d seconds=%d feedback=%s",
		bank.Len(), cfg.Quiz.MinQuestions, cfg.Quiz.QuestionSeconds, cfg.Quiz.FeedbackWindow)

	return app.Run(app.Options{
		Bank:      bank,
		Config:    cfg.Quiz.SessionConfig(),
		Selection: sel,
		Logger:    logger,
	})
}
