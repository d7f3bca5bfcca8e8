// Package config assembles the game settings from defaults, an optional
// YAML file, an optional .env file and TRIVIA_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/trivia/internal/session"
)

// Environment variables read by FromEnv.
const (
	EnvConfigFile      = "TRIVIA_CONFIG"
	EnvMinQuestions    = "TRIVIA_MIN_QUESTIONS"
	EnvQuestionSeconds = "TRIVIA_QUESTION_SECONDS"
	EnvFeedbackWindow  = "TRIVIA_FEEDBACK_WINDOW"
	EnvLogFile         = "TRIVIA_LOG"
)

// Config holds every setting the application reads.
type Config struct {
	Quiz QuizConfig `yaml:"quiz"`

	// LogFile is where log output goes. Empty disables logging, since the
	// terminal belongs to the TUI.
	LogFile string `yaml:"log_file"`
}

// QuizConfig holds the game parameters.
type QuizConfig struct {
	// MinQuestions is the playlist length the builder pads up to.
	MinQuestions int `yaml:"min_questions"`

	// QuestionSeconds is the per-question countdown.
	QuestionSeconds int `yaml:"question_seconds"`

	// FeedbackWindow is how long feedback stays up, as a Go duration
	// string ("2s", "1500ms").
	FeedbackWindow string `yaml:"feedback_window"`
}

// DefaultConfig returns a Config with the standard game rules.
func DefaultConfig() Config {
	return Config{
		Quiz: QuizConfig{
			MinQuestions:    session.DefaultMinQuestions,
			QuestionSeconds: session.DefaultQuestionSeconds,
			FeedbackWindow:  session.DefaultFeedbackWindow.String(),
		},
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default values. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDotEnv loads .env files into the process environment. Variables
// that are already set win. With no arguments it looks for ./.env. A
// missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
	}
	if err := godotenv.Load(files...); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// FromEnv overlays TRIVIA_* environment variables on cfg.
func FromEnv(cfg Config) (Config, error) {
	if v := os.Getenv(EnvMinQuestions); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvMinQuestions, err)
		}
		cfg.Quiz.MinQuestions = n
	}
	if v := os.Getenv(EnvQuestionSeconds); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvQuestionSeconds, err)
		}
		cfg.Quiz.QuestionSeconds = n
	}
	if v := os.Getenv(EnvFeedbackWindow); v != "" {
		cfg.Quiz.FeedbackWindow = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	return cfg, nil
}

// Resolve builds the effective configuration: defaults, then the YAML file
// at path (or $TRIVIA_CONFIG when path is empty), then the environment.
// The result is validated.
func Resolve(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	cfg, err = FromEnv(cfg)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the game parameters are usable.
func (c Config) Validate() error {
	if c.Quiz.MinQuestions < 1 {
		return fmt.Errorf("min_questions must be at least 1, got %d", c.Quiz.MinQuestions)
	}
	if c.Quiz.QuestionSeconds < 1 {
		return fmt.Errorf("question_seconds must be at least 1, got %d", c.Quiz.QuestionSeconds)
	}
	d, err := time.ParseDuration(c.Quiz.FeedbackWindow)
	if err != nil {
		return fmt.Errorf("feedback_window: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("feedback_window must be positive, got %s", d)
	}
	return nil
}

// SessionConfig converts the quiz settings for the state machine. An
// unparsable feedback window falls back to the default.
func (q QuizConfig) SessionConfig() session.Config {
	return session.Config{
		MinQuestions:    q.MinQuestions,
		QuestionSeconds: q.QuestionSeconds,
		FeedbackWindow:  Duration(q.FeedbackWindow, session.DefaultFeedbackWindow),
	}
}

// Duration parses a duration string or returns the fallback if it is
// empty or invalid.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
