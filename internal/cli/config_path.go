package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/quan0401/quizz/internal/config"
	"github.com/quan0401/quizz/internal/export"
	"github.com/quan0401/quizz/internal/lib/logger"
	"github.com/quan0401/quizz/internal/question"
	"github.com/quan0401/quizz/pkg/backend"
	"github.com/quan0401/quizz/pkg/backend/httpclient"
)

// stdin is a test seam for interactive commands.
var stdin io.Reader = os.Stdin

// parseFlags parses args and reports the exit code to return when parsing
// did not succeed.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

// resolveConfigPath normalizes an explicit config path; empty means discovery.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return "", nil
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadConfig resolves and loads the config for a command.
func loadConfig(configPath string) (*config.Config, error) {
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		return nil, err
	}
	return config.Load(resolved)
}

// commandLogger logs everything to stderr when verbose and only warnings and
// errors otherwise.
func commandLogger(cfg *config.Config, verbose bool, stderr io.Writer) *slog.Logger {
	if !verbose {
		return logger.Quiet(stderr)
	}
	return logger.New(cfg.Env, stderr)
}

// newBackendClient is a test seam for the remote service client.
var newBackendClient = func(cfg *config.Config) backend.Client {
	return httpclient.NewWithTimeout(cfg.Backend.BaseURL, cfg.Backend.Timeout)
}

// loadQuestions reads a YAML/JSON bank or an exported workbook. An empty path
// returns nil so callers fall back to the built-in set.
func loadQuestions(path string) ([]question.Question, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open workbook: %w", err)
		}
		defer file.Close()
		return export.ReadQuiz(file)
	}
	bank, err := question.LoadBank(path)
	if err != nil {
		return nil, err
	}
	return bank.Questions, nil
}

// quizQuestions picks the bank from the flag, then config, then the built-in set.
func quizQuestions(flagPath string, cfg *config.Config) ([]question.Question, error) {
	path := flagPath
	if path == "" {
		path = cfg.Quiz.BankPath
	}
	questions, err := loadQuestions(path)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return question.QuizDefaults(), nil
	}
	return questions, nil
}
