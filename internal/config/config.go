package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfigPath names the environment variable that points at the config file.
const EnvConfigPath = "CONFIG_PATH"

// Config is the application configuration.
type Config struct {
	Env        string     `yaml:"env" env:"QUIZZ_ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Backend    Backend    `yaml:"backend"`
	Quiz       Quiz       `yaml:"quiz"`
}

// HTTPServer configures the web UI listener.
type HTTPServer struct {
	Address      string        `yaml:"address" env:"QUIZZ_HTTP_ADDRESS" env-default:"127.0.0.1:8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"90s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Backend configures the remote question and file service.
type Backend struct {
	BaseURL string        `yaml:"base_url" env:"QUIZZ_BACKEND_URL" env-default:"http://127.0.0.1:8000"`
	Timeout time.Duration `yaml:"timeout" env:"QUIZZ_BACKEND_TIMEOUT" env-default:"60s"`
}

// Quiz configures the quiz and generation screens.
type Quiz struct {
	BankPath     string `yaml:"bank_path" env:"QUIZZ_BANK_PATH"`
	DefaultCount int    `yaml:"default_count" env-default:"5"`
}

// Load reads the config from path, CONFIG_PATH, or a discovered .quizz/config.yml,
// falling back to defaults and environment variables when no file exists.
func Load(path string) (*Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if resolved == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env config: %w", err)
		}
	} else {
		if _, err := os.Stat(resolved); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", resolved)
		}
		if err := cleanenv.ReadConfig(resolved, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", resolved, err)
		}
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolvePath(path string) (string, error) {
	if path = strings.TrimSpace(path); path != "" {
		return path, nil
	}
	if env := strings.TrimSpace(os.Getenv(EnvConfigPath)); env != "" {
		return env, nil
	}
	found, err := FindConfigPath("")
	if errors.Is(err, ErrConfigNotFound) {
		return "", nil
	}
	return found, err
}

// Validate checks settings that defaults cannot repair.
func Validate(cfg *Config) error {
	var problems []string
	switch cfg.Env {
	case "local", "dev", "prod":
	default:
		problems = append(problems, fmt.Sprintf("env: unsupported value %q (expected local|dev|prod)", cfg.Env))
	}
	if strings.TrimSpace(cfg.HTTPServer.Address) == "" {
		problems = append(problems, "http_server.address: is required")
	}
	if !strings.HasPrefix(cfg.Backend.BaseURL, "http://") && !strings.HasPrefix(cfg.Backend.BaseURL, "https://") {
		problems = append(problems, fmt.Sprintf("backend.base_url: must be an http(s) URL, got %q", cfg.Backend.BaseURL))
	}
	if cfg.Backend.Timeout < 0 {
		problems = append(problems, "backend.timeout: must not be negative")
	}
	if wt := cfg.HTTPServer.WriteTimeout; wt > 0 && wt <= cfg.Backend.Timeout {
		problems = append(problems, fmt.Sprintf("http_server.write_timeout: %s must exceed backend.timeout %s", wt, cfg.Backend.Timeout))
	}
	if cfg.HTTPServer.WriteTimeout > 0 && cfg.Backend.Timeout == 0 {
		problems = append(problems, "http_server.write_timeout: must be 0 when backend.timeout is unbounded")
	}
	if cfg.Quiz.DefaultCount < 1 {
		problems = append(problems, "quiz.default_count: must be at least 1")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
