package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigDirName is the per-project directory searched for a config file.
const ConfigDirName = ".quizz"

// configNames are tried in order inside ConfigDirName.
var configNames = []string{"config.yml", "config.yaml"}

// ErrConfigNotFound reports that no config file exists in the directory tree.
var ErrConfigNotFound = errors.New("config not found")

// FindConfigPath walks from startDir (or the working directory) towards the
// filesystem root and returns the first .quizz/config.yml or config.yaml found.
func FindConfigPath(startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("config.FindConfigPath: %w", err)
		}
		startDir = wd
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("config.FindConfigPath: %w", err)
	}

	for start := dir; ; dir = filepath.Dir(dir) {
		for _, name := range configNames {
			candidate := filepath.Join(dir, ConfigDirName, name)
			info, err := os.Stat(candidate)
			switch {
			case err == nil && !info.IsDir():
				return candidate, nil
			case err == nil:
				return "", fmt.Errorf("config path %q is a directory", candidate)
			case !errors.Is(err, os.ErrNotExist):
				return "", fmt.Errorf("stat config path %q: %w", candidate, err)
			}
		}
		if filepath.Dir(dir) == dir {
			return "", fmt.Errorf("%w: no %s/config.yml in %s or its parents", ErrConfigNotFound, ConfigDirName, start)
		}
	}
}
