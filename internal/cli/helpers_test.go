package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quan0401/quizz/internal/testutil"
)

// writeTestConfig writes a config pointing at baseURL and returns its path.
func writeTestConfig(t *testing.T, baseURL string, extra ...string) string {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	path := filepath.Join(t.TempDir(), "config.yml")
	body := fmt.Sprintf("env: local\nbackend:\n  base_url: %q\n  timeout: 2s\n", baseURL) + strings.Join(extra, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// startRemote launches the fake service and a config that targets it.
func startRemote(t *testing.T) (*testutil.FakeBackend, string) {
	t.Helper()
	instance := testutil.StartBackend(t)
	return instance.Fake, writeTestConfig(t, instance.BaseURL)
}

// writeBank writes a question bank file and returns its path.
func writeBank(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	return path
}

const twoQuestionBank = `version: 1
questions:
  - question: "What is 2+2?"
    correct_answer: "4"
    incorrect_answers: ["3", "5", "22"]
  - question: "Capital of France?"
    correct_answer: "Paris"
    incorrect_answers: ["Rome", "Berlin", "Madrid"]
`
