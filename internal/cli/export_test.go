package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/quan0401/quizz/internal/export"
)

// TestExportWritesEntireQuiz verifies the full-quiz workbook and its re-import.
func TestExportWritesEntireQuiz(t *testing.T) {
	configPath := writeTestConfig(t, "http://127.0.0.1:8000")
	bankPath := writeBank(t, twoQuestionBank)
	outPath := filepath.Join(t.TempDir(), export.EntireFilename)

	var out, errOut bytes.Buffer
	code := Run([]string{"export", "--config", configPath, "--bank", bankPath, "--out", outPath}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}

	book, err := excelize.OpenFile(outPath)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer book.Close()
	rows, err := book.GetRows(export.QuizSheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(rows))
	}

	out.Reset()
	errOut.Reset()
	code = Run([]string{"validate", "--config", configPath, "--bank", outPath}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exported workbook to validate, got %d: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "Question bank OK (2 questions)") {
		t.Fatalf("unexpected validate output %q", out.String())
	}
}

// TestExportRequiresOut verifies the output path is mandatory.
func TestExportRequiresOut(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Run([]string{"export"}, &out, &errOut); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut.String(), "Missing --out") {
		t.Fatalf("expected missing flag message, got %q", errOut.String())
	}
}
