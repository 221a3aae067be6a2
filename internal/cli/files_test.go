package cli

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/quan0401/quizz/internal/files"
	"github.com/quan0401/quizz/pkg/backend"
)

// TestFilesListsDocuments verifies the file table output.
func TestFilesListsDocuments(t *testing.T) {
	fake, configPath := startRemote(t)
	fake.SetFiles(
		backend.File{ID: "a1", Filename: "alpha.pdf", UploadDate: "2024-05-01T10:00:00Z"},
		backend.File{ID: "b2", Filename: "beta.pdf", UploadDate: "2024-05-02T10:00:00Z"},
	)

	var out, errOut bytes.Buffer
	if code := Run([]string{"files", "--config", configPath}, &out, &errOut); code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	for _, want := range []string{"FILE NAME", "alpha.pdf", "beta.pdf", "a1"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output, got %q", want, out.String())
		}
	}
}

// TestFilesDelete verifies deletion removes only that document.
func TestFilesDelete(t *testing.T) {
	fake, configPath := startRemote(t)
	fake.SetFiles(
		backend.File{ID: "a1", Filename: "alpha.pdf"},
		backend.File{ID: "b2", Filename: "beta.pdf"},
	)

	var out, errOut bytes.Buffer
	if code := Run([]string{"files", "--config", configPath, "--delete", "a1"}, &out, &errOut); code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), files.MsgDeleted) {
		t.Fatalf("expected deleted notice, got %q", out.String())
	}
	if strings.Contains(out.String(), "alpha.pdf") || !strings.Contains(out.String(), "beta.pdf") {
		t.Fatalf("unexpected listing %q", out.String())
	}
}

// TestFilesLoadFailure verifies the load failure notice and exit code.
func TestFilesLoadFailure(t *testing.T) {
	fake, configPath := startRemote(t)
	fake.SetListStatus("error", http.StatusInternalServerError)

	var out, errOut bytes.Buffer
	if code := Run([]string{"files", "--config", configPath}, &out, &errOut); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), files.MsgLoadFailed) {
		t.Fatalf("expected load failure notice, got %q", errOut.String())
	}
}

// TestFilesDeleteFailure verifies a rejected delete keeps the document.
func TestFilesDeleteFailure(t *testing.T) {
	fake, configPath := startRemote(t)
	fake.SetFiles(backend.File{ID: "a1", Filename: "alpha.pdf"})
	fake.SetDeleteStatus("error", http.StatusOK)

	var out, errOut bytes.Buffer
	if code := Run([]string{"files", "--config", configPath, "--delete", "a1"}, &out, &errOut); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), files.MsgDeleteFailed) {
		t.Fatalf("expected delete failure notice, got %q", errOut.String())
	}
	if len(fake.Files()) != 1 {
		t.Fatalf("expected file to remain")
	}
}
