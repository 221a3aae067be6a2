// Package files keeps the local list of documents held by the remote
// file-management service.
package files

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/quan0401/quizz/internal/lib/logger/sl"
	"github.com/quan0401/quizz/internal/notice"
	"github.com/quan0401/quizz/pkg/backend"
)

// Notice texts shown after list and delete calls.
const (
	MsgLoadFailed   = "Failed to load PDF files."
	MsgLoadError    = "An error occurred while fetching PDF files."
	MsgDeleted      = "File deleted successfully."
	MsgDeleteFailed = "Failed to delete file."
	MsgDeleteError  = "An error occurred while deleting the file."
)

// ErrEmptyID is returned when Delete is called without an identifier.
var ErrEmptyID = errors.New("file id is required")

// Manager mirrors the remote file list. It is safe for concurrent use; remote
// calls run outside the lock.
type Manager struct {
	log    *slog.Logger
	client backend.Client

	mu      sync.Mutex
	records []Record
	loaded  bool
}

// NewManager constructs an empty manager.
func NewManager(client backend.Client, log *slog.Logger) *Manager {
	return &Manager{log: log, client: client}
}

// Records returns a copy of the current list.
func (m *Manager) Records() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.records)
}

// Loaded reports whether a refresh has succeeded at least once.
func (m *Manager) Loaded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded
}

// Refresh replaces the list with the service's. On failure the previous list
// is kept and the returned notice describes the failure.
func (m *Manager) Refresh(ctx context.Context) (notice.Notice, error) {
	const op = "files.Refresh"

	log := m.log.With(slog.String("op", op))

	res, err := m.client.ListFiles(ctx)
	if err != nil {
		var statusErr *backend.StatusError
		if errors.As(err, &statusErr) {
			log.Warn("service rejected file listing", sl.Err(err))
			return notice.Error(MsgLoadFailed), fmt.Errorf("%s: %w", op, err)
		}
		log.Error("failed to list files", sl.Err(err))
		return notice.Error(MsgLoadError), fmt.Errorf("%s: %w", op, err)
	}

	records := make([]Record, 0, len(res.Files))
	for _, file := range res.Files {
		records = append(records, FromFile(file))
	}

	m.mu.Lock()
	m.records = records
	m.loaded = true
	m.mu.Unlock()

	log.Debug("files loaded", slog.Int("count", len(records)))
	return notice.Notice{}, nil
}

// Delete removes a document on the service and, only once the service confirms,
// drops exactly that identifier from the local list.
func (m *Manager) Delete(ctx context.Context, id string) (notice.Notice, error) {
	const op = "files.Delete"

	if id == "" {
		return notice.Error(MsgDeleteFailed), fmt.Errorf("%s: %w", op, ErrEmptyID)
	}
	log := m.log.With(slog.String("op", op), slog.String("id", id))

	if _, err := m.client.DeleteFile(ctx, id); err != nil {
		var statusErr *backend.StatusError
		if errors.As(err, &statusErr) {
			log.Warn("service rejected deletion", sl.Err(err))
			return notice.Error(MsgDeleteFailed), fmt.Errorf("%s: %w", op, err)
		}
		log.Error("failed to delete file", sl.Err(err))
		return notice.Error(MsgDeleteError), fmt.Errorf("%s: %w", op, err)
	}

	m.mu.Lock()
	m.records = slices.DeleteFunc(m.records, func(r Record) bool { return r.ID == id })
	m.mu.Unlock()

	log.Info("file deleted")
	return notice.Success(MsgDeleted), nil
}
