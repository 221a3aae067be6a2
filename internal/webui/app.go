// Package webui serves the quiz, question generation, and file management
// screens as server-rendered HTML plus a small JSON API.
package webui

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/quan0401/quizz/internal/files"
	"github.com/quan0401/quizz/internal/lib/logger"
	"github.com/quan0401/quizz/internal/notice"
	"github.com/quan0401/quizz/internal/provider"
	"github.com/quan0401/quizz/internal/question"
	"github.com/quan0401/quizz/internal/quiz"
)

// Config wires the services behind the web UI.
type Config struct {
	Log      *slog.Logger
	Provider *provider.Provider
	Files    *files.Manager
	// Questions seeds the quiz screen; empty means question.QuizDefaults.
	Questions    []question.Question
	QuizOptions  []quiz.Option
	DefaultCount int
	Location     *time.Location
}

// App holds the single application state shared by every screen.
type App struct {
	log          *slog.Logger
	provider     *provider.Provider
	files        *files.Manager
	questions    []question.Question
	quizOptions  []quiz.Option
	defaultCount int
	location     *time.Location

	mu        sync.Mutex
	session   *quiz.Session
	generated provider.Result
	topic     string
	count     int
	flash     []notice.Notice
}

// NewApp builds the application state and loads the first quiz.
func NewApp(cfg Config) *App {
	questions := cfg.Questions
	if len(questions) == 0 {
		questions = question.QuizDefaults()
	}
	count := cfg.DefaultCount
	if count < 1 {
		count = 5
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	log := cfg.Log
	if log == nil {
		log = logger.Discard()
	}
	a := &App{
		log:          log,
		provider:     cfg.Provider,
		files:        cfg.Files,
		questions:    slices.Clone(questions),
		quizOptions:  cfg.QuizOptions,
		defaultCount: count,
		location:     loc,
		count:        count,
	}
	a.session = quiz.New(a.questions, a.quizOptions...)
	return a
}

// SessionID returns the load ID of the current quiz.
func (a *App) SessionID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.ID()
}

// Items returns the current quiz questions with their displayed options.
func (a *App) Items() []quiz.Item {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.Items()
}

func (a *App) pushNotice(n notice.Notice) {
	if n.IsZero() {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.flash = append(a.flash, n)
}

// popNotices returns and clears the pending notices.
func (a *App) popNotices() []notice.Notice {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := a.flash
	a.flash = nil
	return out
}

// reload replaces the session. When fromGenerated is set and questions were
// generated, the quiz uses them instead of the configured set.
func (a *App) reload(fromGenerated bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	questions := a.questions
	if fromGenerated && len(a.generated.Questions) > 0 {
		questions = a.generated.Questions
	}
	a.session = quiz.New(questions, a.quizOptions...)
	a.log.Debug("quiz reloaded", slog.String("session", a.session.ID()), slog.Int("questions", len(questions)))
}
