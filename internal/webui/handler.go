package webui

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/xuri/excelize/v2"

	"github.com/quan0401/quizz/internal/export"
	"github.com/quan0401/quizz/internal/lib/logger/sl"
	"github.com/quan0401/quizz/internal/notice"
	"github.com/quan0401/quizz/internal/provider"
	"github.com/quan0401/quizz/internal/quiz"
)

// NewHandler builds the router for the HTML screens, downloads, and JSON API.
func NewHandler(app *App) (http.Handler, error) {
	if app == nil {
		return nil, errors.New("webui: app is required")
	}
	if app.provider == nil || app.files == nil {
		return nil, errors.New("webui: provider and file manager are required")
	}
	assets, err := staticAssets()
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter().UseEncodedPath()
	router.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(assets))))

	router.HandleFunc("/", app.handleHome).Methods(http.MethodGet)
	router.HandleFunc("/generate", app.handleGenerate).Methods(http.MethodPost)
	router.HandleFunc("/quiz", app.handleQuiz).Methods(http.MethodGet)
	router.HandleFunc("/quiz/submit", app.handleQuizSubmit).Methods(http.MethodPost)
	router.HandleFunc("/quiz/reload", app.handleQuizReload).Methods(http.MethodPost)
	router.HandleFunc("/quiz/export/entire", app.handleExportEntire).Methods(http.MethodGet)
	router.HandleFunc("/quiz/export/choices", app.handleExportChoices).Methods(http.MethodGet)
	router.HandleFunc("/files", app.handleFiles).Methods(http.MethodGet)
	router.HandleFunc("/files/{id}/delete", app.handleFileDelete).Methods(http.MethodPost)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(handlers.CORS(
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedOrigins([]string{"*"}),
	))
	api.HandleFunc("/quiz", app.handleAPIQuiz).Methods(http.MethodGet)
	api.HandleFunc("/quiz/select", app.handleAPISelect).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/quiz/submit", app.handleAPISubmit).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/generate", app.handleAPIGenerate).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/files", app.handleAPIFiles).Methods(http.MethodGet)
	api.HandleFunc("/files/{id}", app.handleAPIFileDelete).Methods(http.MethodDelete, http.MethodOptions)

	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(slog.NewLogLogger(app.log.Handler(), slog.LevelError)),
	)
	return recovery(router), nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	templ.Handler(component).ServeHTTP(w, r)
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func (a *App) handleHome(w http.ResponseWriter, r *http.Request) {
	notices := a.popNotices()
	a.mu.Lock()
	view := newGenerateView(a.topic, a.count, a.generated)
	a.mu.Unlock()
	render(w, r, page("generate", pageData{Title: "Generate Questions", Active: "home", Notices: notices, Generate: view}))
}

func (a *App) handleGenerate(w http.ResponseWriter, r *http.Request) {
	const op = "webui.handleGenerate"

	if err := r.ParseForm(); err != nil {
		http.Error(w, fmt.Sprintf("%s: %v", op, err), http.StatusBadRequest)
		return
	}
	topic := r.PostForm.Get("knowledge_scope")
	count, err := strconv.Atoi(strings.TrimSpace(r.PostForm.Get("num_questions")))
	if err != nil {
		count = 0
	}

	a.mu.Lock()
	a.topic = topic
	if count > 0 {
		a.count = count
	}
	a.mu.Unlock()

	res, err := a.provider.Generate(r.Context(), topic, count)
	if err != nil {
		a.pushNotice(notice.Warning(provider.InputMessage(err)))
		redirect(w, r, "/")
		return
	}

	a.mu.Lock()
	a.generated = res
	a.mu.Unlock()
	a.pushNotice(res.Notice)
	redirect(w, r, "/")
}

func (a *App) handleQuiz(w http.ResponseWriter, r *http.Request) {
	notices := a.popNotices()
	a.mu.Lock()
	view := newQuizView(a.session)
	a.mu.Unlock()
	render(w, r, page("quiz", pageData{Title: "Quiz", Active: "quiz", Notices: notices, Quiz: view}))
}

// handleQuizSubmit applies the selections carried by the form, then submits.
// Selections are kept when submission is rejected.
func (a *App) handleQuizSubmit(w http.ResponseWriter, r *http.Request) {
	const op = "webui.handleQuizSubmit"

	if err := r.ParseForm(); err != nil {
		http.Error(w, fmt.Sprintf("%s: %v", op, err), http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	n := a.applyAndSubmit(r.PostForm.Get)
	a.mu.Unlock()

	a.pushNotice(n)
	redirect(w, r, "/quiz")
}

// applyAndSubmit must be called with a.mu held.
func (a *App) applyAndSubmit(field func(string) string) notice.Notice {
	if a.session.Submitted() {
		return notice.Warning(quiz.WarnSubmitted)
	}
	for i := range a.session.Len() {
		option := field(answerField(i))
		if option == "" {
			continue
		}
		if err := a.session.Select(i, option); err != nil {
			a.log.Warn("ignoring selection", slog.Int("index", i), sl.Err(err))
		}
	}
	score, err := a.session.Submit()
	switch {
	case errors.Is(err, quiz.ErrIncomplete):
		return notice.Warning(quiz.WarnIncomplete)
	case err != nil:
		return notice.Error(err.Error())
	}
	a.log.Info("quiz submitted", slog.String("session", a.session.ID()), slog.Int("percent", score.Percent))
	return notice.Success(fmt.Sprintf("Your score: %d%%", score.Percent))
}

func (a *App) handleQuizReload(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	a.reload(r.PostForm.Get("source") == "generated")
	redirect(w, r, "/quiz")
}

func (a *App) handleExportEntire(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	f, err := export.EntireQuiz(a.session)
	a.mu.Unlock()
	if err != nil {
		a.log.Error("failed to build quiz workbook", sl.Err(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	a.download(w, export.EntireFilename, f)
}

func (a *App) handleExportChoices(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	f, err := export.UserChoices(a.session)
	a.mu.Unlock()
	if errors.Is(err, export.ErrNotSubmitted) {
		a.pushNotice(notice.Warning(export.WarnNotSubmitted))
		redirect(w, r, "/quiz")
		return
	}
	if err != nil {
		a.log.Error("failed to build choices workbook", sl.Err(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	a.download(w, export.ChoicesFilename, f)
}

func (a *App) download(w http.ResponseWriter, filename string, f *excelize.File) {
	var buf bytes.Buffer
	if err := export.Write(&buf, f); err != nil {
		a.log.Error("failed to write workbook", sl.Err(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = w.Write(buf.Bytes())
}

func (a *App) handleFiles(w http.ResponseWriter, r *http.Request) {
	if n, err := a.files.Refresh(r.Context()); err != nil {
		a.pushNotice(n)
	}
	notices := a.popNotices()
	view := newFilesView(a.files.Records(), a.location)
	render(w, r, page("files", pageData{Title: "PDF Management", Active: "files", Notices: notices, Files: view}))
}

func (a *App) handleFileDelete(w http.ResponseWriter, r *http.Request) {
	id, err := fileID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	n, _ := a.files.Delete(r.Context(), id)
	a.pushNotice(n)
	redirect(w, r, "/files")
}

// fileID returns the decoded {id} route variable; the router matches escaped
// paths so identifiers may contain slashes.
func fileID(r *http.Request) (string, error) {
	id, err := url.PathUnescape(mux.Vars(r)["id"])
	if err != nil {
		return "", fmt.Errorf("webui: invalid file id: %w", err)
	}
	return id, nil
}
