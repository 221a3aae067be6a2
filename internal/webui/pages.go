package webui

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/quan0401/quizz/internal/files"
	"github.com/quan0401/quizz/internal/notice"
	"github.com/quan0401/quizz/internal/provider"
	"github.com/quan0401/quizz/internal/quiz"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

var pageTemplates = mustParsePages("generate", "quiz", "files")

func mustParsePages(names ...string) map[string]*template.Template {
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		out[name] = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html"))
	}
	return out
}

// staticAssets returns the file system rooted at the embedded static directory.
func staticAssets() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("webui: open static assets: %w", err)
	}
	return sub, nil
}

type pageData struct {
	Title    string
	Active   string
	Notices  []notice.Notice
	Generate *generateView
	Quiz     *quizView
	Files    *filesView
}

type generateView struct {
	Topic    string
	Count    int
	Fallback bool
	Rows     []generatedRow
}

type generatedRow struct {
	Prompt    string
	Correct   string
	Incorrect string
}

type quizView struct {
	ID        string
	Submitted bool
	Score     quiz.Score
	Answered  int
	Total     int
	Rows      []quizRow
}

type quizRow struct {
	Number  int
	Field   string
	Prompt  string
	Locked  bool
	Class   string
	Result  string
	Options []quizOption
}

type quizOption struct {
	Text    string
	Checked bool
	Correct bool
}

type filesView struct {
	Rows []fileRow
}

type fileRow struct {
	ID string
	// DeletePath is the escaped delete action for ID.
	DeletePath string
	Filename string
	Uploaded string
}

// page renders a named template inside the layout as a templ component.
func page(name string, data pageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		tmpl, ok := pageTemplates[name]
		if !ok {
			return fmt.Errorf("webui: unknown page %q", name)
		}
		return tmpl.ExecuteTemplate(w, "layout", data)
	})
}

func newGenerateView(topic string, count int, result provider.Result) *generateView {
	view := &generateView{Topic: topic, Count: count, Fallback: result.Fallback}
	for _, q := range result.Questions {
		view.Rows = append(view.Rows, generatedRow{
			Prompt:    q.Prompt,
			Correct:   q.CorrectAnswer,
			Incorrect: strings.Join(q.IncorrectAnswers[:], ", "),
		})
	}
	return view
}

// answerField is the form field carrying the selection for question i.
func answerField(i int) string {
	return fmt.Sprintf("q%d", i)
}

func newQuizView(session *quiz.Session) *quizView {
	score, submitted := session.Score()
	view := &quizView{
		ID:        session.ID(),
		Submitted: submitted,
		Score:     score,
		Answered:  session.Answered(),
		Total:     session.Len(),
	}
	for _, item := range session.Review() {
		row := quizRow{
			Number: item.Index + 1,
			Field:  answerField(item.Index),
			Prompt: item.Prompt,
			Locked: submitted,
		}
		if submitted {
			row.Result, row.Class = "Incorrect", "incorrect"
			if item.IsCorrect {
				row.Result, row.Class = "Correct", "correct"
			}
			if !item.Answered {
				row.Result = "Not answered"
			}
		}
		for _, option := range item.Options {
			row.Options = append(row.Options, quizOption{
				Text:    option,
				Checked: item.Answered && option == item.Selected,
				Correct: submitted && option == item.Correct,
			})
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

func newFilesView(records []files.Record, loc *time.Location) *filesView {
	view := &filesView{}
	for _, r := range records {
		view.Rows = append(view.Rows, fileRow{
			ID:         r.ID,
			DeletePath: "/files/" + url.PathEscape(r.ID) + "/delete",
			Filename:   r.Filename,
			Uploaded:   r.Uploaded(loc),
		})
	}
	return view
}
