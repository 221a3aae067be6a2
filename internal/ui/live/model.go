// Package live renders an interactive terminal quiz with Bubble Tea.
package live

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quan0401/quizz/internal/notice"
	"github.com/quan0401/quizz/internal/question"
	"github.com/quan0401/quizz/internal/quiz"
)

// Model is the Bubble Tea model for one quiz session.
type Model struct {
	session *quiz.Session
	reload  func() *quiz.Session
	table   table.Model
	option  int
	notice  notice.Notice
	noColor bool
	quit    bool
}

// Options configures the live quiz.
type Options struct {
	NoColor bool
	// Reload builds a fresh session; nil disables the reload key.
	Reload func() *quiz.Session
}

// NewModel constructs a model over session.
func NewModel(session *quiz.Session, opts Options) Model {
	t := table.New(
		table.WithColumns(columnsForWidth(0)),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(min(max(session.Len(), 1), 10)),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	m := Model{
		session: session,
		reload:  opts.Reload,
		table:   t,
		noColor: opts.NoColor,
	}
	m.table.SetRows(rowsForSession(session, opts.NoColor))
	return m
}

// Session returns the session as last seen by the model.
func (m Model) Session() *quiz.Session {
	return m.session
}

// Notice returns the notification currently shown.
func (m Model) Notice() notice.Notice {
	return m.notice
}

// Current returns the focused question index and highlighted option.
func (m Model) Current() (int, int) {
	return m.table.Cursor(), m.option
}

// Init has no startup command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetColumns(columnsForWidth(typed.Width))
		m.table.SetHeight(min(max(typed.Height-12, 1), max(m.session.Len(), 1)))
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c", "q", "esc":
		m.quit = true
		return m, tea.Quit
	case "up", "k":
		m.moveQuestion(-1)
	case "down", "j":
		m.moveQuestion(1)
	case "left", "h":
		m.option = (m.option + question.OptionCount - 1) % question.OptionCount
	case "right", "l", "tab":
		m.option = (m.option + 1) % question.OptionCount
	case "enter", " ", "space":
		m.selectOption(m.option)
	case "1", "2", "3", "4":
		m.option = int(key[0] - '1')
		m.selectOption(m.option)
	case "s":
		m.submit()
	case "r":
		if m.reload != nil {
			m.session = m.reload()
			m.option = 0
			m.table.SetCursor(0)
			m.notice = notice.Success("Quiz reloaded.")
		}
	}
	m.table.SetRows(rowsForSession(m.session, m.noColor))
	return m, nil
}

func (m *Model) moveQuestion(delta int) {
	if m.session.Len() == 0 {
		return
	}
	next := min(max(m.table.Cursor()+delta, 0), m.session.Len()-1)
	m.table.SetCursor(next)
	m.option = 0
}

func (m *Model) selectOption(option int) {
	if m.session.Len() == 0 {
		return
	}
	index := m.table.Cursor()
	items := m.session.Items()
	err := m.session.Select(index, items[index].Options[option])
	switch {
	case errors.Is(err, quiz.ErrSubmitted):
		m.notice = notice.Warning(quiz.WarnSubmitted)
	case err != nil:
		m.notice = notice.Error(err.Error())
	default:
		m.notice = notice.Notice{}
		if index < m.session.Len()-1 {
			m.moveQuestion(1)
		}
	}
}

func (m *Model) submit() {
	score, err := m.session.Submit()
	switch {
	case errors.Is(err, quiz.ErrIncomplete):
		m.notice = notice.Warning(quiz.WarnIncomplete)
	case errors.Is(err, quiz.ErrSubmitted):
		m.notice = notice.Warning(quiz.WarnSubmitted)
	case err != nil:
		m.notice = notice.Error(err.Error())
	default:
		m.notice = notice.Success(fmt.Sprintf("Your score: %d%%", score.Percent))
	}
}

// View renders the quiz.
func (m Model) View() string {
	if m.quit {
		return ""
	}
	index, option := m.Current()
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.session, m.noColor),
		m.table.View(),
		renderDetail(m.session, index, option, m.noColor),
		renderNotice(m.notice, m.noColor),
		renderHelp(m.reload != nil, m.noColor),
	)
}

// Run drives the interactive quiz until the user quits and returns the final
// session.
func Run(session *quiz.Session, in io.Reader, out io.Writer, opts Options) (*quiz.Session, error) {
	program := tea.NewProgram(NewModel(session, opts), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return session, fmt.Errorf("live.Run: %w", err)
	}
	model, ok := final.(Model)
	if !ok {
		return session, nil
	}
	return model.Session(), nil
}
