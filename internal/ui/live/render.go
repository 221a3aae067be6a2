package live

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quan0401/quizz/internal/notice"
	"github.com/quan0401/quizz/internal/quiz"
)

// renderHeader renders the session header line.
func renderHeader(session *quiz.Session, noColor bool) string {
	line := "Quiz " + shortID(session.ID()) +
		" | Answered: " + strconv.Itoa(session.Answered()) + "/" + strconv.Itoa(session.Len())
	if score, ok := session.Score(); ok {
		line += " | Score: " + strconv.Itoa(score.Percent) + "%"
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderDetail renders the focused question with its four options.
func renderDetail(session *quiz.Session, index, cursor int, noColor bool) string {
	review := session.Review()
	if index < 0 || index >= len(review) {
		return ""
	}
	item := review[index]
	_, submitted := session.Score()

	var b strings.Builder
	b.WriteString("\n" + formatIndex(index) + ". " + item.Prompt + "\n")
	for i, option := range item.Options {
		pointer := "  "
		if i == cursor && !submitted {
			pointer = "> "
		}
		mark := "( )"
		if item.Answered && option == item.Selected {
			mark = "(*)"
		}
		line := pointer + mark + " " + optionLabel(i) + ". " + option
		switch {
		case submitted && option == item.Correct:
			line = stylize(line+"  correct", noColor, lipgloss.Color("42"))
		case submitted && item.Answered && option == item.Selected:
			line = stylize(line, noColor, lipgloss.Color("196"))
		case i == cursor && !submitted:
			line = stylize(line, noColor, lipgloss.Color("39"))
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// renderNotice renders the last notification.
func renderNotice(n notice.Notice, noColor bool) string {
	if n.IsZero() {
		return ""
	}
	color := lipgloss.Color("42")
	switch n.Level {
	case notice.LevelWarning:
		color = lipgloss.Color("220")
	case notice.LevelError:
		color = lipgloss.Color("196")
	}
	return stylize(n.Text, noColor, color)
}

// renderHelp renders the key bindings.
func renderHelp(canReload bool, noColor bool) string {
	help := "up/down question | left/right option | enter or 1-4 select | s submit"
	if canReload {
		help += " | r reload"
	}
	help += " | q quit"
	return stylize(help, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
