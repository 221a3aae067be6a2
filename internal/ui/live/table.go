package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/quan0401/quizz/internal/quiz"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = styles.Selected.UnsetForeground().UnsetBackground().Reverse(true)
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// columnsForWidth sizes the question column to the terminal width.
func columnsForWidth(width int) []table.Column {
	questionWidth := 48
	if width > 0 {
		questionWidth = max(width-4-24-12-10, 16)
	}
	return []table.Column{
		{Title: "No.", Width: 4},
		{Title: "Question", Width: questionWidth},
		{Title: "Your Answer", Width: 24},
		{Title: "Result", Width: 12},
	}
}

// rowsForSession converts the session into table rows.
func rowsForSession(session *quiz.Session, _ bool) []table.Row {
	review := session.Review()
	_, submitted := session.Score()
	rows := make([]table.Row, 0, len(review))
	for _, item := range review {
		rows = append(rows, table.Row{
			formatIndex(item.Index),
			formatQuestionText(item.Prompt, 80),
			formatAnswer(item),
			formatResult(item, submitted),
		})
	}
	return rows
}
