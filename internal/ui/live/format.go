package live

import (
	"strconv"
	"strings"

	"github.com/quan0401/quizz/internal/quiz"
)

// formatIndex formats a question index.
func formatIndex(index int) string {
	return strconv.Itoa(index + 1)
}

// formatQuestionText collapses whitespace and truncates to limit runes.
func formatQuestionText(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	runes := []rune(normalized)
	if len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-3]) + "..."
}

func formatAnswer(item quiz.ReviewItem) string {
	if !item.Answered {
		return "-"
	}
	return formatQuestionText(item.Selected, 40)
}

func formatResult(item quiz.ReviewItem, submitted bool) string {
	switch {
	case !submitted:
		return ""
	case !item.Answered:
		return "Not answered"
	case item.IsCorrect:
		return "Correct"
	default:
		return "Incorrect"
	}
}

// optionLabel returns "A".."D" for an option position.
func optionLabel(i int) string {
	return string(rune('A' + i))
}
