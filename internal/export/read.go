package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/quan0401/quizz/internal/question"
)

// ReadQuiz loads questions back from the "Quiz Data" sheet of an exported
// workbook. Options that are not the correct answer become the incorrect answers
// in displayed order.
func ReadQuiz(r io.Reader) ([]question.Question, error) {
	const op = "export.ReadQuiz"

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	rows, err := f.GetRows(QuizSheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: sheet %q has no questions", op, QuizSheet)
	}

	questions := make([]question.Question, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < len(quizHeader) {
			return nil, fmt.Errorf("%s: row %d: expected %d columns, got %d", op, i+2, len(quizHeader), len(row))
		}
		q := question.Question{
			Prompt:        strings.TrimSpace(row[1]),
			CorrectAnswer: strings.TrimSpace(row[6]),
		}
		n := 0
		for _, option := range row[2:6] {
			option = strings.TrimSpace(option)
			if option == q.CorrectAnswer {
				continue
			}
			if n == question.IncorrectCount {
				return nil, fmt.Errorf("%s: row %d: correct answer is not among the options", op, i+2)
			}
			q.IncorrectAnswers[n] = option
			n++
		}
		if err := question.Validate(q); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", op, i+2, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}
