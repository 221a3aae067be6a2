// Package export writes quiz workbooks with excelize.
package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/quan0401/quizz/internal/quiz"
)

// Workbook and sheet names used for downloads.
const (
	EntireFilename  = "QuizData_Entire.xlsx"
	ChoicesFilename = "QuizData_UserChoices.xlsx"

	QuizSheet    = "Quiz Data"
	ChoicesSheet = "User Choices"

	// ContentType is the MIME type of an .xlsx workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// WarnNotSubmitted is shown when answers are exported before submission.
const WarnNotSubmitted = "Please submit your answers before exporting!"

// ErrNotSubmitted is returned when user choices are exported before submission.
var ErrNotSubmitted = errors.New("quiz has not been submitted")

var (
	quizHeader    = []any{"No.", "Question", "Option A", "Option B", "Option C", "Option D", "Correct Answer"}
	choicesHeader = []any{"No.", "Question", "Selected Answer", "Result"}
)

// EntireQuiz builds a workbook with every question, its displayed options, and
// the correct answer. It has no precondition.
func EntireQuiz(session *quiz.Session) (*excelize.File, error) {
	const op = "export.EntireQuiz"

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", QuizSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := writeQuizSheet(f, session); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return f, nil
}

// UserChoices builds a workbook with the submitted answers and a summary row,
// alongside the full quiz sheet.
func UserChoices(session *quiz.Session) (*excelize.File, error) {
	const op = "export.UserChoices"

	score, ok := session.Score()
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrNotSubmitted)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", ChoicesSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := writeChoicesSheet(f, session, score); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := f.NewSheet(QuizSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := writeQuizSheet(f, session); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	f.SetActiveSheet(0)
	return f, nil
}

// Write serializes the workbook to w and releases it.
func Write(w io.Writer, f *excelize.File) error {
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("export.Write: %w", err)
	}
	return nil
}

// Save writes the workbook to path and releases it.
func Save(path string, f *excelize.File) error {
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export.Save: %w", err)
	}
	return nil
}

func writeQuizSheet(f *excelize.File, session *quiz.Session) error {
	if err := writeHeader(f, QuizSheet, quizHeader); err != nil {
		return err
	}
	for i, item := range session.Items() {
		row := []any{i + 1, item.Question.Prompt}
		for _, option := range item.Options {
			row = append(row, option)
		}
		row = append(row, item.Question.CorrectAnswer)
		if err := setRow(f, QuizSheet, i+2, row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(QuizSheet, "B", "B", 60); err != nil {
		return err
	}
	return f.SetColWidth(QuizSheet, "C", "G", 30)
}

func writeChoicesSheet(f *excelize.File, session *quiz.Session, score quiz.Score) error {
	if err := writeHeader(f, ChoicesSheet, choicesHeader); err != nil {
		return err
	}
	review := session.Review()
	for i, item := range review {
		selected := item.Selected
		if !item.Answered {
			selected = "Not answered"
		}
		result := "Incorrect"
		if item.IsCorrect {
			result = "Correct"
		}
		if err := setRow(f, ChoicesSheet, i+2, []any{i + 1, item.Prompt, selected, result}); err != nil {
			return err
		}
	}
	summary := []any{"Summary", "", "", "Score: " + strconv.Itoa(score.Percent) + "%"}
	if err := setRow(f, ChoicesSheet, len(review)+2, summary); err != nil {
		return err
	}
	if err := f.SetColWidth(ChoicesSheet, "B", "C", 50); err != nil {
		return err
	}
	return f.SetColWidth(ChoicesSheet, "D", "D", 16)
}

func writeHeader(f *excelize.File, sheet string, header []any) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	return f.SetRowStyle(sheet, 1, 1, style)
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
