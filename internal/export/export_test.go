package export

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/quan0401/quizz/internal/question"
	"github.com/quan0401/quizz/internal/quiz"
)

func sampleSession(t *testing.T) *quiz.Session {
	t.Helper()
	return quiz.New([]question.Question{
		{Prompt: "2+2?", CorrectAnswer: "4", IncorrectAnswers: [3]string{"3", "5", "22"}},
		{Prompt: "Capital of France?", CorrectAnswer: "Paris", IncorrectAnswers: [3]string{"Rome", "Berlin", "Madrid"}},
	}, quiz.WithRand(rand.New(rand.NewPCG(1, 2))))
}

func readRows(t *testing.T, buf *bytes.Buffer, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestEntireQuizListsOptionsAndCorrectAnswer(t *testing.T) {
	session := sampleSession(t)

	f, err := EntireQuiz(session)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, f))

	rows := readRows(t, &buf, QuizSheet)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"No.", "Question", "Option A", "Option B", "Option C", "Option D", "Correct Answer"}, rows[0])

	items := session.Items()
	for i, item := range items {
		row := rows[i+1]
		assert.Equal(t, item.Question.Prompt, row[1])
		assert.Equal(t, item.Options[:], row[2:6])
		assert.Equal(t, item.Question.CorrectAnswer, row[6])
	}
}

func TestEntireQuizDoesNotRequireSubmission(t *testing.T) {
	session := sampleSession(t)
	f, err := EntireQuiz(session)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestUserChoicesRequiresSubmission(t *testing.T) {
	session := sampleSession(t)
	_, err := UserChoices(session)
	assert.True(t, errors.Is(err, ErrNotSubmitted))
}

func TestUserChoicesWritesResultsAndSummary(t *testing.T) {
	session := sampleSession(t)
	items := session.Items()
	require.NoError(t, session.Select(0, "4"))
	wrong := items[1].Options[0]
	if wrong == "Paris" {
		wrong = items[1].Options[1]
	}
	require.NoError(t, session.Select(1, wrong))
	_, err := session.Submit()
	require.NoError(t, err)

	f, err := UserChoices(session)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, f))

	rows := readRows(t, &buf, ChoicesSheet)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"No.", "Question", "Selected Answer", "Result"}, rows[0])
	assert.Equal(t, []string{"1", "2+2?", "4", "Correct"}, rows[1])
	assert.Equal(t, []string{"2", "Capital of France?", wrong, "Incorrect"}, rows[2])
	assert.Equal(t, "Summary", rows[3][0])
	assert.Equal(t, "Score: 50%", rows[3][3])

	quizRows := readRows(t, &buf, QuizSheet)
	assert.Len(t, quizRows, 3)
}

func TestReadQuizRoundTripsExport(t *testing.T) {
	session := sampleSession(t)
	f, err := EntireQuiz(session)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, f))

	questions, err := ReadQuiz(&buf)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	for i, item := range session.Items() {
		assert.Equal(t, item.Question.Prompt, questions[i].Prompt)
		assert.Equal(t, item.Question.CorrectAnswer, questions[i].CorrectAnswer)
		assert.ElementsMatch(t, item.Question.IncorrectAnswers[:], questions[i].IncorrectAnswers[:])
	}
}

func TestSaveWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), EntireFilename)
	f, err := EntireQuiz(sampleSession(t))
	require.NoError(t, err)
	require.NoError(t, Save(path, f))

	opened, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer opened.Close()
	index, err := opened.GetSheetIndex(QuizSheet)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, index, 0)
}
