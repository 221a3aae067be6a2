package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/quan0401/quizz/internal/question"
	"github.com/quan0401/quizz/internal/quiz"
)

// runPlainQuiz asks every question on a line-oriented terminal, submits, and
// prints the result. Input ending early leaves the session unsubmitted.
func runPlainQuiz(session *quiz.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for i, item := range session.Items() {
		fmt.Fprintf(out, "\n%d. %s\n", i+1, item.Question.Prompt)
		for pos, option := range item.Options {
			fmt.Fprintf(out, "   %d) %s\n", pos+1, option)
		}
		for {
			fmt.Fprintf(out, "Answer [%s]: ", optionNumbers())
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("read answer: %w", err)
				}
				fmt.Fprintln(out)
				_, err := session.Submit()
				return err
			}
			pos, ok := parseChoice(scanner.Text())
			if !ok {
				fmt.Fprintf(out, "Please enter a number between 1 and %d.\n", question.OptionCount)
				continue
			}
			if err := session.Select(i, item.Options[pos]); err != nil {
				return err
			}
			break
		}
	}
	if _, err := session.Submit(); err != nil {
		return err
	}
	fmt.Fprintln(out)
	printResult(out, session)
	return nil
}

func parseChoice(text string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 || n > question.OptionCount {
		return 0, false
	}
	return n - 1, true
}
