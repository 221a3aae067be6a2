package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/quan0401/quizz/internal/export"
	"github.com/quan0401/quizz/internal/question"
	"github.com/quan0401/quizz/internal/quiz"
	"github.com/quan0401/quizz/internal/ui/live"
)

// runLiveQuiz is a test seam for the interactive terminal UI.
var runLiveQuiz = live.Run

// runTake builds the handler for the take command.
func runTake(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file")
		bankPath := fs.String("bank", "", "Question bank (.yml, .json, or exported .xlsx)")
		uiMode := fs.String("ui", "auto", "Terminal UI mode: auto|live|plain")
		exportPath := fs.String("export", "", "Write the answers workbook to this path after submission")
		verbose := fs.Bool("verbose", false, "Log to stderr and use plain output")
		noColor := fs.Bool("no-color", false, "Disable colors in the live UI")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		decision, err := resolveUIMode(*uiMode, *verbose, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Config error: %v\n", err)
			return ExitError
		}
		log := commandLogger(cfg, *verbose, stderr)
		questions, err := quizQuestions(*bankPath, cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Question bank error: %v\n", err)
			return ExitError
		}

		session := quiz.New(questions)
		log.Info("quiz loaded", slog.String("session", session.ID()), slog.Int("questions", session.Len()))
		if decision.useLive {
			session, err = runLiveQuiz(session, stdin, stdout, live.Options{
				NoColor: colorDisabled(*noColor),
				Reload:  func() *quiz.Session { return quiz.New(questions) },
			})
			if err != nil {
				fmt.Fprintf(stderr, "UI error: %v\n", err)
				return ExitError
			}
			printResult(stdout, session)
		} else if err := runPlainQuiz(session, stdin, stdout); err != nil {
			if errors.Is(err, quiz.ErrIncomplete) {
				fmt.Fprintln(stderr, quiz.WarnIncomplete)
				return ExitError
			}
			fmt.Fprintf(stderr, "Quiz error: %v\n", err)
			return ExitError
		}

		if *exportPath == "" {
			return ExitOK
		}
		return exportChoices(session, *exportPath, stdout, stderr)
	}
}

func exportChoices(session *quiz.Session, path string, stdout, stderr io.Writer) int {
	book, err := export.UserChoices(session)
	if errors.Is(err, export.ErrNotSubmitted) {
		fmt.Fprintln(stderr, export.WarnNotSubmitted)
		return ExitError
	}
	if err != nil {
		fmt.Fprintf(stderr, "Export error: %v\n", err)
		return ExitError
	}
	if err := export.Save(path, book); err != nil {
		fmt.Fprintf(stderr, "Export error: %v\n", err)
		return ExitError
	}
	fmt.Fprintf(stdout, "Wrote %s\n", path)
	return ExitOK
}

// printResult writes the score and per-question review after a live session.
func printResult(w io.Writer, session *quiz.Session) {
	score, ok := session.Score()
	if !ok {
		fmt.Fprintf(w, "Quiz not submitted (%d of %d answered).\n", session.Answered(), session.Len())
		return
	}
	fmt.Fprintf(w, "Your score: %d%% (%d/%d)\n", score.Percent, score.Correct, score.Total)
	for _, item := range session.Review() {
		result := "Incorrect"
		if item.IsCorrect {
			result = "Correct"
		}
		fmt.Fprintf(w, "%d. %s\n   Your answer: %s (%s)\n", item.Index+1, item.Prompt, item.Selected, result)
		if !item.IsCorrect {
			fmt.Fprintf(w, "   Correct answer: %s\n", item.Correct)
		}
	}
}

func optionNumbers() string {
	return fmt.Sprintf("1-%d", question.OptionCount)
}
