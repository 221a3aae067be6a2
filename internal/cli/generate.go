package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/quan0401/quizz/internal/notice"
	"github.com/quan0401/quizz/internal/provider"
	"github.com/quan0401/quizz/internal/question"
)

// runGenerate builds the handler for the generate command.
func runGenerate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file")
		topic := fs.String("topic", "", "Knowledge scope for the generated questions")
		count := fs.Int("count", 0, "Number of questions (default: quiz.default_count)")
		outPath := fs.String("out", "", "Save the questions as a question bank (.yml or .json)")
		verbose := fs.Bool("verbose", false, "Log to stderr")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Config error: %v\n", err)
			return ExitError
		}
		if *count == 0 {
			*count = cfg.Quiz.DefaultCount
		}

		log := commandLogger(cfg, *verbose, stderr)
		p := provider.New(newBackendClient(cfg), nil, log)
		res, err := p.Generate(cmdContext(), *topic, *count)
		if err != nil {
			if errors.Is(err, provider.ErrTopicRequired) || errors.Is(err, provider.ErrInvalidCount) {
				fmt.Fprintln(stderr, provider.InputMessage(err))
				return ExitUsage
			}
			fmt.Fprintf(stderr, "Generate error: %v\n", err)
			return ExitError
		}

		printNotice(stdout, stderr, res.Notice)
		printQuestions(stdout, res.Questions)

		if *outPath != "" {
			bank := question.Bank{Version: 1, Questions: res.Questions}
			if err := question.SaveBank(*outPath, bank); err != nil {
				fmt.Fprintf(stderr, "Save error: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Wrote %s\n", *outPath)
		}
		return ExitOK
	}
}

// printNotice writes success notices to stdout and the rest to stderr.
func printNotice(stdout, stderr io.Writer, n notice.Notice) {
	if n.IsZero() {
		return
	}
	if n.Level == notice.LevelSuccess {
		fmt.Fprintln(stdout, n.Text)
		return
	}
	fmt.Fprintln(stderr, n.Text)
}

func printQuestions(w io.Writer, questions []question.Question) {
	for i, q := range questions {
		fmt.Fprintf(w, "%d. %s\n", i+1, q.Prompt)
		fmt.Fprintf(w, "   Correct answer: %s\n", q.CorrectAnswer)
		fmt.Fprintf(w, "   Incorrect answers: %s\n", strings.Join(q.IncorrectAnswers[:], ", "))
	}
}
