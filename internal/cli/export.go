package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/quan0401/quizz/internal/export"
	"github.com/quan0401/quizz/internal/quiz"
)

// runExport builds the handler for the export command.
func runExport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file")
		bankPath := fs.String("bank", "", "Question bank (default: quiz.bank_path or built-in questions)")
		outPath := fs.String("out", "", "Output workbook path")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if *outPath == "" {
			fmt.Fprintln(stderr, "Missing --out")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Config error: %v\n", err)
			return ExitError
		}
		questions, err := quizQuestions(*bankPath, cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Question bank error: %v\n", err)
			return ExitError
		}

		book, err := export.EntireQuiz(quiz.New(questions))
		if err != nil {
			fmt.Fprintf(stderr, "Export error: %v\n", err)
			return ExitError
		}
		if err := export.Save(*outPath, book); err != nil {
			fmt.Fprintf(stderr, "Export error: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", *outPath)
		return ExitOK
	}
}
