package cli

import (
	"flag"
	"fmt"
	"io"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .quizz/config.yml)")
		bankPath := flags.String("bank", "", "Question bank to validate (default: quiz.bank_path)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		fmt.Fprintln(stdout, "Config OK")

		path := *bankPath
		if path == "" {
			path = cfg.Quiz.BankPath
		}
		if path == "" {
			return ExitOK
		}
		questions, err := loadQuestions(path)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Question bank OK (%d questions)\n", len(questions))
		return ExitOK
	}
}
