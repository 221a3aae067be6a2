// Package cli implements the quizz command line: the web UI server and the
// terminal quiz, generation, file, and export commands.
package cli

import (
	"fmt"
	"io"
	"slices"
)

// Process exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Command is one quizz sub-command.
type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// Run dispatches args to a sub-command and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	name := args[0]
	if name == "help" || isHelpFlag(name) {
		printUsage(stdout)
		return ExitOK
	}

	idx := slices.IndexFunc(commands, func(cmd *Command) bool { return cmd.Name == name })
	if idx < 0 {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", name)
		printUsage(stderr)
		return ExitUsage
	}
	return commands[idx].Run(args[1:], stdout, stderr)
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help"
}

func wantsHelp(args []string) bool {
	return slices.ContainsFunc(args, isHelpFlag)
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, "Usage:\n  quizz <command> [options]\n\nCommands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprint(w, "\nRun \"quizz <command> --help\" for command options.\n")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

// newCommand binds a command to the handler built from it.
func newCommand(name, summary, usage string, build func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{Name: name, Summary: summary, Usage: []string{usage}}
	cmd.Run = build(cmd)
	return cmd
}

var commands = []*Command{
	newCommand("serve", "Serve the quiz web UI",
		"quizz serve [--config <path>] [--addr <host:port>]", runServe),
	newCommand("take", "Take a quiz in the terminal",
		"quizz take [--config <path>] [--bank <path>] [--ui auto|live|plain] [--export <file.xlsx>]", runTake),
	newCommand("generate", "Generate questions for a topic",
		"quizz generate --topic <text> [--count <n>] [--out <bank.yml>]", runGenerate),
	newCommand("files", "List or delete uploaded documents",
		"quizz files [--delete <id>]", runFiles),
	newCommand("export", "Export a quiz to a spreadsheet",
		"quizz export [--bank <path>] --out <file.xlsx>", runExport),
	newCommand("validate", "Validate config and question banks",
		"quizz validate [--config <path>] [--bank <path>]", runValidate),
}
