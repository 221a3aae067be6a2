package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/quan0401/quizz/internal/files"
)

// cmdContext returns the context for one-shot remote calls.
func cmdContext() context.Context {
	return context.Background()
}

// runFiles builds the handler for the files command.
func runFiles(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file")
		deleteID := fs.String("delete", "", "Delete the document with this identifier")
		verbose := fs.Bool("verbose", false, "Log to stderr")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Config error: %v\n", err)
			return ExitError
		}
		manager := files.NewManager(newBackendClient(cfg), commandLogger(cfg, *verbose, stderr))

		ctx := cmdContext()
		if n, err := manager.Refresh(ctx); err != nil {
			printNotice(stdout, stderr, n)
			return ExitError
		}
		if *deleteID != "" {
			n, err := manager.Delete(ctx, *deleteID)
			printNotice(stdout, stderr, n)
			if err != nil {
				return ExitError
			}
		}
		printFiles(stdout, manager.Records(), time.Local)
		return ExitOK
	}
}

func printFiles(w io.Writer, records []files.Record, loc *time.Location) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No files")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFILE NAME\tUPLOAD DATE")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID, r.Filename, r.Uploaded(loc))
	}
	_ = tw.Flush()
}
