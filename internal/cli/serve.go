package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/quan0401/quizz/internal/files"
	"github.com/quan0401/quizz/internal/lib/logger"
	"github.com/quan0401/quizz/internal/lib/logger/sl"
	"github.com/quan0401/quizz/internal/provider"
	"github.com/quan0401/quizz/internal/webui"
)

// serveWeb is a test seam for running the web server.
var serveWeb = webui.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: $CONFIG_PATH or .quizz/config.yml)")
		addr := fs.String("addr", "", "Address to listen on (overrides http_server.address)")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Config error: %v\n", err)
			return ExitError
		}
		if *addr != "" {
			cfg.HTTPServer.Address = *addr
		}

		log := logger.New(cfg.Env, stderr)
		questions, err := quizQuestions("", cfg)
		if err != nil {
			log.Error("failed to load question bank", sl.Err(err))
			fmt.Fprintf(stderr, "Question bank error: %v\n", err)
			return ExitError
		}

		client := newBackendClient(cfg)
		app := webui.NewApp(webui.Config{
			Log:          log,
			Provider:     provider.New(client, nil, log),
			Files:        files.NewManager(client, log),
			Questions:    questions,
			DefaultCount: cfg.Quiz.DefaultCount,
		})
		handler, err := webui.NewHandler(app)
		if err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		serverCfg := webui.ServerConfig{
			Addr:         cfg.HTTPServer.Address,
			ReadTimeout:  cfg.HTTPServer.ReadTimeout,
			WriteTimeout: cfg.HTTPServer.WriteTimeout,
			IdleTimeout:  cfg.HTTPServer.IdleTimeout,
		}
		fmt.Fprintf(stdout, "Serving quiz at http://%s\n", serverCfg.Addr)
		if err := serveWeb(ctx, serverCfg, handler, log); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
