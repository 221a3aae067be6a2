package main

import (
	"os"

	"github.com/quan0401/quizz/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
