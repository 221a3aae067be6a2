package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal front ends accepted by --ui.
const (
	uiAuto  = "auto"
	uiLive  = "live"
	uiPlain = "plain"
)

// uiModeDecision says which quiz front end take should run.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal is a test seam for TTY detection.
var isTerminal = writerIsTerminal

// resolveUIMode picks the live Bubble Tea quiz or plain prompts. Verbose runs
// always use plain prompts so log lines do not corrupt the screen.
func resolveUIMode(mode string, verbose bool, stdout io.Writer) (uiModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = uiAuto
	}
	if normalized != uiAuto && normalized != uiLive && normalized != uiPlain {
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected %s|%s|%s)", mode, uiAuto, uiLive, uiPlain)
	}
	if verbose || normalized == uiPlain {
		return uiModeDecision{}, nil
	}

	tty := isTerminal(stdout)
	if normalized == uiLive && !tty {
		return uiModeDecision{warning: "Live UI requested but stdout is not a TTY; falling back to plain prompts."}, nil
	}
	return uiModeDecision{useLive: tty}, nil
}

// colorDisabled honours --no-color and the NO_COLOR convention.
func colorDisabled(flagValue bool) bool {
	if flagValue {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

func writerIsTerminal(w io.Writer) bool {
	fder, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(fder.Fd()))
}
