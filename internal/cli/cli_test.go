package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunUsage(t *testing.T) {
	cases := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout bool
	}{
		{name: "help flag", args: []string{"--help"}, wantCode: ExitOK, wantStdout: true},
		{name: "help word", args: []string{"help"}, wantCode: ExitOK, wantStdout: true},
		{name: "no args", args: nil, wantCode: ExitUsage, wantStdout: true},
		{name: "unknown", args: []string{"quiz"}, wantCode: ExitUsage},
	}
	for _, tc := range cases {
		var out, errOut bytes.Buffer
		code := Run(tc.args, &out, &errOut)
		if code != tc.wantCode {
			t.Fatalf("%s: expected exit %d, got %d", tc.name, tc.wantCode, code)
		}
		usage := errOut.String()
		if tc.wantStdout {
			usage = out.String()
			if errOut.Len() != 0 {
				t.Fatalf("%s: unexpected stderr %q", tc.name, errOut.String())
			}
		} else if !strings.Contains(usage, "Unknown command: quiz") {
			t.Fatalf("%s: expected unknown command error, got %q", tc.name, usage)
		}
		for _, cmd := range commands {
			if !strings.Contains(usage, cmd.Name) || !strings.Contains(usage, cmd.Summary) {
				t.Fatalf("%s: expected %q listed in %q", tc.name, cmd.Name, usage)
			}
		}
	}
}

func TestEveryCommandHasHelp(t *testing.T) {
	want := []string{"serve", "take", "generate", "files", "export", "validate"}
	if len(commands) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(commands))
	}
	for i, cmd := range commands {
		if cmd.Name != want[i] {
			t.Fatalf("expected command %q at %d, got %q", want[i], i, cmd.Name)
		}
		var out, errOut bytes.Buffer
		if code := Run([]string{cmd.Name, "-h"}, &out, &errOut); code != ExitOK {
			t.Fatalf("%s: expected exit %d, got %d", cmd.Name, ExitOK, code)
		}
		for _, line := range cmd.Usage {
			if !strings.Contains(out.String(), line) {
				t.Fatalf("%s: expected usage line %q", cmd.Name, line)
			}
		}
	}
}

func TestUnexpectedArguments(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Run([]string{"files", "extra"}, &out, &errOut); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut.String(), "unexpected arguments: extra") {
		t.Fatalf("unexpected stderr %q", errOut.String())
	}
}
