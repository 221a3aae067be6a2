package cli

import (
	"io"
	"testing"
)

func TestResolveUIMode(t *testing.T) {
	cases := []struct {
		mode     string
		verbose  bool
		tty      bool
		wantLive bool
		wantWarn bool
		wantErr  bool
	}{
		{mode: "", tty: true, wantLive: true},
		{mode: "auto", tty: false},
		{mode: " LIVE ", tty: true, wantLive: true},
		{mode: "live", tty: false, wantWarn: true},
		{mode: "live", verbose: true, tty: true},
		{mode: "plain", tty: true},
		{mode: "fancy", tty: true, wantErr: true},
		{mode: "fancy", verbose: true, wantErr: true},
	}

	original := isTerminal
	t.Cleanup(func() { isTerminal = original })

	for _, tc := range cases {
		isTerminal = func(io.Writer) bool { return tc.tty }
		decision, err := resolveUIMode(tc.mode, tc.verbose, io.Discard)
		if (err != nil) != tc.wantErr {
			t.Fatalf("mode %q: unexpected error state %v", tc.mode, err)
		}
		if err != nil {
			continue
		}
		if decision.useLive != tc.wantLive {
			t.Fatalf("mode %q tty=%v verbose=%v: expected live=%v", tc.mode, tc.tty, tc.verbose, tc.wantLive)
		}
		if (decision.warning != "") != tc.wantWarn {
			t.Fatalf("mode %q: unexpected warning %q", tc.mode, decision.warning)
		}
	}
}

func TestColorDisabled(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	if colorDisabled(false) {
		t.Fatalf("expected colors when NO_COLOR is empty")
	}
	t.Setenv("NO_COLOR", "1")
	if !colorDisabled(false) {
		t.Fatalf("expected NO_COLOR to disable colors")
	}
	if !colorDisabled(true) {
		t.Fatalf("expected flag to disable colors")
	}
}
