package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds remote calls made from tests.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled on cleanup. Its deadline is timeout, or
// DefaultTimeout when timeout is not positive, capped a second short of the
// test deadline.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	deadline := time.Now().Add(DefaultTimeout)
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	if testDeadline, ok := t.Deadline(); ok && testDeadline.Add(-time.Second).Before(deadline) {
		deadline = testDeadline.Add(-time.Second)
	}
	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	t.Cleanup(cancel)
	return ctx
}
