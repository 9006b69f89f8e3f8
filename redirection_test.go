//go:build amd64 || arm64
// +build amd64 arm64

package detour_test

import (
	"errors"
	"testing"

	"github.com/xyproto/detour"
)

//go:noinline
func add1(x int) int { return x + 1 }

//go:noinline
func sub1(x int) int { return x - 1 }

func TestRedirectionLifecycle(t *testing.T) {
	if add1(10) != 11 {
		t.Fatalf("sanity check failed before any redirection was installed")
	}

	r, err := detour.Create(detour.Regular(add1), detour.Regular(sub1), true)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer r.Dispose()

	if got := add1(10); got != 9 {
		t.Fatalf("add1(10) = %d while active, want 9 (sub1's behavior)", got)
	}

	r.Stop()
	if got := add1(10); got != 11 {
		t.Fatalf("add1(10) = %d after Stop, want 11", got)
	}

	r.Start()
	if got := add1(10); got != 9 {
		t.Fatalf("add1(10) = %d after restarting, want 9", got)
	}

	results, err := r.InvokeOriginal(10)
	if err != nil {
		t.Fatalf("InvokeOriginal: %v", err)
	}
	if len(results) != 1 || results[0].Int() != 11 {
		t.Fatalf("InvokeOriginal(10) = %v, want [11]", results)
	}

	// The redirection must still be active after InvokeOriginal returns.
	if got := add1(10); got != 9 {
		t.Fatalf("add1(10) = %d after InvokeOriginal, want 9 (still active)", got)
	}

	r.Dispose()
	if got := add1(10); got != 11 {
		t.Fatalf("add1(10) = %d after Dispose, want 11", got)
	}

	// A second Dispose must be a harmless no-op.
	r.Dispose()
}

func TestInvokeOriginalWhileInactive(t *testing.T) {
	r, err := detour.Create(detour.Regular(add1), detour.Regular(sub1), false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer r.Dispose()

	results, err := r.InvokeOriginal(10)
	if err != nil {
		t.Fatalf("InvokeOriginal: %v", err)
	}
	if len(results) != 1 || results[0].Int() != 11 {
		t.Fatalf("InvokeOriginal(10) = %v, want [11]", results)
	}
	if got := add1(10); got != 11 {
		t.Fatalf("add1(10) = %d after InvokeOriginal on a disarmed redirection, want 11", got)
	}
}

//go:noinline
func panicky(x int) int { panic("kaboom") }

func TestInvokeOriginalWrapsBodyPanic(t *testing.T) {
	r, err := detour.Create(detour.Regular(panicky), detour.Regular(sub1), true)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer r.Dispose()

	_, err = r.InvokeOriginal(1)
	var hie *detour.HostInvocationError
	if !errors.As(err, &hie) {
		t.Fatalf("err = %v, want a *HostInvocationError wrapping the body's panic", err)
	}

	// The panic exit path must have re-armed the redirection.
	if got := panicky(1); got != 0 {
		t.Fatalf("panicky(1) = %d after a panicking InvokeOriginal, want 0 (sub1's behavior)", got)
	}
}

func TestInvokeOriginalRejectsMalformedArguments(t *testing.T) {
	r, err := detour.Create(detour.Regular(add1), detour.Regular(sub1), true)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer r.Dispose()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a malformed argument list to panic, not be wrapped as an error")
		}
		if got := add1(10); got != 9 {
			t.Fatalf("add1(10) = %d after the machinery panic, want 9 (redirection re-armed)", got)
		}
	}()
	r.InvokeOriginal("wrong type")
}

func TestCreateWithoutStartLeavesOriginalIntact(t *testing.T) {
	r, err := detour.Create(detour.Regular(add1), detour.Regular(sub1), false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer r.Dispose()

	if got := add1(10); got != 11 {
		t.Fatalf("add1(10) = %d before Start, want 11", got)
	}

	r.Start()
	if got := add1(10); got != 9 {
		t.Fatalf("add1(10) = %d after Start, want 9", got)
	}
}
