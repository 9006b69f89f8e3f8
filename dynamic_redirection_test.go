//go:build amd64 || arm64
// +build amd64 arm64

package detour_test

import (
	"reflect"
	"testing"

	"github.com/xyproto/detour"
)

//go:noinline
func double(x int) int { return x * 2 }

// TestRedirectsRegularToDynamic exercises the headline use case a
// method-detour library exists for: replacing a real, ahead-of-time
// compiled function with a mock built from reflect.MakeFunc.
func TestRedirectsRegularToDynamic(t *testing.T) {
	if double(10) != 20 {
		t.Fatalf("sanity check failed before any redirection was installed")
	}

	mock := reflect.MakeFunc(reflect.TypeOf(double),
		func(args []reflect.Value) []reflect.Value {
			return []reflect.Value{reflect.ValueOf(args[0].Interface().(int) + 1000)}
		})

	r, err := detour.Create(detour.Regular(double), detour.Dynamic(mock.Interface()), true)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer r.Dispose()

	if got := double(10); got != 1010 {
		t.Fatalf("double(10) = %d while redirected to the mock closure, want 1010", got)
	}

	r.Stop()
	if got := double(10); got != 20 {
		t.Fatalf("double(10) = %d after Stop, want 20", got)
	}

	r.Start()
	if got := double(10); got != 1010 {
		t.Fatalf("double(10) = %d after restarting, want 1010", got)
	}

	results, err := r.InvokeOriginal(10)
	if err != nil {
		t.Fatalf("InvokeOriginal: %v", err)
	}
	if len(results) != 1 || results[0].Int() != 20 {
		t.Fatalf("InvokeOriginal(10) = %v, want [20]", results)
	}

	r.Dispose()
	if got := double(10); got != 20 {
		t.Fatalf("double(10) = %d after Dispose, want 20", got)
	}
}
