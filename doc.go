// Package detour redirects every call to one already-compiled Go function
// to the machine code of another, by overwriting the first bytes of the
// original function's native body with an architecture-specific absolute
// jump to the replacement's body. The redirection can be started, stopped,
// or disposed at any time, and the original bytes are kept so the original
// behavior can be restored or invoked explicitly through InvokeOriginal.
//
// Go has no managed runtime with lazily-JIT-compiled methods, so the two
// kinds of method descriptor this package works with are the closest Go
// analog: Regular wraps an ordinary, ahead-of-time compiled function value,
// and Dynamic wraps one built with reflect.MakeFunc, whose entry point is
// not resolved the same way. Dynamic is meant to stand in as a
// redirection's replacement (the common case: substituting a mock
// closure for a real function); every reflect.MakeFunc value is invoked
// by the Go runtime through its own inlined dispatch rather than by
// executing instructions at the value's resolved address, so using a
// Dynamic descriptor as the original side of a redirection builds
// without error but has no observable effect when the original is called
// normally.
//
// This package is not thread-safe across the byte-copy that installs or
// removes a trampoline: that copy spans multiple instructions on every
// supported architecture, so a second goroutine calling the redirected
// function mid-copy can observe a torn instruction stream. Callers must
// quiesce the targeted function around Start, Stop, InvokeOriginal, and
// Dispose.
package detour
