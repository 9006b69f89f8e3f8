package detour

import (
	"fmt"
	"reflect"
	"sync"
)

// Redirection composes the platform memory broker, trampoline builder,
// method-address resolver, and JIT-state classifier into a reversible
// machine-code patch. The zero value is not usable; construct one with
// Create.
//
// Redirection is not safe for concurrent use from multiple goroutines
// while it is being armed or disarmed: see the package doc for why.
type Redirection struct {
	mu sync.Mutex

	original    MethodDescriptor
	replacement MethodDescriptor

	originalEntry uintptr

	capturedOriginal []byte
	trampoline       []byte

	active   bool
	disposed bool
}

// Create builds a Redirection from original to replacement. Both methods
// are resolved and, if necessary, forced through compilation before the
// patch is computed. If startImmediately is true the trampoline is
// written before Create returns; otherwise the Redirection starts
// disarmed and Start must be called explicitly.
func Create(original, replacement MethodDescriptor, startImmediately bool) (*Redirection, error) {
	origEntry, err := original.entryAddress()
	if err != nil {
		return nil, err
	}
	replEntry, err := replacement.entryAddress()
	if err != nil {
		return nil, err
	}

	if err := checkDistinctEntries(origEntry, replEntry); err != nil {
		return nil, err
	}

	origEntry, err = ensureCompiled(original, origEntry)
	if err != nil {
		return nil, err
	}
	replEntry, err = ensureCompiled(replacement, replEntry)
	if err != nil {
		return nil, err
	}

	// A method's entry can move across compilation, so the distance
	// check is repeated against the post-compile addresses.
	if err := checkDistinctEntries(origEntry, replEntry); err != nil {
		return nil, err
	}

	if err := allowRW(origEntry, patchSize); err != nil {
		return nil, err
	}

	trampoline, err := buildTrampoline(replEntry)
	if err != nil {
		return nil, err
	}

	captured, err := readEntryBytes(origEntry, patchSize)
	if err != nil {
		return nil, err
	}

	r := &Redirection{
		original:         original,
		replacement:      replacement,
		originalEntry:    origEntry,
		capturedOriginal: captured,
		trampoline:       trampoline,
	}

	if startImmediately {
		writeEntryBytes(origEntry, trampoline)
		r.active = true
	}

	addRoot(original)
	addRoot(replacement)

	logf("created redirection 0x%x -> 0x%x (active=%v)", origEntry, replEntry, r.active)
	return r, nil
}

// MustCreate is like Create but panics instead of returning an error.
func MustCreate(original, replacement MethodDescriptor, startImmediately bool) *Redirection {
	r, err := Create(original, replacement, startImmediately)
	if err != nil {
		panic(err)
	}
	return r
}

func checkDistinctEntries(origEntry, replEntry uintptr) error {
	if origEntry == replEntry {
		return ErrSelfRedirect
	}
	if distance(origEntry, replEntry) <= uintptr(patchSize) {
		return ErrBodiesTooClose
	}
	return nil
}

func distance(a, b uintptr) uintptr {
	if a > b {
		return a - b
	}
	return b - a
}

// ensureCompiled resolves desc's current compiled state at addr, forcing
// compilation and re-resolving once if necessary.
func ensureCompiled(desc MethodDescriptor, addr uintptr) (uintptr, error) {
	compiled, err := isCompiled(addr)
	if err != nil {
		return 0, err
	}
	if compiled {
		return addr, nil
	}
	if !tryPrepare(desc) {
		return 0, ErrNotJitted
	}
	addr, err = desc.entryAddress()
	if err != nil {
		return 0, err
	}
	compiled, err = isCompiled(addr)
	if err != nil {
		return 0, err
	}
	if !compiled {
		return 0, ErrNotJitted
	}
	return addr, nil
}

// Start installs the trampoline if it isn't already installed. Idempotent.
func (r *Redirection) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disposed || r.active {
		return
	}
	writeEntryBytes(r.originalEntry, r.trampoline)
	r.active = true
	logf("started redirection at 0x%x", r.originalEntry)
}

// Stop restores the captured original bytes if the trampoline is
// currently installed. Idempotent.
func (r *Redirection) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disposed || !r.active {
		return
	}
	writeEntryBytes(r.originalEntry, r.capturedOriginal)
	r.active = false
	logf("stopped redirection at 0x%x", r.originalEntry)
}

// InvokeOriginal calls the original method directly, temporarily
// restoring its captured bytes if the redirection is currently active and
// re-installing the trampoline on every exit path, including a panic from
// the method body. A panic originating in the body is reported as a
// *HostInvocationError; a panic from the invocation machinery itself
// (e.g. a malformed argument list) propagates unwrapped.
func (r *Redirection) InvokeOriginal(args ...any) ([]reflect.Value, error) {
	r.mu.Lock()
	wasActive := r.active
	if wasActive {
		writeEntryBytes(r.originalEntry, r.capturedOriginal)
		r.active = false
	}
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		if wasActive && !r.disposed {
			writeEntryBytes(r.originalEntry, r.trampoline)
			r.active = true
		}
		r.mu.Unlock()
	}()

	fn := r.original.reflectValue()
	// Argument validation happens before the recover guard is installed,
	// so a malformed argument list panics out of this frame directly (the
	// deferred re-patch above still runs) instead of being mistaken for a
	// failure of the method body.
	in := buildCallArgs(fn.Type(), args)
	return callOriginal(fn, in)
}

// buildCallArgs converts args into reflect.Values matching t, substituting
// a typed zero value for an untyped nil. A wrong argument count or an
// unassignable argument panics the same way reflect.Value.Call would.
func buildCallArgs(t reflect.Type, args []any) []reflect.Value {
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
		if len(args) < fixed {
			panic(fmt.Sprintf("detour: InvokeOriginal with %d arguments, method takes at least %d", len(args), fixed))
		}
	} else if len(args) != fixed {
		panic(fmt.Sprintf("detour: InvokeOriginal with %d arguments, method takes %d", len(args), fixed))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		want := t.In(i)
		if t.IsVariadic() && i >= t.NumIn()-1 {
			want = t.In(t.NumIn() - 1).Elem()
		}
		if a == nil {
			in[i] = reflect.Zero(want)
			continue
		}
		v := reflect.ValueOf(a)
		if !v.Type().AssignableTo(want) {
			panic(fmt.Sprintf("detour: InvokeOriginal argument %d has type %s, method takes %s", i, v.Type(), want))
		}
		in[i] = v
	}
	return in
}

// callOriginal invokes fn with a validated argument list, converting a
// panic escaping the call into a *HostInvocationError. The argument list
// is known good by this point, so any panic recovered here originated
// inside the method's own body.
func callOriginal(fn reflect.Value, in []reflect.Value) (results []reflect.Value, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			results = nil
			err = &HostInvocationError{Recovered: rec}
		}
	}()
	return fn.Call(in), nil
}

// Dispose stops the redirection unconditionally and removes both method
// descriptors from the process-wide root set. Idempotent; operations on a
// disposed Redirection other than a further Dispose are undefined.
func (r *Redirection) Dispose() {
	r.mu.Lock()
	if r.disposed {
		r.mu.Unlock()
		return
	}
	if r.active {
		writeEntryBytes(r.originalEntry, r.capturedOriginal)
		r.active = false
	}
	r.disposed = true
	r.mu.Unlock()

	removeRoot(r.original)
	removeRoot(r.replacement)
	logf("disposed redirection at 0x%x", r.originalEntry)
}
