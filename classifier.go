package detour

import (
	"fmt"
	"runtime"
	"unsafe"
)

// isCompiled reports whether the patchSize bytes at entry already hold
// compiled native code, as opposed to a runtime-installed precode/fixup
// stub. The stub byte tables this compares against (isStub, one per
// architecture) are empirical and expected to drift across runtime
// revisions; treat them as configuration, not as a guarantee.
func isCompiled(entry uintptr) (bool, error) {
	if patchSize == 0 {
		return false, fmt.Errorf("%s: %w", runtime.GOARCH, ErrUnsupportedArchitecture)
	}
	buf, err := readEntryBytes(entry, patchSize)
	if err != nil {
		return false, err
	}
	return !isStub(buf), nil
}

// readEntryBytes copies n bytes starting at addr into a fresh slice so
// later comparisons don't alias live, possibly-about-to-be-patched memory.
func readEntryBytes(addr uintptr, n int) ([]byte, error) {
	if addr == 0 {
		return nil, fmt.Errorf("detour: cannot read from a nil entry address")
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
	out := make([]byte, n)
	copy(out, src)
	return out, nil
}

// writeEntryBytes overwrites the patchSize bytes at addr with data. The
// caller is responsible for having made the page writable first (allowRW)
// and for data having the correct length. The copy is not atomic at
// instruction granularity; callers must quiesce the patched method around
// it (see the package doc). The instruction cache is flushed afterwards
// on architectures that don't snoop data writes into it.
func writeEntryBytes(addr uintptr, data []byte) {
	dst := unsafe.Slice((*byte)(unsafe.Pointer(addr)), len(data))
	copy(dst, data)
	flushInstructionCache(addr, len(data))
}

// tryPrepare forces desc into a compiled, redirectable state. Regular
// descriptors need no forcing: an ordinary Go function is already native
// code by the time any reflect.Value can observe it. Dynamic descriptors
// (reflect.MakeFunc) are forced by invoking them once with zero-valued
// dummy arguments — Go has a usable zero value for every parameter type,
// so no constructor-style fallback for manufacturing arguments is needed.
func tryPrepare(desc MethodDescriptor) bool {
	switch desc.kind() {
	case kindRegular:
		return true
	case kindDynamic:
		return forceDynamicCompile(desc)
	default:
		return false
	}
}
