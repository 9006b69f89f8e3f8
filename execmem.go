package detour

// allocExecutable copies code into a freshly allocated, page-backed
// region of memory that is readable, writable, and executable, and
// returns its address. Unlike allowRW (which only ever changes the
// protection bits of memory the host runtime already owns — an existing
// method's JIT-compiled body), this package never hands a Dynamic
// descriptor's context-loading thunk a home inside Go's ordinary,
// non-executable heap, so it must map new pages of its own. The mapping
// is never released; it lives for the rest of the process, the same
// "leak until exit" lifecycle the root set in roots.go already follows.
func allocExecutable(code []byte) (uintptr, error) {
	addr, err := mapExecutable(code)
	if err != nil {
		return 0, err
	}
	flushInstructionCache(addr, len(code))
	return addr, nil
}
