//go:build !arm && !arm64
// +build !arm,!arm64

package detour

// flushInstructionCache is a no-op outside the ARM family: x86 snoops
// data writes into the instruction stream, so patched bytes become
// visible to execution without an explicit invalidation.
func flushInstructionCache(addr uintptr, n int) {}
