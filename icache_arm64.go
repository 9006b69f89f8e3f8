//go:build arm64
// +build arm64

package detour

/*
// ARM doesn't automatically invalidate the instruction cache, so manual
// flushing is needed after changing memory that holds executable code.

#include <stdint.h>
void flush_cache(uint64_t addr, size_t len) {
	char *target = (char *)addr;
	__builtin___clear_cache(target, target + len);
}
*/
import "C"

// flushInstructionCache invalidates the CPU's instruction cache for the n
// bytes at addr, so no core keeps executing stale pre-patch code.
func flushInstructionCache(addr uintptr, n int) {
	C.flush_cache(C.uint64_t(addr), C.size_t(n))
}
