package detour

import (
	"encoding/binary"
	"fmt"
	"runtime"
)

func putUint64LE(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }
func putUint32LE(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }

// PatchSize reports the number of bytes a trampoline occupies on the
// current architecture. It is zero on architectures this package does not
// support.
func PatchSize() int { return patchSize }

// buildTrampoline produces the architecture-specific absolute jump to dest
// that Create and Start write at a redirected method's entry point.
func buildTrampoline(dest uintptr) ([]byte, error) {
	if patchSize == 0 {
		return nil, fmt.Errorf("%s: %w", runtime.GOARCH, ErrUnsupportedArchitecture)
	}
	return jmpBytes(dest), nil
}
