//go:build linux || darwin
// +build linux darwin

package detour

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// mapExecutable mmaps an anonymous, private region sized to hold code,
// copies code into it, and returns its address. The region is requested
// read-write-execute up front; no OS truly needs the memory protection
// broker of memory_unix.go to get executable bytes for a path this
// library controls entirely.
func mapExecutable(code []byte) (uintptr, error) {
	region, err := unix.Mmap(-1, 0, len(code), unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return 0, fmt.Errorf("detour: mmap %d bytes for a closure thunk: %w: %w", len(code), ErrMemoryProtect, err)
	}
	copy(region, code)
	return uintptr(unsafe.Pointer(&region[0])), nil
}
