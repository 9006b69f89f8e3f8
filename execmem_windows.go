//go:build windows
// +build windows

package detour

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// mapExecutable reserves and commits a fresh read-write-execute region
// via VirtualAlloc, copies code into it, and returns its address.
func mapExecutable(code []byte) (uintptr, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(len(code)), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_EXECUTE_READWRITE)
	if err != nil {
		return 0, fmt.Errorf("detour: VirtualAlloc %d bytes for a closure thunk: %w: %w", len(code), ErrMemoryProtect, err)
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(addr)), len(code))
	copy(dst, code)
	return addr, nil
}
