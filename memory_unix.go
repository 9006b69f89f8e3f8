//go:build linux || darwin
// +build linux darwin

package detour

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// protectRW makes the page(s) spanning [addr, addr+size) read, write, and
// execute via mprotect, after aligning the request down to a page
// boundary the way the kernel requires.
func protectRW(addr uintptr, size int) error {
	pageSize := uintptr(unix.Getpagesize())
	aligned := addr &^ (pageSize - 1)
	length := int(addr-aligned) + size
	if rem := length % int(pageSize); rem != 0 {
		length += int(pageSize) - rem
	}

	region := unsafe.Slice((*byte)(unsafe.Pointer(aligned)), length)
	if err := unix.Mprotect(region, unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC); err != nil {
		return fmt.Errorf("detour: mprotect at 0x%x (%d bytes): %w: %w", aligned, length, ErrMemoryProtect, err)
	}
	return nil
}
