//go:build windows
// +build windows

package detour

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// protectRW calls VirtualProtect requesting execute-read-write on a single
// byte at addr; the kernel applies that to the whole page containing addr.
// The size argument is ignored, so a patch window that crosses into the
// next page leaves that next page's protection unchanged.
func protectRW(addr uintptr, _ int) error {
	var oldProtect uint32
	if err := windows.VirtualProtect(addr, 1, windows.PAGE_EXECUTE_READWRITE, &oldProtect); err != nil {
		return fmt.Errorf("detour: VirtualProtect at 0x%x: %w: %w", addr, ErrMemoryProtect, err)
	}
	return nil
}
