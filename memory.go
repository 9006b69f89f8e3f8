package detour

// allowRW guarantees that the page(s) containing at least size bytes
// starting at addr are readable, writable, and executable on return. Go
// maps its text segment read-only-executable on every architecture this
// package supports, ARM and ARM64 included, so the protection change is
// never skippable. On Windows only the page containing addr is changed
// (see memory_windows.go).
func allowRW(addr uintptr, size int) error {
	return protectRW(addr, size)
}
