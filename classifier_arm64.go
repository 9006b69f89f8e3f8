//go:build arm64
// +build arm64

package detour

import "bytes"

var arm64StubPattern = []byte{
	0x89, 0x00, 0x00, 0x10,
	0x2a, 0x31, 0x40, 0xA9,
	0x40, 0x01, 0x1F, 0xD6,
}

var arm64FixupPattern = []byte{
	0x0C, 0x00, 0x00, 0x10,
	0x6B, 0x00, 0x00, 0x58,
	0x60, 0x01, 0x1F, 0xD6,
}

// isStub reports whether buf's first 12 bytes match the known ARM64
// precode or fixup precode shape. The trampoline written on this
// architecture is 16 bytes (see trampoline_arm64.go), so buf carries four
// extra trailing bytes this comparison ignores.
func isStub(buf []byte) bool {
	if len(buf) >= len(arm64StubPattern) && bytes.Equal(buf[:len(arm64StubPattern)], arm64StubPattern) {
		return true
	}
	if len(buf) >= len(arm64FixupPattern) && bytes.Equal(buf[:len(arm64FixupPattern)], arm64FixupPattern) {
		return true
	}
	return false
}
