//go:build arm
// +build arm

package detour

import "bytes"

var armStubPattern = []byte{0xf8, 0xdf, 0xc0, 0x08, 0xf8, 0xdf, 0xf0, 0x00}
var armFixupPrefix = []byte{0x46, 0xfc, 0xf8, 0xdf, 0xf0, 0x04}

// isStub reports whether buf matches the known ARM precode or fixup
// precode shape.
func isStub(buf []byte) bool {
	if len(buf) >= len(armStubPattern) && bytes.Equal(buf[:len(armStubPattern)], armStubPattern) {
		return true
	}
	if len(buf) >= len(armFixupPrefix) && bytes.Equal(buf[:len(armFixupPrefix)], armFixupPrefix) {
		return true
	}
	return false
}
