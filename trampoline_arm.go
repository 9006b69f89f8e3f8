//go:build arm
// +build arm

package detour

// patchSize is 8 bytes on ARM: a 4-byte "ldr pc, [pc, #-4]" followed by
// the 4-byte literal it loads.
const patchSize = 8

// jmpBytes encodes a PC-relative literal load straight into the program
// counter, followed by the 32-bit address it loads: ldr pc, [pc, #-4].
func jmpBytes(dest uintptr) []byte {
	b := make([]byte, patchSize)
	b[0], b[1], b[2], b[3] = 0x04, 0xF0, 0x1F, 0xE5
	putUint32LE(b[4:8], uint32(dest))
	return b
}
