//go:build 386
// +build 386

package detour

// patchSize is 6 bytes on i386: a 5-byte "push imm32" followed by a
// 1-byte "ret".
const patchSize = 6

// jmpBytes encodes the shortest absolute jump i386 offers without
// clobbering a general-purpose register: push imm32; ret.
func jmpBytes(dest uintptr) []byte {
	b := make([]byte, patchSize)
	b[0] = 0x68
	putUint32LE(b[1:5], uint32(dest))
	b[5] = 0xC3
	return b
}
