//go:build arm64
// +build arm64

package detour

// patchSize is 16 bytes on ARM64. Some detour implementations reuse the
// ARM (32-bit) "ldr pc, [pc, #-4]" encoding here with an 8-byte payload
// for a 12-byte patch, but AArch64 has no general-purpose PC register
// for that instruction to target and the bytes do not decode to a valid
// instruction, so a real load-literal/branch pair is used instead. See
// DESIGN.md.
const patchSize = 16

// jmpBytes encodes a real absolute jump for AArch64:
//
//	LDR X16, #8   ; load the 64-bit literal 8 bytes ahead into a scratch reg
//	BR  X16       ; branch to it
//	<8-byte address literal>
//
// X16 (the intra-procedure-call scratch register) is used because the
// platform ABIs treat it as caller-corruptible across any call boundary.
func jmpBytes(dest uintptr) []byte {
	b := make([]byte, patchSize)
	putUint32LE(b[0:4], 0x58000050) // LDR X16, #8
	putUint32LE(b[4:8], 0xD61F0200) // BR X16
	putUint64LE(b[8:16], uint64(dest))
	return b
}
