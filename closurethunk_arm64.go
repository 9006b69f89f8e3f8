//go:build arm64
// +build arm64

package detour

// thunkSize is 28 bytes on ARM64: two 4-byte LDR-literal instructions,
// one 4-byte BR, and two 8-byte literals.
//
//	LDR X26, =ctxt   ; load the closure context into the ABI's context register
//	LDR X16, =stub   ; load the shared dispatch stub's address
//	BR  X16
//	<8-byte ctxt literal>
//	<8-byte stub literal>
//
// Go's arm64 ABI reserves X26 as the closure context register. X16 is
// used as the branch scratch register for the same reason
// trampoline_arm64.go does: the platform ABIs treat it as
// caller-corruptible across any call boundary.
const thunkSize = 28

func closureThunkBytes(ctxt, stub uintptr) []byte {
	b := make([]byte, thunkSize)
	putUint32LE(b[0:4], ldrLiteral(26, 3))  // LDR X26, #12 (ctxt literal at offset 12)
	putUint32LE(b[4:8], ldrLiteral(16, 4))  // LDR X16, #16 (stub literal at offset 20)
	putUint32LE(b[8:12], 0xD61F0000|16<<5) // BR X16
	putUint64LE(b[12:20], uint64(ctxt))
	putUint64LE(b[20:28], uint64(stub))
	return b
}

// ldrLiteral encodes "LDR Xt, label" where label is wordDelta 4-byte
// words ahead of the instruction itself, matching the encoding
// trampoline_arm64.go already uses for its own "LDR X16, #8".
func ldrLiteral(rt uint32, wordDelta uint32) uint32 {
	return 0x58000000 | (wordDelta << 5) | rt
}
