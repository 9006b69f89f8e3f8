//go:build arm
// +build arm

package detour

// thunkSize is 16 bytes on ARM: a 4-byte "ldr r7, [pc, #-4]" plus its
// 4-byte ctxt literal (loading the closure context register), followed
// by the 8-byte jmpBytes sequence trampoline_arm.go already builds for
// an ordinary absolute jump. Go's arm ABI reserves R7 as the closure
// context register.
const thunkSize = 16

func closureThunkBytes(ctxt, stub uintptr) []byte {
	b := make([]byte, thunkSize)
	// ldr r7, [pc, #-4]: same encoding as trampoline_arm.go's
	// "ldr pc, [pc, #-4]" with the destination register field (bits
	// 15:12) changed from r15 (pc, 0xF) to r7 (0x7).
	b[0], b[1], b[2], b[3] = 0x04, 0x70, 0x1F, 0xE5
	putUint32LE(b[4:8], uint32(ctxt))
	copy(b[8:], jmpBytes(stub))
	return b
}
