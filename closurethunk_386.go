//go:build 386
// +build 386

package detour

// thunkSize is 11 bytes on i386: a 5-byte "mov edx, ctxt" (loading the
// closure context register) followed by the 6-byte jmpBytes sequence
// ("push imm32; ret") trampoline_386.go already builds for an ordinary
// absolute jump. i386 shares amd64's convention of reserving DX for the
// closure context pointer.
const thunkSize = 11

func closureThunkBytes(ctxt, stub uintptr) []byte {
	b := make([]byte, thunkSize)
	b[0] = 0xBA
	putUint32LE(b[1:5], uint32(ctxt))
	copy(b[5:], jmpBytes(stub))
	return b
}
