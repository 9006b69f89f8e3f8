//go:build !amd64 && !386 && !arm && !arm64
// +build !amd64,!386,!arm,!arm64

package detour

// thunkSize of zero marks this architecture as unsupported; buildClosureThunk
// checks for it before touching closureThunkBytes.
const thunkSize = 0

func closureThunkBytes(ctxt, stub uintptr) []byte { return nil }
