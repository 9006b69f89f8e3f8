//go:build !amd64 && !386 && !arm && !arm64
// +build !amd64,!386,!arm,!arm64

package detour

// patchSize of zero marks this architecture as unsupported; buildTrampoline
// and isCompiled both check for it before touching jmpBytes or isStub.
const patchSize = 0

func jmpBytes(dest uintptr) []byte { return nil }
