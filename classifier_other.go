//go:build !amd64 && !386 && !arm && !arm64
// +build !amd64,!386,!arm,!arm64

package detour

// isStub is never reached on an unsupported architecture: isCompiled
// returns ErrUnsupportedArchitecture before calling it. It exists only so
// this build configuration compiles.
func isStub(buf []byte) bool { return false }
