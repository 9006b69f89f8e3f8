//go:build amd64
// +build amd64

package detour

import "testing"

func TestJmpBytesAmd64(t *testing.T) {
	dest := uintptr(0xDEADBEEFCAFEBABE)
	b := jmpBytes(dest)
	if len(b) != patchSize {
		t.Fatalf("len = %d, want %d", len(b), patchSize)
	}
	want := []byte{0x48, 0xB8, 0xBE, 0xBA, 0xFE, 0xCA, 0xEF, 0xBE, 0xAD, 0xDE, 0xFF, 0xE0}
	for i, wb := range want {
		if b[i] != wb {
			t.Fatalf("byte %d = 0x%02x, want 0x%02x", i, b[i], wb)
		}
	}
}

func TestBuildTrampolineAmd64(t *testing.T) {
	b, err := buildTrampoline(0x42)
	if err != nil {
		t.Fatalf("buildTrampoline: %v", err)
	}
	if len(b) != 12 {
		t.Fatalf("len = %d, want 12", len(b))
	}
}
