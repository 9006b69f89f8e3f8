package detour

import "sync"

// roots is the process-wide root set: a collection whose sole purpose is
// to keep its members reachable. A reflect.Value obtained from a live
// function value keeps that function's closure data alive for as long as
// the reflect.Value itself is reachable, so this list exists purely to
// keep each descriptor's reflect.Value reachable from somewhere for the
// lifetime of the Redirection that added it. Entries are appended on
// Create and removed on Dispose; no ordering or uniqueness is
// maintained, so a method redirected more than once appears more than
// once.
var (
	rootsMu sync.Mutex
	roots   []MethodDescriptor
)

func addRoot(desc MethodDescriptor) {
	rootsMu.Lock()
	roots = append(roots, desc)
	rootsMu.Unlock()
}

// removeRoot drops one occurrence of desc from the root set. If desc was
// rooted multiple times (the same method redirected more than once),
// only the first matching entry is removed.
func removeRoot(desc MethodDescriptor) {
	rootsMu.Lock()
	defer rootsMu.Unlock()
	for i, d := range roots {
		if d == desc {
			roots = append(roots[:i], roots[i+1:]...)
			return
		}
	}
}
