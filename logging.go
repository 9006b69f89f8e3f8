package detour

import (
	"fmt"
	"os"
)

// Verbose, when true, makes Create, Start, Stop, and Dispose print a line
// to stderr describing the patch they just wrote or restored. Off by
// default; flip it on while debugging a redirection that isn't taking
// effect.
var Verbose bool

func logf(format string, args ...any) {
	if Verbose {
		fmt.Fprintf(os.Stderr, "detour: "+format+"\n", args...)
	}
}
