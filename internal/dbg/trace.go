package dbg

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
)

// Tracing for the triangulation internals. Everything here is a no-op unless
// Enabled is set, so it can stay in hot paths.

var (
	// Print a trace of insertions, flips and trims.
	Enabled bool
	// Also render the mesh after every insertion (iTerm only).
	DrawEnabled bool
	// Where the trace goes.
	Output io.Writer = os.Stdout
)

func Printf(format string, args ...interface{}) {
	if !Enabled {
		return
	}
	fmt.Fprintf(Output, format+"\n", args...)
}

// Colored names for the three states a triangle or vertex can be in.

func Live(obj interface{}) string {
	return aurora.Green(Name(obj)).String()
}

func Condemned(obj interface{}) string {
	return aurora.Red(Name(obj)).String()
}

func Boundary(obj interface{}) string {
	return aurora.Cyan(Name(obj)).String()
}

func Heading(s string) string {
	return aurora.Bold(aurora.Yellow(s)).String()
}
