package common

import (
	"fmt"
	"io"
	"os"
)

// Logger is the operator-facing log surface of the lifecycle packages. The
// CLI output is the real interface, so implementations write plain lines,
// not structured records.
type Logger interface {
	Log(format string, args ...interface{})
}

type logger struct {
	scope string
	out   io.Writer
}

// NewLogger writes to stdout, prefixing every line with the scope it was
// built for (usually the running command) so interleaved lines stay
// attributable.
func NewLogger(scope string) *logger {
	return &logger{
		scope: scope,
		out:   os.Stdout,
	}
}

func (l *logger) Log(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "[%s] %s\n", l.scope, fmt.Sprintf(format, args...))
}
