// Package diag reports translation errors to the user and keeps count of them.
package diag

import (
	"io"

	"github.com/ptuc-lang/ptucc/template"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"
)

// Reporter - Writes one formatted line per diagnostic and counts them.
// Translation continues after a diagnostic, the count decides the outcome of the run.
type Reporter struct {
	w     io.Writer
	line  int
	count uint32
}

// New - Returns a pointer to a new Reporter writing to w
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// SetLine - Sets the source line that subsequent diagnostics refer to
func (R *Reporter) SetLine(line int) {
	R.line = line
}

// Line - Returns the current source line
func (R *Reporter) Line() int {
	return R.line
}

// Errorf - Reports a diagnostic for the current line, the pattern is formatted as by fmt.Printf
func (R *Reporter) Errorf(pattern string, args ...any) {
	msg := template.Template(pattern, args...)

	R.count++

	tlog.V("diag").Printw("diagnostic", "line", R.line, "msg", msg, "count", R.count, "from", loc.Caller(1))

	_, _ = io.WriteString(R.w, template.Template("line %d: %s\n", R.line, msg))
}

// Count - Returns the number of diagnostics reported
func (R *Reporter) Count() uint32 {
	return R.count
}

// Failed - Returns true if at least one diagnostic was reported
func (R *Reporter) Failed() bool {
	return R.count > 0
}
