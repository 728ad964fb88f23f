// Package config holds the settings of one translator run and the input and output streams they select.
package config

import (
	"io"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

const (
	// DefaultStackDepth - Default limit of nested macro expansions
	DefaultStackDepth = 10
	// MinStackDepth - Lowest accepted limit of nested macro expansions
	MinStackDepth = 3

	// DefaultMacroLimit - Default number of macro table bins
	DefaultMacroLimit = 64
	// MinMacroLimit - Lowest accepted number of macro table bins
	MinMacroLimit = 32
	// MacroCeilingFactor - The hard ceiling of stored macros is this many times the macro limit
	MacroCeilingFactor = 4
)

// Config - Settings of one translator run. It is built once by the driver and passed to every component
// that needs it.
type Config struct {
	Verbose    bool
	InputName  string
	OutputName string

	// StackDepth - Limit of nested macro expansions
	StackDepth uint32
	// MacroLimit - Number of bins of the macro table
	MacroLimit uint32
	// MacroLimitMax - Hard ceiling of stored macros, always MacroCeilingFactor * MacroLimit
	MacroLimitMax uint32

	In  io.Reader
	Out io.Writer

	closers []io.Closer
}

// New - Returns a pointer to a Config holding default settings
func New() *Config {
	return &Config{
		StackDepth:    DefaultStackDepth,
		MacroLimit:    DefaultMacroLimit,
		MacroLimitMax: DefaultMacroLimit * MacroCeilingFactor,
	}
}

// SetStackDepth - Sets the limit of nested macro expansions, it must be at least MinStackDepth
func (C *Config) SetStackDepth(depth int) error {
	if depth < MinStackDepth {
		return errors.New("stack depth must be a number not less than %d, got %d", MinStackDepth, depth)
	}

	C.StackDepth = uint32(depth)

	return nil
}

// SetMacroLimit - Sets the number of macro table bins, it must be at least MinMacroLimit.
// The hard ceiling is moved along to MacroCeilingFactor times the limit.
func (C *Config) SetMacroLimit(limit int) error {
	if limit < MinMacroLimit {
		return errors.New("macro limit must be a number not less than %d, got %d", MinMacroLimit, limit)
	}

	C.MacroLimit = uint32(limit)
	C.MacroLimitMax = uint32(limit) * MacroCeilingFactor

	return nil
}

// InputDisplayName - Returns the name to show for the input stream
func (C *Config) InputDisplayName() string {
	if C.InputName == "" {
		return "standard input"
	}
	return C.InputName
}

// Open - Opens the named input and output files. Without a name the given standard streams are used instead.
func (C *Config) Open(stdin io.Reader, stdout io.Writer) error {
	C.In, C.Out = stdin, stdout

	if C.InputName != "" {
		f, err := os.Open(C.InputName)
		if err != nil {
			return errors.Wrap(err, "open %v for reading", C.InputName)
		}

		C.In = f
		C.closers = append(C.closers, f)

		tlog.Printw("input", "name", C.InputName)
	}

	if C.OutputName != "" {
		f, err := os.Create(C.OutputName)
		if err != nil {
			_ = C.Close()
			return errors.Wrap(err, "open %v for writing", C.OutputName)
		}

		C.Out = f
		C.closers = append(C.closers, f)

		tlog.Printw("output", "name", C.OutputName)
	}

	if C.Verbose {
		tlog.Printw("limits", "max_macro", C.MacroLimit, "max_macro_limit", C.MacroLimitMax, "stack_depth", C.StackDepth)
	}

	return nil
}

// Close - Closes the files opened by Open, standard streams are left open
func (C *Config) Close() (err error) {
	for i := len(C.closers) - 1; i >= 0; i-- {
		if e := C.closers[i].Close(); e != nil && err == nil {
			err = errors.Wrap(e, "close")
		}
	}

	C.closers = nil

	return
}
