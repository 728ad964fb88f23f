// Package translator ties together the pieces of one PTUC translation run: the configuration, the macro table
// and the diagnostics reporter.
package translator

import (
	"context"
	"io"

	"github.com/ptuc-lang/ptucc/cgen"
	"github.com/ptuc-lang/ptucc/config"
	"github.com/ptuc-lang/ptucc/diag"
	"github.com/ptuc-lang/ptucc/hashtable"
	"github.com/ptuc-lang/ptucc/macro"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

// Context - State of one translation run. It is created once by the driver and closed once when the run ends.
type Context struct {
	Config *config.Config
	Macros *hashtable.Table
	Diag   *diag.Reporter

	expander *macro.Expander
	closed   bool
}

// New - Returns a pointer to a new Context. The macro table gets Config.MacroLimit bins and the expander is
// bound to the hard ceiling Config.MacroLimitMax. Diagnostics are written to stderr.
// The streams of cfg must already be open.
func New(cfg *config.Config, stderr io.Writer) (c *Context, err error) {
	macros, err := hashtable.New(int64(cfg.MacroLimit), nil)
	if err != nil {
		return nil, errors.Wrap(err, "macro table")
	}

	reporter := diag.New(stderr)

	c = &Context{
		Config:   cfg,
		Macros:   macros,
		Diag:     reporter,
		expander: macro.New(macros, reporter, cfg.StackDepth, cfg.MacroLimitMax),
	}

	return c, nil
}

// Expand - Writes the input with macro directives handled and macros expanded to the output
func (C *Context) Expand(ctx context.Context) (err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "expand", "input", C.Config.InputDisplayName())
	defer tr.Finish("err", &err)

	if err = C.expander.Process(ctx, C.Config.In, C.Config.Out); err != nil {
		return errors.Wrap(err, "expand %v", C.Config.InputDisplayName())
	}

	tr.Printw("expanded", "macros", C.Macros.Len(), "diagnostics", C.Diag.Count())

	return nil
}

// Header - Reads the macro definitions of the input and writes a C header defining them to the output
func (C *Context) Header(ctx context.Context) (err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "header", "input", C.Config.InputDisplayName())
	defer tr.Finish("err", &err)

	if err = C.expander.Process(ctx, C.Config.In, io.Discard); err != nil {
		return errors.Wrap(err, "read definitions of %v", C.Config.InputDisplayName())
	}

	em := cgen.NewEmitter()
	defer func() {
		if e := em.Close(); e != nil && err == nil {
			err = errors.Wrap(e, "close emitter")
		}
	}()

	if err = em.Prologue(); err != nil {
		return errors.Wrap(err, "prologue")
	}
	if err = em.Defines(C.Macros); err != nil {
		return errors.Wrap(err, "defines")
	}

	code, err := em.Value()
	if err != nil {
		return errors.Wrap(err, "emit")
	}

	if _, err = io.WriteString(C.Config.Out, code); err != nil {
		return errors.Wrap(err, "write header")
	}

	tr.Printw("header written", "macros", C.Macros.Len(), "size", len(code))

	return nil
}

// Succeeded - Returns true if no diagnostic has been reported during the run
func (C *Context) Succeeded() bool {
	return !C.Diag.Failed()
}

// Close - Destroys the macro table and closes the files opened by the configuration.
// Further calls do nothing.
func (C *Context) Close() (err error) {
	if C.closed {
		return nil
	}

	C.closed = true

	if err = C.Macros.Destroy(); err != nil {
		err = errors.Wrap(err, "destroy macro table")
	}

	if e := C.Config.Close(); e != nil && err == nil {
		err = e
	}

	return
}
