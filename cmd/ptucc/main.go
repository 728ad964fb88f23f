package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ptuc-lang/ptucc/config"
	"github.com/ptuc-lang/ptucc/translator"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

func main() {
	flags := []*cli.Flag{
		cli.NewFlag("verbose,v", false, "report the macro limits and stack depth"),
		cli.NewFlag("input,i", "", "input file, standard input if not set"),
		cli.NewFlag("output,o", "", "output file, standard output if not set"),
		cli.NewFlag("depth,d", config.DefaultStackDepth, "limit of nested macro expansions"),
		cli.NewFlag("macros,m", config.DefaultMacroLimit, "macro table size, at most 4 times as many macros can be defined"),
	}

	expandCmd := &cli.Command{
		Name:        "expand",
		Description: "handle macro directives and write the expanded program",
		Action:      expandAct,
		Args:        cli.Args{},
		Flags:       flags,
	}

	headerCmd := &cli.Command{
		Name:        "header",
		Description: "write a C header defining every macro of the program",
		Action:      headerAct,
		Args:        cli.Args{},
		Flags:       flags,
	}

	app := &cli.Command{
		Name:        "ptucc",
		Description: "ptucc translates PTUC programs into C",
		Action:      expandAct,
		Args:        cli.Args{},
		Flags:       flags,
		Commands: []*cli.Command{
			expandCmd,
			headerCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func expandAct(c *cli.Command) error {
	return run(c, (*translator.Context).Expand)
}

func headerAct(c *cli.Command) error {
	return run(c, (*translator.Context).Header)
}

// run - Builds the configuration from the command line, runs the translation step and reports its outcome
func run(c *cli.Command, step func(*translator.Context, context.Context) error) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	cfg, err := configure(c)
	if err != nil {
		return err
	}

	if err = cfg.Open(os.Stdin, os.Stdout); err != nil {
		return errors.Wrap(err, "open streams")
	}

	t, err := translator.New(cfg, os.Stderr)
	if err != nil {
		_ = cfg.Close()
		return errors.Wrap(err, "translator")
	}

	defer func() {
		if e := t.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return translate(ctx, t, os.Stderr, step)
}

// translate - Runs step between the parsing banners and turns reported diagnostics into an error
func translate(ctx context.Context, t *translator.Context, stderr io.Writer, step func(*translator.Context, context.Context) error) (err error) {
	fmt.Fprintf(stderr, "\n\n ** Parsing from %s\n\n", t.Config.InputDisplayName())

	if err = step(t, ctx); err != nil {
		return err
	}

	if !t.Succeeded() {
		fmt.Fprintf(stderr, "\n ** End of parsing -- failed to parse given input.\n")
		return errors.New("%d errors reported", t.Diag.Count())
	}

	fmt.Fprintf(stderr, "\n ** End of parsing -- successfully parsed given input.\n")

	return nil
}

// configure - Returns the configuration selected by the flags and arguments of c
func configure(c *cli.Command) (cfg *config.Config, err error) {
	cfg = config.New()

	cfg.Verbose = c.Bool("verbose")
	cfg.InputName = c.String("input")
	cfg.OutputName = c.String("output")

	switch len(c.Args) {
	case 0:
	case 1:
		if cfg.InputName != "" {
			return nil, errors.New("input given both as --input %v and as argument %v", cfg.InputName, c.Args[0])
		}

		cfg.InputName = c.Args[0]
	default:
		return nil, errors.New("expected at most one input file, got %d", len(c.Args))
	}

	if err = cfg.SetStackDepth(c.Int("depth")); err != nil {
		return nil, errors.Wrap(err, "depth")
	}

	if err = cfg.SetMacroLimit(c.Int("macros")); err != nil {
		return nil, errors.Wrap(err, "macros")
	}

	return cfg, nil
}
