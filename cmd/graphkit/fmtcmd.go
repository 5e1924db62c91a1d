package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/dusk-indust/graphkit/graph"
	"github.com/dusk-indust/graphkit/internal/config"
)

// runFmt re-renders a snapshot pretty or compact. The rendering is
// presentation only; the graph itself is unchanged by a reformat.
func runFmt(args []string) error {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	compact := fs.Bool("compact", false, "emit a single-line rendering")
	out := fs.String("out", "", "write to this file instead of rewriting in place")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("fmt: exactly one snapshot file required")
	}
	in := fs.Arg(0)

	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("fmt: load config: %w", err)
	}
	pretty := !(*compact || cfg.Compact)

	gr, err := graph.LoadFile(in)
	if err != nil {
		return err
	}

	target := *out
	if target == "" {
		target = in
	}
	return graph.SaveFile(gr, target, pretty)
}
