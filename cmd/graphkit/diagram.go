package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dusk-indust/graphkit/graph"
	"github.com/dusk-indust/graphkit/internal/config"
	"github.com/dusk-indust/graphkit/internal/export"
)

// runDiagram renders a snapshot as a Mermaid diagram, to stdout or a file.
func runDiagram(args []string) error {
	fs := flag.NewFlagSet("diagram", flag.ContinueOnError)
	out := fs.String("out", "", "write the diagram to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("diagram: exactly one snapshot file required")
	}

	gr, err := graph.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	mermaid := export.GenerateMermaid(gr)

	if *out == "" {
		fmt.Print(mermaid)
		return nil
	}

	target := *out
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("diagram: load config: %w", err)
	}
	if cfg.OutputDir != "" && !filepath.IsAbs(target) {
		target = filepath.Join(cfg.OutputDir, target)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("diagram: create output directory: %w", err)
	}
	return os.WriteFile(target, []byte(mermaid), 0o644)
}
