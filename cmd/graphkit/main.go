package main

import (
	"errors"
	"fmt"
	"os"
)

// version is set by goreleaser at build time.
var version = "dev"

const usage = `usage: graphkit <command> [flags] <snapshot.json>...

commands:
  stats    node/link counts and connectivity for one or more snapshots
  diagram  render a snapshot as a Mermaid diagram
  path     shortest path between two nodes of a snapshot
  layer    nodes at a given depth layer from a start node
  fmt      re-render a snapshot pretty or compact
  version  print version and exit
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "stats":
		return runStats(rest)
	case "diagram":
		return runDiagram(rest)
	case "path":
		return runPath(rest)
	case "layer":
		return runLayer(rest)
	case "fmt":
		return runFmt(rest)
	case "version":
		fmt.Println(version)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}
