package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/dusk-indust/graphkit/graph"
)

// runPath prints the shortest path between two nodes of a snapshot.
func runPath(args []string) error {
	fs := flag.NewFlagSet("path", flag.ContinueOnError)
	from := fs.String("from", "", "start node id")
	to := fs.String("to", "", "destination node id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *from == "" || *to == "" {
		return errors.New("path: -from and -to are required")
	}
	if fs.NArg() != 1 {
		return errors.New("path: exactly one snapshot file required")
	}

	gr, err := graph.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	path, err := graph.ShortestPath(gr, *from, *to)
	if err != nil {
		return err
	}
	if path == nil {
		return fmt.Errorf("path: node %q or %q not in graph", *from, *to)
	}

	fmt.Println(strings.Join(path, " -> "))
	return nil
}
