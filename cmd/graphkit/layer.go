package main

import (
	"errors"
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/dusk-indust/graphkit/graph"
)

// runLayer prints the nodes at a given depth layer from a start node.
func runLayer(args []string) error {
	fs := flag.NewFlagSet("layer", flag.ContinueOnError)
	start := fs.String("start", "", "start node id")
	layer := fs.Int("layer", 1, "depth layer to expand to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *start == "" {
		return errors.New("layer: -start is required")
	}
	if fs.NArg() != 1 {
		return errors.New("layer: exactly one snapshot file required")
	}

	gr, err := graph.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	if !gr.HasNode(*start) {
		return fmt.Errorf("layer: node %q not in graph", *start)
	}

	res := graph.DepthLayer(gr, *start, *layer)
	sort.Strings(res.Nodes)
	if res.Layer < *layer {
		fmt.Printf("layer %d (requested %d, graph exhausted): %s\n",
			res.Layer, *layer, strings.Join(res.Nodes, " "))
		return nil
	}
	fmt.Printf("layer %d: %s\n", res.Layer, strings.Join(res.Nodes, " "))
	return nil
}
