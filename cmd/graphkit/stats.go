package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/dusk-indust/graphkit/graph"
	"github.com/dusk-indust/graphkit/internal/config"
)

// fileStats pairs one snapshot's counts with an optional connectivity check.
type fileStats struct {
	graph.GraphStats
	Connected bool
}

// runStats loads each snapshot file in parallel and prints its counts.
// Graphs are independent, so one goroutine per file never shares a graph.
func runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	start := fs.String("start", "", "node to test connectivity from (empty skips the check)")
	verbose := fs.Bool("verbose", false, "log per-file progress")
	if err := fs.Parse(args); err != nil {
		return err
	}
	files := fs.Args()
	if len(files) == 0 {
		return errors.New("stats: at least one snapshot file required")
	}

	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("stats: load config: %w", err)
	}
	logProgress := *verbose || cfg.Verbose

	results := make([]fileStats, len(files))
	var eg errgroup.Group
	for i, path := range files {
		i, path := i, path
		eg.Go(func() error {
			if logProgress {
				log.Printf("loading %s", path)
			}
			gr, err := graph.LoadFile(path)
			if err != nil {
				return err
			}
			st := fileStats{GraphStats: gr.Stats()}
			if *start != "" {
				st.Connected = graph.IsConnected(gr, *start)
			}
			results[i] = st
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i, path := range files {
		st := results[i]
		line := fmt.Sprintf("%s: %d nodes, %d links, weighted=%t",
			path, st.NodeCount, st.LinkCount, st.Weighted)
		if *start != "" {
			line += fmt.Sprintf(", connected from %s: %t", *start, st.Connected)
		}
		fmt.Println(line)
	}
	return nil
}
