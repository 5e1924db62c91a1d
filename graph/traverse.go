package graph

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInconsistentState reports a traversal that observed state no
// well-formed query can produce: a shortest-path destination with no route
// from the start, a backtrack step with no candidate predecessor, or
// backtracking that exceeded its iteration cap. Unlike missing nodes or
// links, which are reported through boolean or empty results, this condition
// surfaces as an error.
var ErrInconsistentState = errors.New("graph: inconsistent traversal state")

// maxBacktrackSteps caps shortest-path backtracking so corrupted adjacency
// state cannot loop forever.
const maxBacktrackSteps = 1000

// DFSTraverse visits every node reachable from start depth-first and returns
// them in visitation order, each exactly once. At every step it descends
// into the first unvisited neighbor in iteration order and backtracks along
// an explicit path stack when none remains, so the order beyond the
// reachable-set guarantee depends on neighbor iteration order. An absent
// start returns nil.
func DFSTraverse(s Store, start string) []string {
	if !s.HasNode(start) {
		return nil
	}

	visited := map[string]bool{start: true}
	order := []string{start}
	path := []string{start}

	for len(path) > 0 {
		current := path[len(path)-1]

		next := ""
		found := false
		for _, nb := range s.NeighborsOf(current) {
			if !visited[nb] {
				next = nb
				found = true
				break
			}
		}
		if !found {
			// Every neighbor seen: backtrack.
			path = path[:len(path)-1]
			continue
		}

		visited[next] = true
		order = append(order, next)
		path = append(path, next)
	}

	return order
}

// BFSTraverse visits every node reachable from start and returns them in
// visitation order, each exactly once. The frontier is a LIFO stack and each
// pop appends all of one node's still-unvisited neighbors, so the output is
// breadth-flavored but not a strict distance ordering; only the
// reachable-set guarantee holds. An absent start returns nil.
func BFSTraverse(s Store, start string) []string {
	if !s.HasNode(start) {
		return nil
	}

	visited := map[string]bool{start: true}
	order := []string{start}
	stack := []string{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, nb := range s.NeighborsOf(current) {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			order = append(order, nb)
			stack = append(stack, nb)
		}
	}

	return order
}

// IsConnected reports whether every node in the store is reachable from
// start. An absent start, or an empty store, is not connected.
func IsConnected(s Store, start string) bool {
	if !s.HasNode(start) {
		return false
	}
	return len(DFSTraverse(s, start)) == s.Size()
}

// LayerResult reports a depth-layer expansion: Layer is the maximum layer
// actually reached and Nodes the ids discovered at that layer.
type LayerResult struct {
	Layer int      `json:"layer"`
	Nodes []string `json:"nodes"`
}

// DepthLayer expands level by level from start: layer 0 is {start}, layer L
// the neighbors of layer L-1 not seen at any earlier layer. Expansion stops
// at the requested layer or when a level turns up no new nodes, whichever
// comes first; Layer reports where it stopped, which is less than the
// request when the graph runs out first. A request of zero or less
// short-circuits to layer 0 without touching any neighbor; an absent start
// yields the zero result.
func DepthLayer(s Store, start string, layer int) LayerResult {
	if !s.HasNode(start) {
		return LayerResult{}
	}
	if layer <= 0 {
		return LayerResult{Layer: 0, Nodes: []string{start}}
	}

	visited := map[string]bool{start: true}
	frontier := []string{start}

	for count := 1; ; count++ {
		var next []string
		for _, id := range frontier {
			for _, nb := range s.NeighborsOf(id) {
				if !visited[nb] {
					visited[nb] = true
					next = append(next, nb)
				}
			}
		}
		if len(next) == 0 {
			// Graph exhausted before the requested layer.
			return LayerResult{Layer: count - 1, Nodes: frontier}
		}
		frontier = next
		if count == layer {
			return LayerResult{Layer: count, Nodes: frontier}
		}
	}
}

// IsInLayer reports whether target sits exactly at the given depth layer
// from start. It is false if either node is absent, or if the graph's reach
// from start ends before the requested layer.
func IsInLayer(s Store, start, target string, layer int) bool {
	if !s.HasNode(start) || !s.HasNode(target) {
		return false
	}
	res := DepthLayer(s, start, layer)
	if res.Layer < layer {
		return false
	}
	return slices.Contains(res.Nodes, target)
}

// ShortestPath returns a minimum-hop path from start to dest, inclusive of
// both endpoints. It returns nil with no error if either id is absent, and
// [start] when the two are equal.
//
// The search layers every node reachable from start with its BFS distance,
// then walks back from dest picking the neighbor with the smallest recorded
// layer at each step. Ties between equal-layer predecessors follow neighbor
// iteration order, so only the path length is deterministic, not the exact
// route. A dest with no route from start, or backtracking that exceeds its
// iteration cap, returns an error wrapping ErrInconsistentState.
func ShortestPath(s Store, start, dest string) ([]string, error) {
	if !s.HasNode(start) || !s.HasNode(dest) {
		return nil, nil
	}
	if start == dest {
		return []string{start}, nil
	}

	// Tag every reachable node with its distance from start. The full pass
	// costs O(graph size) but leaves backtracking a pure local lookup.
	layers := map[string]int{start: 0}
	frontier := []string{start}
	for depth := 1; len(frontier) > 0; depth++ {
		var next []string
		for _, id := range frontier {
			for _, nb := range s.NeighborsOf(id) {
				if _, seen := layers[nb]; !seen {
					layers[nb] = depth
					next = append(next, nb)
				}
			}
		}
		frontier = next
	}

	if _, ok := layers[dest]; !ok {
		return nil, fmt.Errorf("shortest path: %q unreachable from %q: %w", dest, start, ErrInconsistentState)
	}

	// Walk back from dest along strictly decreasing layer values.
	path := []string{dest}
	current := dest
	for steps := 0; current != start; steps++ {
		if steps >= maxBacktrackSteps {
			return nil, fmt.Errorf("shortest path: backtrack exceeded %d steps: %w", maxBacktrackSteps, ErrInconsistentState)
		}

		best := ""
		bestLayer := -1
		for _, nb := range s.NeighborsOf(current) {
			l, seen := layers[nb]
			if !seen {
				continue
			}
			if bestLayer < 0 || l < bestLayer {
				best = nb
				bestLayer = l
			}
		}
		if best == "" {
			return nil, fmt.Errorf("shortest path: no predecessor for %q: %w", current, ErrInconsistentState)
		}

		path = append(path, best)
		current = best
	}

	slices.Reverse(path)
	return path, nil
}
