// Package graph implements an in-memory simple undirected graph: nodes
// carrying opaque payloads, symmetric optionally-weighted links, traversal
// and shortest-path algorithms, and a JSON snapshot codec.
//
// A graph is simple: no self-links, and at most one link per node pair.
// Every mutation preserves link symmetry and referential closure (removing
// a node first removes all links incident to it).
//
// Recoverable conditions (missing node, missing link, duplicate add) are
// reported through boolean or empty results so batch operations can continue
// past individual failures. Only invariant breaches surface as errors; see
// ErrInconsistentState.
//
// Graphs are not safe for concurrent mutation. Callers that share a graph
// across goroutines must serialize access externally.
package graph

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultWeight is the weight assigned to a link on a weighted graph when
// the caller does not supply one.
const DefaultWeight = 1.0

// node is the per-node record: adjacency keyed by neighbor id plus an
// optional payload. A nil payload means "no payload"; on unweighted graphs
// the weight cell stays at its zero value and is never reported.
type node struct {
	near    map[string]float64
	payload any
}

// Graph is a simple undirected graph keyed by string node IDs. The weighted
// flag is fixed at construction: weighted graphs carry a weight on every
// link, unweighted graphs never report one.
type Graph struct {
	weighted bool
	nodes    map[string]*node
}

// New returns an empty unweighted graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*node)}
}

// NewWeighted returns an empty weighted graph.
func NewWeighted() *Graph {
	return &Graph{weighted: true, nodes: make(map[string]*node)}
}

// Link names an undirected link by its two endpoints. Weight applies only to
// weighted graphs; the zero value means "unspecified" and takes the
// DefaultWeight on insert.
type Link struct {
	A      string  `json:"a"`
	B      string  `json:"b"`
	Weight float64 `json:"weight,omitempty"`
}

// Weighted reports whether the graph was constructed as weighted.
func (g *Graph) Weighted() bool {
	return g.weighted
}

// Size returns the number of nodes in the graph.
func (g *Graph) Size() int {
	return len(g.nodes)
}

// AddNode inserts a node with no links and no payload. It reports false if
// the id is already present.
func (g *Graph) AddNode(id string) bool {
	if _, ok := g.nodes[id]; ok {
		return false
	}
	g.nodes[id] = &node{near: make(map[string]float64)}
	return true
}

// RemoveNode deletes the node and every link incident to it. It reports
// false if the node is absent. Incident links are removed before the node
// entry itself so no neighbor set keeps a dangling reference.
func (g *Graph) RemoveNode(id string) bool {
	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	for nb := range n.near {
		delete(g.nodes[nb].near, id)
	}
	delete(g.nodes, id)
	return true
}

// AddLink links a and b with the default weight. It reports false if either
// node is absent or a == b; self-links are rejected. Re-linking an already
// linked pair succeeds and, on weighted graphs, resets the weight to the
// default.
func (g *Graph) AddLink(a, b string) bool {
	return g.AddWeightedLink(a, b, DefaultWeight)
}

// AddWeightedLink links a and b with the given weight, inserting the mirror
// entry on both sides. On unweighted graphs the weight is ignored.
// Re-linking an existing pair replaces the stored weight rather than adding
// a second link.
func (g *Graph) AddWeightedLink(a, b string, weight float64) bool {
	if a == b {
		return false
	}
	na, ok := g.nodes[a]
	if !ok {
		return false
	}
	nb, ok := g.nodes[b]
	if !ok {
		return false
	}
	if !g.weighted {
		weight = 0
	}
	na.near[b] = weight
	nb.near[a] = weight
	return true
}

// RemoveLink removes the link between a and b from both neighbor sets. It
// reports false if either node is absent or the two are not linked; on
// success both directional entries are gone.
func (g *Graph) RemoveLink(a, b string) bool {
	na, ok := g.nodes[a]
	if !ok {
		return false
	}
	nb, ok := g.nodes[b]
	if !ok {
		return false
	}
	if _, linked := na.near[b]; !linked {
		return false
	}
	delete(na.near, b)
	delete(nb.near, a)
	return true
}

// AddPayload attaches payload to the node, overwriting any existing payload.
// A nil payload is the "no payload" sentinel and is rejected, so a stored
// payload can never equal the sentinel.
func (g *Graph) AddPayload(id string, payload any) bool {
	n, ok := g.nodes[id]
	if !ok || payload == nil {
		return false
	}
	n.payload = payload
	return true
}

// RemovePayload clears the node's payload. It reports true whenever the node
// exists, even if no payload was attached.
func (g *Graph) RemovePayload(id string) bool {
	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	n.payload = nil
	return true
}

// HasNode reports whether the graph contains the node.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// HasPayload reports whether the node exists and has a payload.
func (g *Graph) HasPayload(id string) bool {
	n, ok := g.nodes[id]
	return ok && n.payload != nil
}

// AreNeighbors reports whether a link exists between a and b. It is
// symmetric: AreNeighbors(a, b) == AreNeighbors(b, a).
func (g *Graph) AreNeighbors(a, b string) bool {
	n, ok := g.nodes[a]
	if !ok {
		return false
	}
	_, linked := n.near[b]
	return linked
}

// NeighborsOf returns the ids adjacent to the node, in no particular order.
// It returns nil if the node is absent; callers that need to distinguish an
// absent node from an isolated one should check HasNode first.
func (g *Graph) NeighborsOf(id string) []string {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(n.near))
	for nb := range n.near {
		out = append(out, nb)
	}
	return out
}

// LinksOf returns the links incident to the node, in no particular order,
// or nil if the node is absent. Weight is populated only on weighted graphs.
func (g *Graph) LinksOf(id string) []Link {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	out := make([]Link, 0, len(n.near))
	for nb, w := range n.near {
		l := Link{A: id, B: nb}
		if g.weighted {
			l.Weight = w
		}
		out = append(out, l)
	}
	return out
}

// PayloadOf returns the node's payload, or nil if the node is absent or has
// no payload.
func (g *Graph) PayloadOf(id string) any {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return n.payload
}

// WeightOf returns the weight of the link between a and b. The second return
// is false on unweighted graphs, or when the two are not linked.
func (g *Graph) WeightOf(a, b string) (float64, bool) {
	if !g.weighted {
		return 0, false
	}
	n, ok := g.nodes[a]
	if !ok {
		return 0, false
	}
	w, linked := n.near[b]
	return w, linked
}

// Nodes returns all node ids, in no particular order.
func (g *Graph) Nodes() []string {
	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	return out
}

// GraphStats summarizes a graph.
type GraphStats struct {
	NodeCount int  `json:"nodeCount"`
	LinkCount int  `json:"linkCount"`
	Weighted  bool `json:"weighted"`
}

// Stats returns node and link counts. Each undirected link counts once.
func (g *Graph) Stats() GraphStats {
	degrees := 0
	for _, n := range g.nodes {
		degrees += len(n.near)
	}
	return GraphStats{
		NodeCount: len(g.nodes),
		LinkCount: degrees / 2,
		Weighted:  g.weighted,
	}
}

// String renders one line per node, sorted by id, for debugging and the CLI
// text listing.
func (g *Graph) String() string {
	ids := g.Nodes()
	sort.Strings(ids)

	var sb strings.Builder
	for _, id := range ids {
		near := g.NeighborsOf(id)
		sort.Strings(near)
		fmt.Fprintf(&sb, "node: %s  near: %v  payload: %v\n", id, near, g.nodes[id].payload)
	}
	return sb.String()
}
