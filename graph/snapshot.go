package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// prettyIndent is the indent used by pretty snapshot rendering.
const prettyIndent = "    "

// Snapshot is the serializable form of a Graph. Adjacency sets are flattened
// to ordered neighbor lists to avoid set-serialization ambiguity; the
// weighted flag is embedded at the graph level rather than inferred from
// tuple arity.
type Snapshot struct {
	Weighted bool                    `json:"weighted"`
	Nodes    map[string]SnapshotNode `json:"nodes"`
}

// SnapshotNode is one node's serialized record. Payload renders as JSON null
// when absent.
type SnapshotNode struct {
	Payload   any             `json:"payload"`
	Neighbors []NeighborEntry `json:"neighbors"`
}

// NeighborEntry is one flattened adjacency entry. It marshals as a JSON
// array: ["id"] when no weight is carried, ["id", weight] otherwise.
type NeighborEntry struct {
	ID        string
	Weight    float64
	HasWeight bool
}

// MarshalJSON renders the entry as a 1- or 2-element array.
func (e NeighborEntry) MarshalJSON() ([]byte, error) {
	if e.HasWeight {
		return json.Marshal([]any{e.ID, e.Weight})
	}
	return json.Marshal([]any{e.ID})
}

// UnmarshalJSON accepts ["id"] or ["id", weight].
func (e *NeighborEntry) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) < 1 || len(raw) > 2 {
		return fmt.Errorf("snapshot: neighbor entry must have 1 or 2 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &e.ID); err != nil {
		return fmt.Errorf("snapshot: neighbor id: %w", err)
	}
	e.HasWeight = false
	e.Weight = 0
	if len(raw) == 2 {
		if err := json.Unmarshal(raw[1], &e.Weight); err != nil {
			return fmt.Errorf("snapshot: neighbor weight: %w", err)
		}
		e.HasWeight = true
	}
	return nil
}

// Encode flattens g into its serializable form.
func Encode(g *Graph) *Snapshot {
	snap := &Snapshot{
		Weighted: g.weighted,
		Nodes:    make(map[string]SnapshotNode, len(g.nodes)),
	}
	for id, n := range g.nodes {
		entries := make([]NeighborEntry, 0, len(n.near))
		for nb, w := range n.near {
			e := NeighborEntry{ID: nb}
			if g.weighted {
				e.Weight = w
				e.HasWeight = true
			}
			entries = append(entries, e)
		}
		snap.Nodes[id] = SnapshotNode{Payload: n.payload, Neighbors: entries}
	}
	return snap
}

// Decode rebuilds a Graph from its serialized form, re-expanding each
// neighbor list into a set. It rejects snapshots that violate the graph
// invariants: neighbor references to unknown nodes, self-references, and
// asymmetric adjacency (including weight disagreement on weighted graphs).
// On a weighted snapshot, an entry without a weight takes the DefaultWeight;
// on an unweighted snapshot, any carried weight is ignored.
func Decode(snap *Snapshot) (*Graph, error) {
	g := &Graph{
		weighted: snap.Weighted,
		nodes:    make(map[string]*node, len(snap.Nodes)),
	}
	for id := range snap.Nodes {
		g.nodes[id] = &node{near: make(map[string]float64)}
	}

	for id, sn := range snap.Nodes {
		if sn.Payload != nil {
			g.nodes[id].payload = sn.Payload
		}
		for _, e := range sn.Neighbors {
			if e.ID == id {
				return nil, fmt.Errorf("snapshot: node %q links to itself: %w", id, ErrInconsistentState)
			}
			if _, ok := g.nodes[e.ID]; !ok {
				return nil, fmt.Errorf("snapshot: node %q references unknown neighbor %q: %w", id, e.ID, ErrInconsistentState)
			}
			w := 0.0
			if snap.Weighted {
				w = DefaultWeight
				if e.HasWeight {
					w = e.Weight
				}
			}
			g.nodes[id].near[e.ID] = w
		}
	}

	// Symmetry check once all adjacency is in place.
	for id, n := range g.nodes {
		for nb, w := range n.near {
			back, ok := g.nodes[nb].near[id]
			if !ok {
				return nil, fmt.Errorf("snapshot: link %s-%s present on one side only: %w", id, nb, ErrInconsistentState)
			}
			if g.weighted && back != w {
				return nil, fmt.Errorf("snapshot: link %s-%s weight mismatch (%g vs %g): %w", id, nb, w, back, ErrInconsistentState)
			}
		}
	}

	return g, nil
}

// Save writes g's snapshot to w as JSON. Pretty rendering indents with four
// spaces; compact emits a single line. The choice is presentation only and
// has no effect on the round-trip. Map keys marshal in sorted order.
func Save(g *Graph, w io.Writer, pretty bool) error {
	snap := Encode(g)

	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(snap, "", prettyIndent)
	} else {
		data, err = json.Marshal(snap)
	}
	if err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("snapshot: write: %w", err)
	}
	return nil
}

// Load reads a JSON snapshot from r and rebuilds the graph. The round-trip
// is exact for node set, adjacency, weights, and payloads, with the usual
// JSON caveat that payload numbers decode as float64.
func Load(r io.Reader) (*Graph, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	if snap.Nodes == nil {
		snap.Nodes = map[string]SnapshotNode{}
	}
	return Decode(&snap)
}

// SaveFile writes g to path, creating or truncating the file. The file is
// closed on every exit path; a close failure is reported when the write
// itself succeeded.
func SaveFile(g *Graph, path string, pretty bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("snapshot: close %s: %w", path, cerr)
		}
	}()
	return Save(g, f, pretty)
}

// LoadFile reads the graph stored at path.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}
