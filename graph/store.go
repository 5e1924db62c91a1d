package graph

// Store is the read-side interface the traversal algorithms operate on.
// *Graph is the canonical implementation; anything that can enumerate
// neighbors and count nodes can stand in for it in tests.
type Store interface {
	// HasNode reports whether the store contains the node.
	HasNode(id string) bool

	// NeighborsOf returns the ids adjacent to the node, in no particular
	// order, or nil if the node is absent. Algorithms must not depend on
	// the iteration order, only on set membership.
	NeighborsOf(id string) []string

	// Size returns the number of nodes in the store.
	Size() int
}

// Compile-time assertion: *Graph satisfies Store.
var _ Store = (*Graph)(nil)
