package graph

// Bulk operations apply their singular counterpart element by element,
// skipping failures, and report how many succeeded. Batches are best-effort
// and non-atomic: a failure partway through never rolls back earlier
// applications.

// AddNodes inserts each id in turn and returns the number actually added.
// Duplicates within the list, and ids already present, are skipped.
func (g *Graph) AddNodes(ids []string) int {
	added := 0
	for _, id := range ids {
		if g.AddNode(id) {
			added++
		}
	}
	return added
}

// RemoveNodes removes each id in turn and returns the number actually
// removed.
func (g *Graph) RemoveNodes(ids []string) int {
	removed := 0
	for _, id := range ids {
		if g.RemoveNode(id) {
			removed++
		}
	}
	return removed
}

// AddLinks inserts each link in turn and returns the number actually added.
// A zero Weight means "unspecified" and takes the DefaultWeight on weighted
// graphs.
func (g *Graph) AddLinks(links []Link) int {
	added := 0
	for _, l := range links {
		w := l.Weight
		if w == 0 {
			w = DefaultWeight
		}
		if g.AddWeightedLink(l.A, l.B, w) {
			added++
		}
	}
	return added
}

// RemoveLinks removes each link in turn and returns the number actually
// removed. Weights on the entries are ignored.
func (g *Graph) RemoveLinks(links []Link) int {
	removed := 0
	for _, l := range links {
		if g.RemoveLink(l.A, l.B) {
			removed++
		}
	}
	return removed
}

// AddPayloads attaches each payload to its node and returns the number
// actually attached. Entries for absent nodes, and nil payloads, are skipped.
func (g *Graph) AddPayloads(payloads map[string]any) int {
	added := 0
	for id, p := range payloads {
		if g.AddPayload(id, p) {
			added++
		}
	}
	return added
}

// RemovePayloads clears the payload of each node and returns the number of
// nodes that existed (clearing an already empty payload still counts).
func (g *Graph) RemovePayloads(ids []string) int {
	removed := 0
	for _, id := range ids {
		if g.RemovePayload(id) {
			removed++
		}
	}
	return removed
}
