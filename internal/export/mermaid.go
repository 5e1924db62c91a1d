// Package export renders graphs into presentation formats for the CLI.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dusk-indust/graphkit/graph"
)

// GenerateMermaid produces a Mermaid "graph TD" diagram from a graph. Nodes
// are declared first, sorted by id so the output is deterministic; links
// render undirected (---) with a weight label on weighted graphs. Each
// undirected link is emitted once.
func GenerateMermaid(g *graph.Graph) string {
	ids := g.Nodes()
	sort.Strings(ids)

	// node id → Mermaid ID (alphanumeric only, ids may contain anything)
	nodeIDs := make(map[string]string, len(ids))
	for i, id := range ids {
		nodeIDs[id] = fmt.Sprintf("N%d", i)
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, id := range ids {
		sb.WriteString(fmt.Sprintf("  %s[%q]\n", nodeIDs[id], id))
	}

	for _, id := range ids {
		links := g.LinksOf(id)
		sort.Slice(links, func(i, j int) bool { return links[i].B < links[j].B })
		for _, l := range links {
			if l.A >= l.B {
				continue // the mirror side emits it
			}
			if g.Weighted() {
				sb.WriteString(fmt.Sprintf("  %s ---|%g| %s\n", nodeIDs[l.A], l.Weight, nodeIDs[l.B]))
			} else {
				sb.WriteString(fmt.Sprintf("  %s --- %s\n", nodeIDs[l.A], nodeIDs[l.B]))
			}
		}
	}

	return sb.String()
}
