package graph

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// intGraph builds an unweighted graph with nodes "0".."n-1" and the given
// links, expressed as int pairs for readability.
func intGraph(t *testing.T, n int, links [][2]int) *Graph {
	t.Helper()
	g := New()
	for i := 0; i < n; i++ {
		require.True(t, g.AddNode(strconv.Itoa(i)))
	}
	for _, l := range links {
		require.True(t, g.AddLink(strconv.Itoa(l[0]), strconv.Itoa(l[1])),
			"link %d-%d should be added", l[0], l[1])
	}
	return g
}

func TestAddNode_Duplicate(t *testing.T) {
	g := New()
	assert.True(t, g.AddNode("a"))
	assert.False(t, g.AddNode("a"), "re-adding an existing node is a no-op")
	assert.Equal(t, 1, g.Size())
}

func TestRemoveNode_CascadesLinks(t *testing.T) {
	// Removing X must leave no remaining node with X in its neighbor set.
	g := intGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}})

	require.True(t, g.RemoveNode("0"))

	assert.False(t, g.HasNode("0"))
	assert.Equal(t, 3, g.Size())
	for _, id := range g.Nodes() {
		assert.NotContains(t, g.NeighborsOf(id), "0",
			"node %s still references the removed node", id)
	}
	// The untouched link survives.
	assert.True(t, g.AreNeighbors("1", "2"))

	assert.False(t, g.RemoveNode("0"), "removing an absent node is a no-op")
}

func TestAddLink_MissingEndpoint(t *testing.T) {
	g := New()
	g.AddNode("a")

	assert.False(t, g.AddLink("a", "ghost"))
	assert.False(t, g.AddLink("ghost", "a"))
	assert.Empty(t, g.NeighborsOf("a"), "failed link must not leave a one-sided entry")
}

func TestAddLink_SelfRejected(t *testing.T) {
	g := New()
	g.AddNode("a")

	assert.False(t, g.AddLink("a", "a"))
	assert.False(t, g.AreNeighbors("a", "a"))
}

func TestLinks_SymmetryInvariant(t *testing.T) {
	// AreNeighbors(a,b) == AreNeighbors(b,a) after every mutation step.
	g := intGraph(t, 5, nil)

	symmetric := func() {
		t.Helper()
		for _, a := range g.Nodes() {
			for _, b := range g.Nodes() {
				assert.Equal(t, g.AreNeighbors(a, b), g.AreNeighbors(b, a),
					"asymmetry between %s and %s", a, b)
			}
		}
	}

	g.AddLink("0", "1")
	symmetric()
	g.AddLink("1", "2")
	g.AddLink("2", "3")
	symmetric()
	g.RemoveLink("1", "2")
	symmetric()
	g.RemoveNode("3")
	symmetric()
}

func TestRemoveLink_BothSidesOrNeither(t *testing.T) {
	g := intGraph(t, 3, [][2]int{{0, 1}})

	assert.False(t, g.RemoveLink("0", "2"), "not linked")
	assert.False(t, g.RemoveLink("0", "ghost"), "absent endpoint")

	assert.True(t, g.RemoveLink("1", "0"))
	assert.False(t, g.AreNeighbors("0", "1"))
	assert.False(t, g.AreNeighbors("1", "0"))
	assert.False(t, g.RemoveLink("0", "1"), "already removed")
}

func TestWeighted_ReplaceOnReAdd(t *testing.T) {
	g := NewWeighted()
	g.AddNode("a")
	g.AddNode("b")

	require.True(t, g.AddWeightedLink("a", "b", 5.0))
	require.True(t, g.AddWeightedLink("a", "b", 9.0), "re-add replaces, not rejects")

	assert.Len(t, g.LinksOf("a"), 1, "exactly one link between a and b")
	w, ok := g.WeightOf("a", "b")
	require.True(t, ok)
	assert.Equal(t, 9.0, w)
	w, ok = g.WeightOf("b", "a")
	require.True(t, ok)
	assert.Equal(t, 9.0, w, "weight replaced on both sides")
}

func TestWeighted_DefaultWeight(t *testing.T) {
	g := NewWeighted()
	g.AddNode("a")
	g.AddNode("b")

	require.True(t, g.AddLink("a", "b"))
	w, ok := g.WeightOf("a", "b")
	require.True(t, ok)
	assert.Equal(t, DefaultWeight, w)
}

func TestUnweighted_NeverReportsWeight(t *testing.T) {
	g := New()
	g.AddNode("a")
	g.AddNode("b")

	// A supplied weight is ignored on an unweighted graph.
	require.True(t, g.AddWeightedLink("a", "b", 7.5))

	_, ok := g.WeightOf("a", "b")
	assert.False(t, ok)

	links := g.LinksOf("a")
	require.Len(t, links, 1)
	assert.Zero(t, links[0].Weight)
}

func TestPayload_Lifecycle(t *testing.T) {
	g := New()
	g.AddNode("a")

	assert.False(t, g.HasPayload("a"))
	assert.Nil(t, g.PayloadOf("a"))

	assert.False(t, g.AddPayload("a", nil), "nil is the absent sentinel, not a payload")
	assert.False(t, g.AddPayload("ghost", 1), "absent node")

	assert.True(t, g.AddPayload("a", 0.12))
	assert.True(t, g.HasPayload("a"))
	assert.Equal(t, 0.12, g.PayloadOf("a"))

	assert.True(t, g.AddPayload("a", "replaced"), "overwrite existing payload")
	assert.Equal(t, "replaced", g.PayloadOf("a"))

	assert.True(t, g.RemovePayload("a"))
	assert.Nil(t, g.PayloadOf("a"))
	assert.True(t, g.RemovePayload("a"), "clearing an empty payload still succeeds")
	assert.False(t, g.RemovePayload("ghost"))
}

func TestNeighborsOf_AbsentVsIsolated(t *testing.T) {
	g := New()
	g.AddNode("lonely")

	assert.Nil(t, g.NeighborsOf("ghost"))
	assert.Nil(t, g.LinksOf("ghost"))
	assert.NotNil(t, g.NeighborsOf("lonely"))
	assert.Empty(t, g.NeighborsOf("lonely"))
}

func TestStats(t *testing.T) {
	g := intGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	st := g.Stats()
	assert.Equal(t, GraphStats{NodeCount: 4, LinkCount: 3, Weighted: false}, st)

	g.RemoveNode("1")
	st = g.Stats()
	assert.Equal(t, 3, st.NodeCount)
	assert.Equal(t, 1, st.LinkCount)
}

func TestString_SortedAndComplete(t *testing.T) {
	g := New()
	g.AddNode("b")
	g.AddNode("a")
	g.AddLink("a", "b")
	g.AddPayload("a", 42)

	want := "node: a  near: [b]  payload: 42\nnode: b  near: [a]  payload: <nil>\n"
	assert.Equal(t, want, g.String())
}
