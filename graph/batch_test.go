package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNodes_SkipsDuplicates(t *testing.T) {
	g := New()
	g.AddNode("a")

	added := g.AddNodes([]string{"a", "b", "c", "b"})
	assert.Equal(t, 2, added, "one pre-existing id and one in-list duplicate are skipped")
	assert.Equal(t, 3, g.Size())
}

func TestAddLinks_BestEffort(t *testing.T) {
	// A failure inside the batch never rolls back earlier successes.
	g := New()
	g.AddNodes([]string{"a", "b", "c"})

	added := g.AddLinks([]Link{
		{A: "a", B: "b"},
		{A: "a", B: "ghost"}, // skipped: absent endpoint
		{A: "c", B: "c"},     // skipped: self-link
		{A: "b", B: "c"},
	})
	assert.Equal(t, 2, added)
	assert.True(t, g.AreNeighbors("a", "b"))
	assert.True(t, g.AreNeighbors("b", "c"))
}

func TestAddLinks_WeightedDefaults(t *testing.T) {
	g := NewWeighted()
	g.AddNodes([]string{"a", "b", "c"})

	added := g.AddLinks([]Link{
		{A: "a", B: "b", Weight: 2.5},
		{A: "b", B: "c"}, // unspecified weight takes the default
	})
	require.Equal(t, 2, added)

	w, ok := g.WeightOf("a", "b")
	require.True(t, ok)
	assert.Equal(t, 2.5, w)
	w, ok = g.WeightOf("b", "c")
	require.True(t, ok)
	assert.Equal(t, DefaultWeight, w)
}

func TestRemoveLinksAndNodes_Counts(t *testing.T) {
	g := New()
	g.AddNodes([]string{"a", "b", "c"})
	g.AddLinks([]Link{{A: "a", B: "b"}, {A: "b", B: "c"}})

	removed := g.RemoveLinks([]Link{
		{A: "a", B: "b"},
		{A: "a", B: "c"}, // never linked
	})
	assert.Equal(t, 1, removed)

	assert.Equal(t, 2, g.RemoveNodes([]string{"a", "ghost", "b"}))
	assert.Equal(t, 1, g.Size())
}

func TestPayloadBatches(t *testing.T) {
	g := New()
	g.AddNodes([]string{"a", "b"})

	added := g.AddPayloads(map[string]any{
		"a":     1,
		"b":     "two",
		"ghost": 3, // skipped: absent node
	})
	assert.Equal(t, 2, added)

	removed := g.RemovePayloads([]string{"a", "b", "ghost"})
	assert.Equal(t, 2, removed)
	assert.False(t, g.HasPayload("a"))
	assert.False(t, g.HasPayload("b"))
}
