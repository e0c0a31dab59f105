package roadmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMermaid_Flat(t *testing.T) {
	tree := mustTree(t, `{"A": ["x", "y"]}`)

	want := "graph LR;\n" +
		"    node0[\"A\"];\n" +
		"    node1[\"x\"];\n" +
		"    node0 --> node1;\n" +
		"    node2[\"y\"];\n" +
		"    node0 --> node2;\n"

	assert.Equal(t, want, EncodeMermaid(tree))
}

func TestEncodeMermaid_Nested(t *testing.T) {
	tree := mustTree(t, `{"A": ["x", {"B": ["y"]}]}`)

	want := "graph LR;\n" +
		"    node0[\"A\"];\n" +
		"    node1[\"x\"];\n" +
		"    node0 --> node1;\n" +
		"    node2[\"B\"];\n" +
		"    node0 --> node2;\n" +
		"    node3[\"y\"];\n" +
		"    node2 --> node3;\n"

	assert.Equal(t, want, EncodeMermaid(tree))
}

func TestEncodeMermaid_Empty(t *testing.T) {
	assert.Equal(t, "graph LR;\n", EncodeMermaid(nil))
	assert.Equal(t, "graph LR;\n", EncodeMermaid(Tree{}))
}

func TestEncodeMermaid_TopDown(t *testing.T) {
	out := NewEncoder(Options{Direction: TopDown}).Mermaid(mustTree(t, `{"A": []}`))
	assert.True(t, strings.HasPrefix(out, "graph TD;\n"))
}

func TestEncodeMermaid_Quoting(t *testing.T) {
	tree := mustTree(t, `{"Waves & \"Sound\"": ["a<b>", "Café", "back\\slash"]}`)
	out := EncodeMermaid(tree)

	assert.Contains(t, out, `node0["Waves & \"Sound\""];`)
	assert.Contains(t, out, `node1["a<b>"];`)
	assert.Contains(t, out, `node2["Café"];`)
	assert.Contains(t, out, `node3["back\\slash"];`)
}

func TestEncoder_DuplicateLabelsGetUniqueIDs(t *testing.T) {
	tree := mustTree(t, `{"A": ["x", "x", {"A": ["x"]}], "B": ["x"]}`)
	g := NewEncoder(Options{}).Graph(tree)

	seen := make(map[string]bool)
	for _, n := range g.Nodes {
		assert.False(t, seen[n.ID], "duplicate id %s", n.ID)
		seen[n.ID] = true
	}
	assert.Len(t, seen, 7)
}

func TestEncoder_GraphMatchesStats(t *testing.T) {
	inputs := []string{
		`{}`,
		`{"A": ["x", "y"]}`,
		`{"A": ["x", {"B": ["y", {"C": ["z"]}]}], "D": []}`,
		`{"A": [{"B": []}, {"C": ["p", "q"]}], "E": ["r"]}`,
	}

	for _, in := range inputs {
		tree := mustTree(t, in)
		g := NewEncoder(Options{}).Graph(tree)
		stats := tree.Stats()

		assert.Len(t, g.Nodes, stats.Nodes(), in)
		assert.Len(t, g.Edges(), stats.Edges, in)

		out := EncodeMermaid(tree)
		assert.Equal(t, stats.Edges, strings.Count(out, " --> "), in)
	}
}

func TestEncoder_EdgesPointAtEarlierNodes(t *testing.T) {
	tree := mustTree(t, `{"A": ["x", {"B": ["y", {"C": ["z"]}]}], "D": ["w"]}`)
	g := NewEncoder(Options{}).Graph(tree)

	index := make(map[string]int)
	for i, n := range g.Nodes {
		index[n.ID] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, index[e.From], index[e.To])
	}

	assert.Equal(t, "", g.Nodes[0].Parent)
	assert.False(t, g.Nodes[0].Leaf)
	last := g.Nodes[len(g.Nodes)-1]
	assert.Equal(t, "w", last.Label)
	assert.True(t, last.Leaf)
}

func TestEncodeMermaid_Deterministic(t *testing.T) {
	tree := mustTree(t, `{"Z": ["1", {"Y": ["2"]}], "A": ["3"]}`)
	first := EncodeMermaid(tree)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, EncodeMermaid(tree))
	}
}

func TestEncoder_DOT(t *testing.T) {
	tree := mustTree(t, `{"A": ["x"]}`)
	out := NewEncoder(Options{Direction: TopDown}).DOT(tree)

	assert.True(t, strings.HasPrefix(out, "digraph roadmap {\n"))
	assert.Contains(t, out, "rankdir=TB;")
	assert.Contains(t, out, `node0 [label="A", style=filled, fillcolor=lightblue];`)
	assert.Contains(t, out, `node1 [label="x"];`)
	assert.Contains(t, out, "node0 -> node1;")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestEncoder_ASCII(t *testing.T) {
	tree := mustTree(t, `{"A": ["x", {"B": ["y"]}], "C": ["z"]}`)

	want := "├── A\n" +
		"│   ├── x\n" +
		"│   └── B\n" +
		"│       └── y\n" +
		"└── C\n" +
		"    └── z\n"

	assert.Equal(t, want, NewEncoder(Options{}).ASCII(tree))
}
