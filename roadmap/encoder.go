package roadmap

import (
	"fmt"
	"strings"
)

// Direction is the Mermaid flowchart layout direction.
type Direction string

const (
	// LeftRight lays the roadmap out horizontally.
	LeftRight Direction = "LR"
	// TopDown lays the roadmap out vertically.
	TopDown Direction = "TD"
)

// Options configures diagram generation.
type Options struct {
	// Direction of the diagram (default "LR").
	Direction Direction
}

// Node is one diagram node. Parent is empty for top-level categories.
type Node struct {
	ID     string
	Label  string
	Parent string
	Leaf   bool
}

// Edge is a directed parent to child relation.
type Edge struct {
	From string
	To   string
}

// Graph is the flattened form of a Tree, in emission order.
type Graph struct {
	Nodes []Node
}

// Edges returns one edge per node that has a parent, in emission order.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.Parent != "" {
			edges = append(edges, Edge{From: n.Parent, To: n.ID})
		}
	}
	return edges
}

// Encoder converts trees to diagram source.
type Encoder struct {
	opts Options
}

// NewEncoder creates an encoder with the given options.
func NewEncoder(opts Options) *Encoder {
	if opts.Direction == "" {
		opts.Direction = LeftRight
	}
	return &Encoder{opts: opts}
}

// EncodeMermaid renders t as a left-to-right Mermaid graph.
func EncodeMermaid(t Tree) string {
	return NewEncoder(Options{}).Mermaid(t)
}

// Graph flattens t. Identifiers come from one counter shared by the whole
// traversal, so duplicate labels never collide.
func (e *Encoder) Graph(t Tree) *Graph {
	g := &Graph{}
	counter := 0
	g.add(t, "", &counter)
	return g
}

func (g *Graph) add(t Tree, parent string, counter *int) {
	for _, c := range t {
		id := nodeID(counter)
		g.Nodes = append(g.Nodes, Node{ID: id, Label: c.Label, Parent: parent})

		for _, item := range c.Items {
			if item.IsBranch() {
				g.add(item.Tree(), id, counter)
				continue
			}
			g.Nodes = append(g.Nodes, Node{
				ID:     nodeID(counter),
				Label:  item.Label(),
				Parent: id,
				Leaf:   true,
			})
		}
	}
}

func nodeID(counter *int) string {
	id := fmt.Sprintf("node%d", *counter)
	*counter++
	return id
}

// Mermaid generates Mermaid source: a graph header followed by each node
// declaration and its incoming edge.
func (e *Encoder) Mermaid(t Tree) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("graph %s;\n", e.opts.Direction))

	for _, n := range e.Graph(t).Nodes {
		sb.WriteString(fmt.Sprintf("    %s[%s];\n", n.ID, quote(n.Label)))
		if n.Parent != "" {
			sb.WriteString(fmt.Sprintf("    %s --> %s;\n", n.Parent, n.ID))
		}
	}

	return sb.String()
}

// DOT generates a Graphviz representation of the tree.
func (e *Encoder) DOT(t Tree) string {
	var sb strings.Builder

	sb.WriteString("digraph roadmap {\n")
	sb.WriteString(fmt.Sprintf("    rankdir=%s;\n", dotRankDir(e.opts.Direction)))
	sb.WriteString("    node [shape=box];\n")

	for _, n := range e.Graph(t).Nodes {
		if n.Leaf {
			sb.WriteString(fmt.Sprintf("    %s [label=%s];\n", n.ID, quote(n.Label)))
		} else {
			sb.WriteString(fmt.Sprintf("    %s [label=%s, style=filled, fillcolor=lightblue];\n", n.ID, quote(n.Label)))
		}
		if n.Parent != "" {
			sb.WriteString(fmt.Sprintf("    %s -> %s;\n", n.Parent, n.ID))
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

func dotRankDir(d Direction) string {
	if d == TopDown {
		return "TB"
	}
	return string(d)
}

// ASCII generates a box-drawing tree for terminals.
func (e *Encoder) ASCII(t Tree) string {
	var sb strings.Builder
	drawASCII(asciiNodes(t), "", &sb)
	return sb.String()
}

type asciiNode struct {
	label    string
	children []asciiNode
}

// asciiNodes inlines branch categories as children of their parent, which
// is the same shape the edge list has.
func asciiNodes(t Tree) []asciiNode {
	nodes := make([]asciiNode, 0, len(t))
	for _, c := range t {
		n := asciiNode{label: c.Label}
		for _, item := range c.Items {
			if item.IsBranch() {
				n.children = append(n.children, asciiNodes(item.Tree())...)
				continue
			}
			n.children = append(n.children, asciiNode{label: item.Label()})
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// drawASCII recursively draws nodes with their connectors.
func drawASCII(nodes []asciiNode, prefix string, sb *strings.Builder) {
	for i, n := range nodes {
		connector, next := "├── ", prefix+"│   "
		if i == len(nodes)-1 {
			connector, next = "└── ", prefix+"    "
		}
		sb.WriteString(prefix + connector + n.label + "\n")
		drawASCII(n.children, next, sb)
	}
}
