package roadmap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Tree is an ordered mapping from category label to its topic list.
// Order is display order and survives a JSON round trip.
type Tree []Category

// Category is one key of a Tree together with its items.
type Category struct {
	Label string
	Items []Item
}

// Item is either a leaf topic or a nested tree.
type Item struct {
	label  string
	branch Tree
	nested bool
}

// Leaf returns a leaf item with the given label.
func Leaf(label string) Item {
	return Item{label: label}
}

// Branch returns an item holding a nested tree.
func Branch(t Tree) Item {
	return Item{branch: t, nested: true}
}

// IsBranch reports whether the item is a nested tree.
func (i Item) IsBranch() bool {
	return i.nested
}

// Label returns the leaf label. It is empty for branches.
func (i Item) Label() string {
	return i.label
}

// Tree returns the nested tree. It is nil for leaves.
func (i Item) Tree() Tree {
	return i.branch
}

// Stats holds the size of a tree.
type Stats struct {
	Categories int
	Leaves     int
	Edges      int
}

// Nodes returns the number of diagram nodes the tree produces.
func (s Stats) Nodes() int {
	return s.Categories + s.Leaves
}

// Stats counts categories, leaves and parent-child relations.
func (t Tree) Stats() Stats {
	var s Stats
	t.count(&s, false)
	return s
}

func (t Tree) count(s *Stats, nested bool) {
	for _, c := range t {
		s.Categories++
		if nested {
			s.Edges++
		}
		for _, item := range c.Items {
			if item.IsBranch() {
				item.Tree().count(s, true)
				continue
			}
			s.Leaves++
			s.Edges++
		}
	}
}

// Leaves returns every leaf label in pre-order.
func (t Tree) Leaves() []string {
	var out []string
	for _, c := range t {
		for _, item := range c.Items {
			if item.IsBranch() {
				out = append(out, item.Tree().Leaves()...)
				continue
			}
			out = append(out, item.Label())
		}
	}
	return out
}

// IsEmpty reports whether the tree has no categories.
func (t Tree) IsEmpty() bool {
	return len(t) == 0
}

var errNotObject = errors.New("roadmap must be a JSON object")

// UnmarshalJSON decodes a nested label object preserving key order.
//
// Model output is not always well shaped, so the decoder is lenient:
// a bare string becomes a single leaf, a bare object a single branch,
// null an empty list, and numbers or booleans become leaves carrying
// their JSON text. Nested arrays are flattened into the parent list.
func (t *Tree) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*t = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errNotObject
	}

	tree, err := decodeObject(dec)
	if err != nil {
		return err
	}
	*t = tree
	return nil
}

// decodeObject reads the members of an object whose opening brace was consumed.
func decodeObject(dec *json.Decoder) (Tree, error) {
	tree := Tree{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		items, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", key, err)
		}
		tree = append(tree, Category{Label: key, Items: items})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return tree, nil
}

// decodeValue reads a category value and normalises it to an item list.
func decodeValue(dec *json.Decoder) ([]Item, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '[':
			return decodeList(dec)
		case '{':
			sub, err := decodeObject(dec)
			if err != nil {
				return nil, err
			}
			return []Item{Branch(sub)}, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", v)
	case nil:
		return nil, nil
	default:
		return []Item{Leaf(scalarText(v))}, nil
	}
}

// decodeList reads list elements whose opening bracket was consumed.
func decodeList(dec *json.Decoder) ([]Item, error) {
	var items []Item
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				sub, err := decodeObject(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, Branch(sub))
			case '[':
				inner, err := decodeList(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, inner...)
			default:
				return nil, fmt.Errorf("unexpected delimiter %v", v)
			}
		case nil:
			// skip nulls
		default:
			items = append(items, Leaf(scalarText(v)))
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return items, nil
}

func scalarText(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprint(s)
	}
}

// MarshalJSON encodes the tree as a nested object in display order.
func (t Tree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	t.writeJSON(&buf)
	return buf.Bytes(), nil
}

func (t Tree) writeJSON(buf *bytes.Buffer) {
	buf.WriteByte('{')
	for i, c := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(quote(c.Label))
		buf.WriteString(":[")
		for j, item := range c.Items {
			if j > 0 {
				buf.WriteByte(',')
			}
			if item.IsBranch() {
				item.Tree().writeJSON(buf)
				continue
			}
			buf.WriteString(quote(item.Label()))
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
}

// quote returns s as a JSON string literal without HTML escaping.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
