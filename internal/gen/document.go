package gen

import (
	"encoding/json"
	"strings"
)

// indentUnit is the indentation of one nesting level.
const indentUnit = "  "

// Node is one key of the generated document. A node is a leaf (Expr), a
// container (Children) or a projection (Projection with Children rendered
// once per element).
type Node struct {
	Key        string
	Expr       string
	Projection string
	Children   []*Node

	index map[string]*Node
}

func newNode(key string) *Node {
	return &Node{Key: key}
}

// IsLeaf reports whether the node holds an expression.
func (n *Node) IsLeaf() bool {
	return n.Expr != ""
}

// IsEmpty reports whether nothing has been placed at or below the node.
func (n *Node) IsEmpty() bool {
	return n.Expr == "" && n.Projection == "" && len(n.Children) == 0
}

// Child returns the child named key, if any.
func (n *Node) Child(key string) (*Node, bool) {
	c, ok := n.index[key]

	return c, ok
}

// Lookup follows path from n.
func (n *Node) Lookup(path ...string) (*Node, bool) {
	cur := n

	for _, key := range path {
		next, ok := cur.Child(key)
		if !ok {
			return nil, false
		}

		cur = next
	}

	return cur, true
}

// child returns the child named key, creating it on demand.
func (n *Node) child(key string) *Node {
	if c, ok := n.index[key]; ok {
		return c
	}

	if n.index == nil {
		n.index = make(map[string]*Node)
	}

	c := newNode(key)
	n.index[key] = c
	n.Children = append(n.Children, c)

	return c
}

func (n *Node) reset() {
	n.Expr = ""
	n.Projection = ""
	n.Children = nil
	n.index = nil
}

// Document is the ordered tree of the target document.
type Document struct {
	Root *Node
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{Root: newNode("")}
}

// Lookup returns the node at a dotted target path.
func (d *Document) Lookup(path string) (*Node, bool) {
	if path == "" {
		return d.Root, true
	}

	return d.Root.Lookup(strings.Split(path, ".")...)
}

// String renders the document as an expression body.
func (d *Document) String() string {
	var sb strings.Builder

	writeObject(&sb, d.Root.Children, 0)

	return sb.String()
}

func writeObject(sb *strings.Builder, children []*Node, depth int) {
	if len(children) == 0 {
		sb.WriteString("{}")

		return
	}

	sb.WriteString("{\n")

	for i, c := range children {
		sb.WriteString(strings.Repeat(indentUnit, depth+1))
		sb.WriteString(quoteString(c.Key))
		sb.WriteString(": ")

		switch {
		case c.IsLeaf():
			sb.WriteString(c.Expr)
		case c.Projection != "":
			sb.WriteString(c.Projection)
			sb.WriteString(".")
			writeObject(sb, c.Children, depth+1)
			sb.WriteString(keepArray)
		default:
			writeObject(sb, c.Children, depth+1)
		}

		if i < len(children)-1 {
			sb.WriteString(",")
		}

		sb.WriteString("\n")
	}

	sb.WriteString(strings.Repeat(indentUnit, depth))
	sb.WriteString("}")
}

// quoteString renders s as a JSON string literal.
func quoteString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `"` + s + `"`
	}

	return string(b)
}
