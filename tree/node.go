// Package tree renders a parsed JSON value as a collapsible tree.
//
// Build turns a value into nodes, one per object member or array element.
// Model is a Bubble Tea component that flattens the expanded nodes into rows
// and handles selection, scrolling, and toggling.
package tree

import (
	"strconv"
	"strings"

	"github.com/iw2rmb/jsonview/jsonv"
)

// Node is one object member or array element.
type Node struct {
	// Key is the member key, or the decimal index for array elements. It is
	// empty for a top-level primitive.
	Key string
	// Index is the array index, or -1 for object members.
	Index    int
	Value    *jsonv.Value
	Depth    int
	Expanded bool
	Children []*Node
	Parent   *Node

	// bare marks the unlabeled leaf of a top-level primitive.
	bare bool
}

// Build returns the top-level nodes of v. Containers yield one node per
// member or element; a primitive yields a single unlabeled leaf. Every node
// starts collapsed.
func Build(v *jsonv.Value) []*Node {
	if v == nil {
		return nil
	}
	if !v.IsContainer() {
		return []*Node{{Index: -1, Value: v, bare: true}}
	}
	return children(v, nil, 0)
}

func children(v *jsonv.Value, parent *Node, depth int) []*Node {
	var out []*Node
	switch v.Kind() {
	case jsonv.Array:
		out = make([]*Node, 0, v.Len())
		for i, item := range v.Items() {
			out = append(out, newNode(strconv.Itoa(i), i, item, parent, depth))
		}
	case jsonv.Object:
		out = make([]*Node, 0, v.Len())
		for _, m := range v.Members() {
			out = append(out, newNode(m.Key, -1, m.Value, parent, depth))
		}
	}
	return out
}

func newNode(key string, index int, v *jsonv.Value, parent *Node, depth int) *Node {
	n := &Node{Key: key, Index: index, Value: v, Depth: depth, Parent: parent}
	if v.IsContainer() {
		n.Children = children(v, n, depth+1)
	}
	return n
}

// Labeled reports whether the node is rendered with a key label.
func (n *Node) Labeled() bool { return !n.bare }

// IsContainer reports whether the node has a toggle.
func (n *Node) IsContainer() bool { return n.Value.IsContainer() }

// Toggle flips the expanded state of a container node.
func (n *Node) Toggle() {
	if n.IsContainer() {
		n.Expanded = !n.Expanded
	}
}

// Path returns the node's location as a JSONPath, e.g. $.a[0] or
// $['a b'].
func (n *Node) Path() string {
	var parts []string
	for cur := n; cur != nil; cur = cur.Parent {
		switch {
		case cur.Index >= 0:
			parts = append(parts, "["+strconv.Itoa(cur.Index)+"]")
		case cur.bare:
		case isIdentifier(cur.Key):
			parts = append(parts, "."+cur.Key)
		default:
			parts = append(parts, "["+quotePathKey(cur.Key)+"]")
		}
	}
	var sb strings.Builder
	sb.WriteByte('$')
	for i := len(parts) - 1; i >= 0; i-- {
		sb.WriteString(parts[i])
	}
	return sb.String()
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// quotePathKey writes s as a single-quoted JSONPath name with control
// characters escaped.
func quotePathKey(s string) string {
	s = strings.ReplaceAll(jsonv.Escape(s), `\"`, `"`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

// walk visits nodes depth-first in display order.
func walk(nodes []*Node, fn func(*Node)) {
	for _, n := range nodes {
		fn(n)
		walk(n.Children, fn)
	}
}

// flatten returns the nodes visible under the current expand state.
func flatten(nodes []*Node, out []*Node) []*Node {
	for _, n := range nodes {
		out = append(out, n)
		if n.Expanded {
			out = flatten(n.Children, out)
		}
	}
	return out
}
