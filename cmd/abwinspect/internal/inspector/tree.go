// Package inspector implements cmd/abwinspect's TUI model: a tree view
// over one document's fully-buffered emitted events, with image preview,
// clipboard, and open-source-file actions.
package inspector

import (
	"fmt"
	"strings"

	"github.com/pgavlin/abiword-kit/internal/dump"
)

// Node is one entry of the displayed event tree: either a structural
// open/close pair collapsed into one node with children, or a leaf
// insert event.
type Node struct {
	Label    string
	Event    dump.Event
	Children []*Node
	Depth    int
}

// BuildTree turns a flat recorded event sequence into a nested Node tree
// by pairing each Open* event with its matching Close* event (by simple
// LIFO nesting, since the emitted sequence is always well-nested per the
// core's own invariants).
func BuildTree(events []dump.Event) []*Node {
	var stack []*Node
	var roots []*Node

	push := func(n *Node) {
		if len(stack) > 0 {
			top := stack[len(stack)-1]
			top.Children = append(top.Children, n)
		} else {
			roots = append(roots, n)
		}
	}

	depth := 0
	for _, e := range events {
		switch {
		case strings.HasPrefix(e.Name, "open-"):
			n := &Node{Label: labelFor(e), Event: e, Depth: depth}
			push(n)
			stack = append(stack, n)
			depth++
		case strings.HasPrefix(e.Name, "close-"):
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			if depth > 0 {
				depth--
			}
		default:
			push(&Node{Label: labelFor(e), Event: e, Depth: depth})
		}
	}
	return roots
}

func labelFor(e dump.Event) string {
	switch e.Name {
	case "insert-text":
		return fmt.Sprintf("text %q", e.Text)
	case "insert-binary-object":
		mime, _ := e.Props["librevenge:mime-type"].(string)
		return fmt.Sprintf("binary-object (%s)", mime)
	default:
		name := strings.TrimPrefix(strings.TrimPrefix(e.Name, "open-"), "close-")
		if e.ID != 0 {
			return fmt.Sprintf("%s[%d]", name, e.ID)
		}
		return name
	}
}

// Flatten walks roots depth-first into a flat slice, the shape a list
// widget actually renders.
func Flatten(roots []*Node) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		out = append(out, n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return out
}

// IsImage reports whether n is an insert-binary-object node carrying
// image data.
func IsImage(n *Node) bool {
	return n.Event.Name == "insert-binary-object"
}

// ImageData returns the raw bytes of an image node, if present.
func ImageData(n *Node) ([]byte, bool) {
	data, ok := n.Event.Props["office:binary-data"].([]byte)
	return data, ok
}
