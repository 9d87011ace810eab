// Package xmlutil parses XML documents into a generic element tree and
// provides strict-shape accessors over it. Supplier responses are not
// covered by a schema we control, so the translators navigate them
// element by element and fail loudly when the document shape is off.
package xmlutil

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// ShapeError reports a document that does not have the expected element
// structure.
type ShapeError struct {
	Path    string
	Message string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected document shape at %s: %s", e.Path, e.Message)
}

// Node is one element in a parsed document: its name, attributes,
// character data and child elements in document order.
type Node struct {
	Name     string
	Attrs    map[string]string
	Text     string
	Children []*Node
}

// UnmarshalXML builds the subtree rooted at the current element.
func (n *Node) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	n.Name = start.Name.Local
	if len(start.Attr) > 0 {
		n.Attrs = make(map[string]string, len(start.Attr))
		for _, a := range start.Attr {
			n.Attrs[a.Name.Local] = a.Value
		}
	}
	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := &Node{}
			if err := child.UnmarshalXML(d, t); err != nil {
				return err
			}
			n.Children = append(n.Children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			n.Text = strings.TrimSpace(text.String())
			return nil
		}
	}
}

// Parse reads an XML document and returns its root element.
func Parse(r io.Reader) (*Node, error) {
	root := &Node{}
	if err := xml.NewDecoder(r).Decode(root); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return root, nil
}

// ParseString is Parse over a string.
func ParseString(doc string) (*Node, error) {
	return Parse(bytes.NewReader([]byte(doc)))
}

// One returns the single descendant with the given name, searching the
// whole subtree. Zero or multiple matches are a ShapeError.
func (n *Node) One(name string) (*Node, error) {
	matches := n.all(name, nil)
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, &ShapeError{Path: n.Name, Message: fmt.Sprintf("missing element %q", name)}
	default:
		return nil, &ShapeError{Path: n.Name, Message: fmt.Sprintf("%d occurrences of element %q, want one", len(matches), name)}
	}
}

// First returns the first descendant with the given name, or nil.
func (n *Node) First(name string) *Node {
	matches := n.all(name, nil)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

func (n *Node) all(name string, acc []*Node) []*Node {
	for _, child := range n.Children {
		if child.Name == name {
			acc = append(acc, child)
		}
		acc = child.all(name, acc)
	}
	return acc
}

// TextOf returns the text of the first descendant with the given name,
// or "" when absent.
func (n *Node) TextOf(name string) string {
	if child := n.First(name); child != nil {
		return child.Text
	}
	return ""
}

// Attr returns the named attribute, or "".
func (n *Node) Attr(name string) string {
	return n.Attrs[name]
}

// JSONMap flattens the subtree into JSON-shaped data. Leaf elements
// become strings, repeated element names become arrays, attributes are
// dropped. Callers hand the result to the standardized model untouched.
func (n *Node) JSONMap() any {
	if len(n.Children) == 0 {
		return n.Text
	}
	out := make(map[string]any)
	for _, child := range n.Children {
		value := child.JSONMap()
		if existing, ok := out[child.Name]; ok {
			if arr, ok := existing.([]any); ok {
				out[child.Name] = append(arr, value)
			} else {
				out[child.Name] = []any{existing, value}
			}
		} else {
			out[child.Name] = value
		}
	}
	return out
}
