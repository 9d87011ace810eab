// Package response translates supplier API responses and orderline
// update pushes into standardized supplying-agency messages.
package response

import (
	"github.com/PTFS-Europe/mod-ill-connector-bldss/xmlutil"
)

// responseTypes are the result discriminators the translator knows how
// to handle.
var responseTypes = []string{"newOrder"}

// Response is a read-only view over a parsed supplier response. The
// envelope is always timestamp, status and message; orders additionally
// carry a result subtree.
type Response struct {
	Timestamp string
	Status    string
	Message   string

	root   *xmlutil.Node
	result *xmlutil.Node
}

// Parse reads a supplier response document. Timestamp, status and
// message must each occur exactly once.
func Parse(doc string) (*Response, error) {
	root, err := xmlutil.ParseString(doc)
	if err != nil {
		return nil, err
	}
	r := &Response{root: root, result: root.First("result")}
	for _, field := range []struct {
		name string
		dst  *string
	}{
		{"timestamp", &r.Timestamp},
		{"status", &r.Status},
		{"message", &r.Message},
	} {
		node, err := root.One(field.name)
		if err != nil {
			return nil, err
		}
		*field.dst = node.Text
	}
	return r, nil
}

// ResponseType returns the discriminator of the result payload, or ""
// when the response carries none we recognise.
func (r *Response) ResponseType() string {
	if r.result == nil {
		return ""
	}
	for _, t := range responseTypes {
		if r.result.First(t) != nil {
			return t
		}
	}
	return ""
}

// Result returns the result subtree flattened to JSON-shaped data, or
// nil when the response has no result.
func (r *Response) Result() any {
	if r.result == nil {
		return nil
	}
	return r.result.JSONMap()
}

// CustomerReference is the requester's own request id echoed back.
func (r *Response) CustomerReference() string {
	return r.root.TextOf("customerReference")
}

// Orderline is the supplier's id for the created order.
func (r *Response) Orderline() string {
	node := r.root.First("orderline")
	if node == nil {
		return ""
	}
	if node.Text != "" {
		return node.Text
	}
	return node.Attr("id")
}

// EstimatedDespatchDate is the day the supplier expects to despatch,
// in their dd/mm/yyyy rendering.
func (r *Response) EstimatedDespatchDate() string {
	return r.root.TextOf("estimatedDespatchDate")
}

// Note is any free-text note attached to the result.
func (r *Response) Note() string {
	return r.root.TextOf("note")
}
