package order

import (
	"fmt"
)

// Request describes one supplier API call: the HTTP method, the path
// under the API root, whether the call must be signed, its query
// parameters and its serialized body. Built once per call and not
// mutated after signing.
type Request struct {
	Method    string
	Path      string
	NeedsAuth bool
	Params    map[string]string
	Payload   string
}

// NewOrder describes an order submission carrying the serialized
// NewOrderRequest document.
func NewOrder(payload string) Request {
	return Request{
		Method:    "POST",
		Path:      "/api/orders",
		NeedsAuth: true,
		Payload:   payload,
	}
}

// NewCancel describes the withdrawal of an existing order. The order id
// rides in the path and also as an "id" parameter so it forms part of
// the signature parameter string, see the note in "Parameter String
// Generation" at
// https://apitest.bldss.bl.uk/docs/guide/authentication.html#authorisationTesting
func NewCancel(supplierRequestId string) Request {
	return Request{
		Method:    "DELETE",
		Path:      "/api/orders/" + supplierRequestId,
		NeedsAuth: true,
		Params:    map[string]string{"id": supplierRequestId},
	}
}

// referenceEndpoints maps the reference-data getter names the controller
// exposes to their supplier paths. Only the price list needs signing.
var referenceEndpoints = map[string]Request{
	"prices":   {Method: "GET", Path: "/api/prices", NeedsAuth: true},
	"services": {Method: "GET", Path: "/api/reference/services"},
	"formats":  {Method: "GET", Path: "/api/reference/formats"},
	"speeds":   {Method: "GET", Path: "/api/reference/speeds"},
	"quality":  {Method: "GET", Path: "/api/reference/quality"},
}

// NewReference describes a reference-data lookup by getter name.
func NewReference(name string) (Request, error) {
	req, ok := referenceEndpoints[name]
	if !ok {
		return Request{}, fmt.Errorf("unknown reference endpoint %q", name)
	}
	return req, nil
}
