// Package order builds the supplier's new-order XML payload from a
// standardized action payload and describes the supplier API calls the
// module can make.
package order

import (
	"github.com/PTFS-Europe/mod-ill-connector-bldss/iso18626"
)

// Metadata groups the bibliographic and publication info carried by a
// submission or by a selected search result.
type Metadata struct {
	BibliographicInfo iso18626.BibliographicInfo `json:"BibliographicInfo"`
	PublicationInfo   iso18626.PublicationInfo   `json:"PublicationInfo"`
}

// ServiceSelection is the caller's choice of delivery service options.
type ServiceSelection struct {
	Format  string `json:"format"`
	Speed   string `json:"speed"`
	Quality string `json:"quality"`
}

// ActionPayload is the standardized input to an order submission. The
// submission metadata always exists; SelectedResult is present when the
// requester picked a record from a supplier search and its fields take
// priority over the submission's.
type ActionPayload struct {
	Header                iso18626.Header                  `json:"Header"`
	Service               ServiceSelection                 `json:"Service"`
	Submission            Metadata                         `json:"Submission"`
	SelectedResult        *Metadata                        `json:"SelectedResult,omitempty"`
	SupplierInfo          []iso18626.SupplierInfo          `json:"SupplierInfo,omitempty"`
	RequestedDeliveryInfo []iso18626.RequestedDeliveryInfo `json:"RequestedDeliveryInfo,omitempty"`
}

// CancelPayload identifies an order to withdraw.
type CancelPayload struct {
	Header iso18626.Header `json:"Header"`
}
