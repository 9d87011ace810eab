// Package iso18626 holds the standardized request/message model exchanged
// with the library-services platform. Field names follow the ISO18626
// vocabulary; the JSON rendering is the boundary to the controller layer.
package iso18626

import (
	utils "github.com/indexdata/go-utils/utils"
)

type TypeAgencyId struct {
	AgencyIdType  string `json:"AgencyIdType"`
	AgencyIdValue string `json:"AgencyIdValue"`
}

type Header struct {
	SupplyingAgencyId         TypeAgencyId      `json:"SupplyingAgencyId"`
	RequestingAgencyId        TypeAgencyId      `json:"RequestingAgencyId"`
	Timestamp                 utils.XSDDateTime `json:"Timestamp"`
	RequestingAgencyRequestId string            `json:"RequestingAgencyRequestId"`
	SupplyingAgencyRequestId  string            `json:"SupplyingAgencyRequestId,omitempty"`
}

type BibliographicItemId struct {
	BibliographicItemIdentifier     string `json:"BibliographicItemIdentifier"`
	BibliographicItemIdentifierCode string `json:"BibliographicItemIdentifierCode"`
}

type BibliographicInfo struct {
	SupplierUniqueRecordId string                `json:"SupplierUniqueRecordId,omitempty"`
	Title                  string                `json:"Title,omitempty"`
	Author                 string                `json:"Author,omitempty"`
	BibliographicItemId    []BibliographicItemId `json:"BibliographicItemId,omitempty"`
	Volume                 string                `json:"Volume,omitempty"`
	Issue                  string                `json:"Issue,omitempty"`
	Edition                string                `json:"Edition,omitempty"`
	TitleOfComponent       string                `json:"TitleOfComponent,omitempty"`
	AuthorOfComponent      string                `json:"AuthorOfComponent,omitempty"`
	PagesRequested         string                `json:"PagesRequested,omitempty"`
}

type PublicationInfo struct {
	Publisher       string              `json:"Publisher,omitempty"`
	PublicationType TypePublicationType `json:"PublicationType,omitempty"`
	PublicationDate string              `json:"PublicationDate,omitempty"`
}

type SupplierInfo struct {
	SortOrder           int    `json:"SortOrder,omitempty"`
	SupplierCode        string `json:"SupplierCode,omitempty"`
	SupplierDescription string `json:"SupplierDescription,omitempty"`
	CallNumber          string `json:"CallNumber,omitempty"`
}

type PhysicalAddress struct {
	Line1      string `json:"Line1,omitempty"`
	Line2      string `json:"Line2,omitempty"`
	Locality   string `json:"Locality,omitempty"`
	PostalCode string `json:"PostalCode,omitempty"`
	Region     string `json:"Region,omitempty"`
	Country    string `json:"Country,omitempty"`
}

type ElectronicAddress struct {
	ElectronicAddressType string `json:"ElectronicAddressType,omitempty"`
	ElectronicAddressData string `json:"ElectronicAddressData,omitempty"`
}

// Address carries either a physical or an electronic address. There is no
// explicit type tag: consumers inspect which sub-struct is populated.
type Address struct {
	PhysicalAddress   *PhysicalAddress   `json:"PhysicalAddress,omitempty"`
	ElectronicAddress *ElectronicAddress `json:"ElectronicAddress,omitempty"`
}

type RequestedDeliveryInfo struct {
	SortOrder int      `json:"SortOrder,omitempty"`
	Address   *Address `json:"Address,omitempty"`
}

type TypeCosts struct {
	CurrencyCode  string           `json:"CurrencyCode"`
	MonetaryValue utils.XSDDecimal `json:"MonetaryValue"`
}

type MessageInfo struct {
	ReasonForMessage TypeReasonForMessage `json:"ReasonForMessage"`
	AnswerYesNo      *TypeYesNo           `json:"AnswerYesNo,omitempty"`
	Note             string               `json:"Note,omitempty"`
	ReasonUnfilled   *TypeReasonUnfilled  `json:"ReasonUnfilled,omitempty"`
	ReasonRetry      *TypeReasonRetry     `json:"ReasonRetry,omitempty"`
	OfferedCosts     *TypeCosts           `json:"OfferedCosts,omitempty"`
}

type StatusInfo struct {
	Status               TypeStatus         `json:"Status"`
	ExpectedDeliveryDate *utils.XSDDateTime `json:"ExpectedDeliveryDate,omitempty"`
	LastChange           utils.XSDDateTime  `json:"LastChange"`
}

type DeliveryInfo struct {
	DateSent *utils.XSDDateTime `json:"DateSent,omitempty"`
	SentVia  *TypeSentVia       `json:"SentVia,omitempty"`
}

// SupplyingAgencyMessage is the standardized outbound model for both the
// synchronous order confirmation and the asynchronous status notification.
// Always constructed fresh per translation.
type SupplyingAgencyMessage struct {
	Header       Header        `json:"Header"`
	MessageInfo  MessageInfo   `json:"MessageInfo"`
	StatusInfo   StatusInfo    `json:"StatusInfo"`
	DeliveryInfo *DeliveryInfo `json:"DeliveryInfo,omitempty"`
}
