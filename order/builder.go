package order

import (
	"encoding/xml"
	"fmt"

	"github.com/PTFS-Europe/mod-ill-connector-bldss/codes"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/dates"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/iso18626"
)

// BuildConfig is what the builder needs from outside the payload: the
// callback URL the supplier posts orderline updates to and the account
// settings that gate copyright payment and Library Privilege.
type BuildConfig struct {
	CallbackURL      string
	LibraryPrivilege bool
	OutsideUK        bool
}

type newOrderRequest struct {
	XMLName           xml.Name     `xml:"NewOrderRequest"`
	Type              string       `xml:"type"`
	PayCopyright      string       `xml:"payCopyright,omitempty"`
	CustomerReference string       `xml:"customerReference,omitempty"`
	CallbackUrl       string       `xml:"callbackUrl,omitempty"`
	Service           orderService `xml:"Service"`
	Item              orderItem    `xml:"Item"`
	Delivery          *delivery    `xml:"Delivery,omitempty"`
	LibraryPrivilege  string       `xml:"LibraryPrivilege"`
}

type orderService struct {
	Service string `xml:"service"`
	Format  string `xml:"format,omitempty"`
	Speed   string `xml:"speed,omitempty"`
	Quality string `xml:"quality,omitempty"`
}

type orderItem struct {
	Uin                 string               `xml:"uin,omitempty"`
	Type                string               `xml:"type,omitempty"`
	TitleLevel          *titleLevel          `xml:"titleLevel,omitempty"`
	ItemLevel           *itemLevel           `xml:"itemLevel,omitempty"`
	ItemOfInterestLevel *itemOfInterestLevel `xml:"itemOfInterestLevel,omitempty"`
}

type titleLevel struct {
	Title     string `xml:"title,omitempty"`
	Author    string `xml:"author,omitempty"`
	ISBN      string `xml:"ISBN,omitempty"`
	ISSN      string `xml:"ISSN,omitempty"`
	ISMN      string `xml:"ISMN,omitempty"`
	Shelfmark string `xml:"shelfmark,omitempty"`
	Publisher string `xml:"publisher,omitempty"`
}

func (t *titleLevel) empty() bool {
	return *t == titleLevel{}
}

type itemLevel struct {
	Year    string `xml:"year,omitempty"`
	Volume  string `xml:"volume,omitempty"`
	Part    string `xml:"part,omitempty"`
	Edition string `xml:"edition,omitempty"`
}

func (i *itemLevel) empty() bool {
	return *i == itemLevel{}
}

type itemOfInterestLevel struct {
	Title  string `xml:"title,omitempty"`
	Author string `xml:"author,omitempty"`
	Pages  string `xml:"pages,omitempty"`
}

func (i *itemOfInterestLevel) empty() bool {
	return *i == itemOfInterestLevel{}
}

type delivery struct {
	Address *deliveryAddress `xml:"Address,omitempty"`
	Email   string           `xml:"Email,omitempty"`
}

// deliveryAddress is the supplier's naming of a postal address.
type deliveryAddress struct {
	AddressLine1 string `xml:"addressLine1,omitempty"`
	AddressLine2 string `xml:"addressLine2,omitempty"`
	Town         string `xml:"town,omitempty"`
	County       string `xml:"county,omitempty"`
	Postcode     string `xml:"postcode,omitempty"`
	Country      string `xml:"country,omitempty"`
}

// Build serializes an action payload into the supplier's NewOrderRequest
// document.
func Build(p *ActionPayload, cfg BuildConfig) (string, error) {
	selected := Metadata{}
	if p.SelectedResult != nil {
		selected = *p.SelectedResult
	}
	selBib, subBib := selected.BibliographicInfo, p.Submission.BibliographicInfo
	selPub, subPub := selected.PublicationInfo, p.Submission.PublicationInfo

	doc := newOrderRequest{
		Type:              "S",
		CustomerReference: p.Header.RequestingAgencyRequestId,
		CallbackUrl:       cfg.CallbackURL,
		Service: orderService{
			Service: "1",
			Format:  p.Service.Format,
			Speed:   p.Service.Speed,
			Quality: p.Service.Quality,
		},
		LibraryPrivilege: "0",
	}
	if cfg.OutsideUK {
		doc.PayCopyright = "true"
	}
	if cfg.LibraryPrivilege {
		doc.LibraryPrivilege = "1"
	}

	item := orderItem{
		Uin: prioritised(selBib.SupplierUniqueRecordId, subBib.SupplierUniqueRecordId),
	}
	pubType := iso18626.TypePublicationType(prioritised(string(selPub.PublicationType), string(subPub.PublicationType)))
	if pubType != "" {
		supplierType, err := codes.PublicationTypeToSupplier(pubType)
		if err != nil {
			return "", err
		}
		item.Type = supplierType
	}

	title := &titleLevel{
		Title:     prioritised(selBib.Title, subBib.Title),
		Author:    prioritised(selBib.Author, subBib.Author),
		ISBN:      prioritised(identifier(selBib, "ISBN"), identifier(subBib, "ISBN")),
		ISSN:      prioritised(identifier(selBib, "ISSN"), identifier(subBib, "ISSN")),
		ISMN:      prioritised(identifier(selBib, "ISMN"), identifier(subBib, "ISMN")),
		Shelfmark: shelfmark(p.SupplierInfo),
		Publisher: prioritised(selPub.Publisher, subPub.Publisher),
	}
	if !title.empty() {
		item.TitleLevel = title
	}

	il := &itemLevel{
		Volume:  prioritised(selBib.Volume, subBib.Volume),
		Part:    prioritised(selBib.Issue, subBib.Issue),
		Edition: prioritised(selBib.Edition, subBib.Edition),
	}
	if pubDate := prioritised(selPub.PublicationDate, subPub.PublicationDate); pubDate != "" {
		year, err := dates.Year(pubDate)
		if err != nil {
			return "", err
		}
		il.Year = year
	}
	if !il.empty() {
		item.ItemLevel = il
	}

	interest := &itemOfInterestLevel{
		Title:  prioritised(selBib.TitleOfComponent, subBib.TitleOfComponent),
		Author: prioritised(selBib.AuthorOfComponent, subBib.AuthorOfComponent),
		Pages:  prioritised(selBib.PagesRequested, subBib.PagesRequested),
	}
	if !interest.empty() {
		item.ItemOfInterestLevel = interest
	}
	doc.Item = item
	doc.Delivery = buildDelivery(p.RequestedDeliveryInfo)

	out, err := xml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("serializing order request: %w", err)
	}
	return string(out), nil
}

// prioritised prefers a populated search-result value over the
// submission's.
func prioritised(searchResult, submission string) string {
	if searchResult != "" {
		return searchResult
	}
	return submission
}

// identifier returns the first identifier of the given code.
func identifier(bib iso18626.BibliographicInfo, code string) string {
	for _, id := range bib.BibliographicItemId {
		if id.BibliographicItemIdentifierCode == code {
			return id.BibliographicItemIdentifier
		}
	}
	return ""
}

// shelfmark returns the call number of the first supplier record that
// has one.
func shelfmark(infos []iso18626.SupplierInfo) string {
	for _, info := range infos {
		if info.CallNumber != "" {
			return info.CallNumber
		}
	}
	return ""
}

// buildDelivery picks the first physical and first electronic address
// from the requested delivery entries. Each entry carries one shape or
// the other, told apart by which sub-struct is populated. Only
// email-type electronic addresses are understood. With no usable
// address the element is left out entirely.
func buildDelivery(infos []iso18626.RequestedDeliveryInfo) *delivery {
	d := &delivery{}
	for _, info := range infos {
		if info.Address == nil {
			continue
		}
		if phys := info.Address.PhysicalAddress; phys != nil && d.Address == nil {
			d.Address = &deliveryAddress{
				AddressLine1: phys.Line1,
				AddressLine2: phys.Line2,
				Town:         phys.Locality,
				County:       phys.Region,
				Postcode:     phys.PostalCode,
				Country:      phys.Country,
			}
		}
		if el := info.Address.ElectronicAddress; el != nil && d.Email == "" {
			if el.ElectronicAddressType == "email" {
				d.Email = el.ElectronicAddressData
			}
		}
	}
	if d.Address == nil && d.Email == "" {
		return nil
	}
	return d
}
