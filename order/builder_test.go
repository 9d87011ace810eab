package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PTFS-Europe/mod-ill-connector-bldss/iso18626"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/xmlutil"
)

var testConfig = BuildConfig{
	CallbackURL:      "https://requester.example.com/ill-connector/sa-update",
	LibraryPrivilege: true,
	OutsideUK:        false,
}

func fullPayload() *ActionPayload {
	return &ActionPayload{
		Header: iso18626.Header{
			RequestingAgencyRequestId: "req-0001",
		},
		Service: ServiceSelection{Format: "1", Speed: "2", Quality: "1"},
		Submission: Metadata{
			BibliographicInfo: iso18626.BibliographicInfo{
				Title:  "Sleep",
				Author: "C. Dillon",
				BibliographicItemId: []iso18626.BibliographicItemId{
					{BibliographicItemIdentifier: "9780000000000", BibliographicItemIdentifierCode: "ISBN"},
				},
				Volume:         "2",
				Issue:          "4",
				PagesRequested: "10-25",
			},
			PublicationInfo: iso18626.PublicationInfo{
				Publisher:       "Example House",
				PublicationType: iso18626.TypePublicationTypeBook,
				PublicationDate: "2016-07-27",
			},
		},
		SupplierInfo: []iso18626.SupplierInfo{
			{SupplierCode: "BL"},
			{SupplierCode: "BL", CallNumber: "X901/2"},
		},
		RequestedDeliveryInfo: []iso18626.RequestedDeliveryInfo{
			{Address: &iso18626.Address{PhysicalAddress: &iso18626.PhysicalAddress{
				Line1:      "1 High Street",
				Locality:   "Oxford",
				Region:     "Oxfordshire",
				PostalCode: "OX1 1AA",
				Country:    "GB",
			}}},
			{Address: &iso18626.Address{ElectronicAddress: &iso18626.ElectronicAddress{
				ElectronicAddressType: "email",
				ElectronicAddressData: "loans@requester.example.com",
			}}},
		},
	}
}

func TestBuildFullOrder(t *testing.T) {
	out, err := Build(fullPayload(), testConfig)
	assert.NoError(t, err)

	root, err := xmlutil.ParseString(out)
	assert.NoError(t, err)
	assert.Equal(t, "NewOrderRequest", root.Name)
	assert.Equal(t, "S", root.TextOf("type"))
	assert.Equal(t, "req-0001", root.TextOf("customerReference"))
	assert.Equal(t, testConfig.CallbackURL, root.TextOf("callbackUrl"))
	assert.Equal(t, "1", root.TextOf("LibraryPrivilege"))
	assert.Nil(t, root.First("payCopyright"))

	service, err := root.One("Service")
	assert.NoError(t, err)
	assert.Equal(t, "1", service.TextOf("service"))
	assert.Equal(t, "2", service.TextOf("speed"))

	title, err := root.One("titleLevel")
	assert.NoError(t, err)
	assert.Equal(t, "Sleep", title.TextOf("title"))
	assert.Equal(t, "C. Dillon", title.TextOf("author"))
	assert.Equal(t, "9780000000000", title.TextOf("ISBN"))
	assert.Equal(t, "X901/2", title.TextOf("shelfmark"))
	assert.Equal(t, "Example House", title.TextOf("publisher"))

	item, err := root.One("itemLevel")
	assert.NoError(t, err)
	assert.Equal(t, "2016", item.TextOf("year"))
	assert.Equal(t, "2", item.TextOf("volume"))
	assert.Equal(t, "4", item.TextOf("part"))

	interest, err := root.One("itemOfInterestLevel")
	assert.NoError(t, err)
	assert.Equal(t, "10-25", interest.TextOf("pages"))

	address, err := root.One("Address")
	assert.NoError(t, err)
	assert.Equal(t, "1 High Street", address.TextOf("addressLine1"))
	assert.Equal(t, "Oxford", address.TextOf("town"))
	assert.Equal(t, "Oxfordshire", address.TextOf("county"))
	assert.Equal(t, "OX1 1AA", address.TextOf("postcode"))
	assert.Equal(t, "loans@requester.example.com", root.TextOf("Email"))
}

func TestBuildSearchResultOverridesSubmission(t *testing.T) {
	p := fullPayload()
	p.SelectedResult = &Metadata{
		BibliographicInfo: iso18626.BibliographicInfo{
			SupplierUniqueRecordId: "BLL01018986556",
			Title:                  "Sleep and dreaming",
		},
		PublicationInfo: iso18626.PublicationInfo{},
	}
	out, err := Build(p, testConfig)
	assert.NoError(t, err)

	root, err := xmlutil.ParseString(out)
	assert.NoError(t, err)
	assert.Equal(t, "BLL01018986556", root.TextOf("uin"))
	title, err := root.One("titleLevel")
	assert.NoError(t, err)
	assert.Equal(t, "Sleep and dreaming", title.TextOf("title"))
	// Submission values survive where the result has none.
	assert.Equal(t, "C. Dillon", title.TextOf("author"))
}

func TestBuildOmitsEmptyGroups(t *testing.T) {
	p := &ActionPayload{
		Header:  iso18626.Header{RequestingAgencyRequestId: "req-0002"},
		Service: ServiceSelection{Format: "4", Speed: "3", Quality: "1"},
	}
	out, err := Build(p, BuildConfig{CallbackURL: "https://requester.example.com/cb", OutsideUK: true})
	assert.NoError(t, err)

	root, err := xmlutil.ParseString(out)
	assert.NoError(t, err)
	assert.Nil(t, root.First("titleLevel"))
	assert.Nil(t, root.First("itemLevel"))
	assert.Nil(t, root.First("itemOfInterestLevel"))
	assert.Nil(t, root.First("Delivery"))
	assert.Equal(t, "true", root.TextOf("payCopyright"))
	assert.Equal(t, "0", root.TextOf("LibraryPrivilege"))
}

func TestBuildIgnoresNonEmailElectronicAddress(t *testing.T) {
	p := fullPayload()
	p.RequestedDeliveryInfo = []iso18626.RequestedDeliveryInfo{
		{Address: &iso18626.Address{ElectronicAddress: &iso18626.ElectronicAddress{
			ElectronicAddressType: "ftp",
			ElectronicAddressData: "ftp://requester.example.com",
		}}},
	}
	out, err := Build(p, testConfig)
	assert.NoError(t, err)

	root, err := xmlutil.ParseString(out)
	assert.NoError(t, err)
	assert.Nil(t, root.First("Delivery"))
}

func TestBuildRejectsUnknownPublicationType(t *testing.T) {
	p := fullPayload()
	p.Submission.PublicationInfo.PublicationType = "Map"
	_, err := Build(p, testConfig)
	assert.ErrorContains(t, err, "unmapped supplier code")
}

func TestReferenceEndpoints(t *testing.T) {
	prices, err := NewReference("prices")
	assert.NoError(t, err)
	assert.Equal(t, "/api/prices", prices.Path)
	assert.True(t, prices.NeedsAuth)

	speeds, err := NewReference("speeds")
	assert.NoError(t, err)
	assert.Equal(t, "/api/reference/speeds", speeds.Path)
	assert.False(t, speeds.NeedsAuth)

	_, err = NewReference("bindings")
	assert.ErrorContains(t, err, `unknown reference endpoint "bindings"`)
}

func TestNewCancel(t *testing.T) {
	req := NewCancel("BLDSS-1001")
	assert.Equal(t, "DELETE", req.Method)
	assert.Equal(t, "/api/orders/BLDSS-1001", req.Path)
	assert.True(t, req.NeedsAuth)
	assert.Equal(t, "BLDSS-1001", req.Params["id"])
}
