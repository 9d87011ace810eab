package response

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	utils "github.com/indexdata/go-utils/utils"

	"github.com/PTFS-Europe/mod-ill-connector-bldss/codes"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/dates"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/iso18626"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/xmlutil"
)

const exceedsMaxCostPrefix = "Exceeds max cost "

// Translator builds supplying-agency messages from supplier documents.
// The agency ids come from configuration; Now is injectable for tests
// and defaults to the wall clock.
type Translator struct {
	SupplierID  iso18626.TypeAgencyId
	RequesterID iso18626.TypeAgencyId
	Now         func() time.Time
}

// FromOrderResponse translates the synchronous response to an order or
// cancel call. Responses without a recognised result payload produce no
// message.
func (t *Translator) FromOrderResponse(resp *Response, reqHeader iso18626.Header) (*iso18626.SupplyingAgencyMessage, error) {
	responseType := resp.ResponseType()
	if responseType == "" {
		return nil, nil
	}

	reason, err := codes.ReasonForMessage(responseType)
	if err != nil {
		return nil, err
	}
	timestamp, err := dates.ParseSupplierTimestamp(resp.Timestamp)
	if err != nil {
		return nil, err
	}

	answer := iso18626.TypeYesNoN
	if resp.Status == "0" {
		answer = iso18626.TypeYesNoY
	}
	note := resp.Message
	if respNote := resp.Note(); respNote != "" {
		note = note + ". " + respNote
	}
	messageInfo := iso18626.MessageInfo{
		ReasonForMessage: reason,
		AnswerYesNo:      &answer,
		Note:             note,
	}
	if resp.Status != "0" {
		if unfilled, ok := codes.ReasonUnfilled(resp.Status); ok {
			messageInfo.ReasonUnfilled = &unfilled
		}
		if retry, ok := codes.ReasonRetry(resp.Status); ok {
			messageInfo.ReasonRetry = &retry
		}
	}

	status, err := codes.Status(resp.Status)
	if err != nil {
		return nil, err
	}
	statusInfo := iso18626.StatusInfo{
		Status:     status,
		LastChange: utils.XSDDateTime{Time: timestamp},
	}
	if despatch := resp.EstimatedDespatchDate(); despatch != "" {
		expected, err := dates.ParseDespatchDate(despatch)
		if err != nil {
			return nil, err
		}
		statusInfo.ExpectedDeliveryDate = &utils.XSDDateTime{Time: expected}
	}

	requesterRequestId := resp.CustomerReference()
	if requesterRequestId == "" {
		requesterRequestId = reqHeader.RequestingAgencyRequestId
	}
	return &iso18626.SupplyingAgencyMessage{
		Header: iso18626.Header{
			SupplyingAgencyId:         reqHeader.SupplyingAgencyId,
			RequestingAgencyId:        reqHeader.RequestingAgencyId,
			Timestamp:                 utils.XSDDateTime{Time: timestamp},
			RequestingAgencyRequestId: requesterRequestId,
			SupplyingAgencyRequestId:  resp.Orderline(),
		},
		MessageInfo: messageInfo,
		StatusInfo:  statusInfo,
	}, nil
}

// FromOrderlineUpdate translates an asynchronous orderline update pushed
// to the callback URL.
func (t *Translator) FromOrderlineUpdate(doc string) (*iso18626.SupplyingAgencyMessage, error) {
	root, err := xmlutil.ParseString(doc)
	if err != nil {
		return nil, err
	}
	orderline, err := root.One("orderline")
	if err != nil {
		return nil, err
	}
	event, err := root.One("event")
	if err != nil {
		return nil, err
	}
	eventType, err := root.One("eventType")
	if err != nil {
		return nil, err
	}
	additionalInfo, err := root.One("additionalInfo")
	if err != nil {
		return nil, err
	}
	eventTime, err := dates.ParseSupplierTimestamp(event.Attr("time"))
	if err != nil {
		return nil, err
	}
	code := eventType.Attr("id")

	reason, err := codes.ReasonForMessage(code)
	if err != nil {
		return nil, err
	}
	messageInfo := iso18626.MessageInfo{
		ReasonForMessage: reason,
		// In case the mapping falls short, everything also goes in the note
		Note: code + ": " + eventType.Text + " " + additionalInfo.Text,
	}
	if unfilled, ok := codes.ReasonUnfilled(code); ok {
		messageInfo.ReasonUnfilled = &unfilled
	}
	if retry, ok := codes.ReasonRetry(code); ok {
		messageInfo.ReasonRetry = &retry
		if code == "18f" && additionalInfo.Text != "" {
			costs, err := offeredCosts(additionalInfo.Text)
			if err != nil {
				return nil, err
			}
			messageInfo.OfferedCosts = costs
		}
	}

	status, err := codes.Status(code)
	if err != nil {
		return nil, err
	}
	statusInfo := iso18626.StatusInfo{
		Status:     status,
		LastChange: utils.XSDDateTime{Time: t.now()},
	}

	deliveryInfo, err := buildDeliveryInfo(code, additionalInfo.Text)
	if err != nil {
		return nil, err
	}

	return &iso18626.SupplyingAgencyMessage{
		Header: iso18626.Header{
			SupplyingAgencyId:         t.SupplierID,
			RequestingAgencyId:        t.RequesterID,
			Timestamp:                 utils.XSDDateTime{Time: eventTime},
			RequestingAgencyRequestId: root.TextOf("customerReference"),
			SupplyingAgencyRequestId:  orderline.Attr("id"),
		},
		MessageInfo:  messageInfo,
		StatusInfo:   statusInfo,
		DeliveryInfo: deliveryInfo,
	}, nil
}

// offeredCosts extracts the actual cost from an "Exceeds max cost" info
// text.
func offeredCosts(info string) (*iso18626.TypeCosts, error) {
	var value utils.XSDDecimal
	amount := strings.TrimPrefix(info, exceedsMaxCostPrefix)
	if err := value.UnmarshalText([]byte(amount)); err != nil {
		return nil, fmt.Errorf("parsing offered cost %q: %w", amount, err)
	}
	// TODO: currency code should come from the supplier account settings
	return &iso18626.TypeCosts{CurrencyCode: "GBP", MonetaryValue: value}, nil
}

func buildDeliveryInfo(code, info string) (*iso18626.DeliveryInfo, error) {
	switch code {
	case "12":
		if info == "" {
			return nil, nil
		}
		sent, err := dates.ParseSupplierTimestamp(info)
		if err != nil {
			return nil, err
		}
		return &iso18626.DeliveryInfo{DateSent: &utils.XSDDateTime{Time: sent}}, nil
	case "11":
		sentVia := iso18626.TypeSentViaURL
		return &iso18626.DeliveryInfo{SentVia: &sentVia}, nil
	}
	return nil, nil
}

func (t *Translator) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

type updateResponse struct {
	XMLName   xml.Name `xml:"updateResponse"`
	Timestamp string   `xml:"timestamp"`
	Status    string   `xml:"status"`
	Message   string   `xml:"message"`
}

// BuildUpdateConfirmation is the document returned to the supplier after
// an orderline update has been accepted.
func BuildUpdateConfirmation(header iso18626.Header) (string, error) {
	out, err := xml.Marshal(updateResponse{
		Timestamp: header.Timestamp.Time.Format(dates.SupplierLayout),
		Status:    "0",
	})
	if err != nil {
		return "", fmt.Errorf("serializing update confirmation: %w", err)
	}
	return xml.Header + string(out), nil
}
