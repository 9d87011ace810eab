package app

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	utils "github.com/indexdata/go-utils/utils"

	"github.com/PTFS-Europe/mod-ill-connector-bldss/dates"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/iso18626"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/order"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/response"
)

// Confirmation reports the outcome of an action call to the platform.
type Confirmation struct {
	Timestamp         utils.XSDDateTime  `json:"Timestamp"`
	TimestampReceived *utils.XSDDateTime `json:"TimestampReceived,omitempty"`
	MessageStatus     string             `json:"MessageStatus"`
	ErrorData         string             `json:"ErrorData,omitempty"`
}

// ActionResult is the JSON body returned from order and cancel calls:
// the confirmation plus, when the supplier sent a usable result, the
// translated supplying-agency message.
type ActionResult struct {
	Confirmation           Confirmation                     `json:"Confirmation"`
	SupplyingAgencyMessage *iso18626.SupplyingAgencyMessage `json:"SupplyingAgencyMessage,omitempty"`
}

func (a *App) handleOrder(w http.ResponseWriter, r *http.Request) {
	var payload order.ActionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]errorBody{"error": {Kind: "bad-payload", Message: err.Error()}})
		return
	}

	if payload.Header.RequestingAgencyRequestId == "" {
		payload.Header.RequestingAgencyRequestId = uuid.NewString()
	}
	doc, err := order.Build(&payload, order.BuildConfig{
		CallbackURL:      a.cfg.Requester.CallbackURL,
		LibraryPrivilege: a.cfg.Settings.LibraryPrivilege,
		OutsideUK:        a.cfg.Settings.OutsideUK,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	log.Info("submitting order", "requestId", payload.Header.RequestingAgencyRequestId)
	a.performAction(w, r, order.NewOrder(doc), payload.Header)
}

func (a *App) handleCancel(w http.ResponseWriter, r *http.Request) {
	var payload order.CancelPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]errorBody{"error": {Kind: "bad-payload", Message: err.Error()}})
		return
	}
	if payload.Header.SupplyingAgencyRequestId == "" {
		writeJSON(w, http.StatusBadRequest, map[string]errorBody{"error": {Kind: "bad-payload", Message: "SupplyingAgencyRequestId is required"}})
		return
	}
	log.Info("cancelling order", "orderId", payload.Header.SupplyingAgencyRequestId)
	a.performAction(w, r, order.NewCancel(payload.Header.SupplyingAgencyRequestId), payload.Header)
}

// performAction runs a supplier call and translates its response into an
// ActionResult.
func (a *App) performAction(w http.ResponseWriter, r *http.Request, req order.Request, reqHeader iso18626.Header) {
	body, err := a.client.Do(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	resp, err := response.Parse(body)
	if err != nil {
		writeError(w, err)
		return
	}

	result := ActionResult{
		Confirmation: Confirmation{
			Timestamp:     utils.XSDDateTime{Time: now()},
			MessageStatus: "OK",
		},
	}
	if received, err := dates.ParseSupplierTimestamp(resp.Timestamp); err == nil {
		result.Confirmation.TimestampReceived = &utils.XSDDateTime{Time: received}
	}
	if resp.Status != "0" {
		result.Confirmation.MessageStatus = "ERROR"
		result.Confirmation.ErrorData = resp.Message
	}

	sam, err := a.translator.FromOrderResponse(resp, reqHeader)
	if err != nil {
		writeError(w, err)
		return
	}
	result.SupplyingAgencyMessage = sam

	writeJSON(w, http.StatusOK, result)
}
