package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	utils "github.com/indexdata/go-utils/utils"

	"github.com/PTFS-Europe/mod-ill-connector-bldss/httpclient"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/iso18626"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/response"
)

// handleUpdate receives orderline update pushes from the supplier,
// translates them and forwards the result to the requesting agency
// before acknowledging.
func (a *App) handleUpdate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]errorBody{"error": {Kind: "bad-payload", Message: err.Error()}})
		return
	}
	sam, err := a.translator.FromOrderlineUpdate(string(body))
	if err != nil {
		writeError(w, err)
		return
	}
	log.Info("orderline update received", "orderId", sam.Header.SupplyingAgencyRequestId, "status", sam.StatusInfo.Status)

	if a.cfg.Requester.UpdateURL != "" {
		if err := a.forwardUpdate(r, sam); err != nil {
			writeError(w, err)
			return
		}
	}

	confirmation, err := response.BuildUpdateConfirmation(iso18626.Header{
		Timestamp: utils.XSDDateTime{Time: now()},
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set(httpclient.ContentType, httpclient.ContentTypeApplicationXml)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(confirmation)); err != nil {
		log.Warn("failed to write update confirmation", "error", err)
	}
}

func (a *App) forwardUpdate(r *http.Request, sam *iso18626.SupplyingAgencyMessage) error {
	payload, err := json.Marshal(sam)
	if err != nil {
		return fmt.Errorf("serializing supplying agency message: %w", err)
	}
	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, a.cfg.Requester.UpdateURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set(httpclient.ContentType, "application/json")
	res, err := a.forward.Do(req)
	if err != nil {
		return &httpclient.HttpError{StatusCode: http.StatusBadGateway, Body: []byte(err.Error())}
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return &httpclient.HttpError{StatusCode: res.StatusCode, Body: body}
	}
	return nil
}
