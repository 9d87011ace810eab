package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PTFS-Europe/mod-ill-connector-bldss/order"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/xmlutil"
)

func (a *App) handleReference(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	req, err := order.NewReference(name)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]errorBody{"error": {Kind: "unknown-reference", Message: err.Error()}})
		return
	}
	body, err := a.client.Do(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	doc, err := xmlutil.ParseString(body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc.JSONMap())
}
