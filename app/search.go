package app

import (
	"net/http"
	"strconv"

	"github.com/PTFS-Europe/mod-ill-connector-bldss/order"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/search"
)

func (a *App) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	offset := intParam(r, "offset")
	limit := intParam(r, "limit")

	params, err := search.ToSupplierQuery(query, offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	body, err := a.client.Do(r.Context(), order.Request{
		Method: http.MethodGet,
		Path:   "/api/search",
		Params: params,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	results, err := search.FromSupplierResults(body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func intParam(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}
