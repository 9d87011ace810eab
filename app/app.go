// Package app wires the connector together: the HTTP surface the
// library-services platform talks to, the supplier client behind it and
// the translators in between.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/PTFS-Europe/mod-ill-connector-bldss/auth"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/codes"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/config"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/httpclient"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/response"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/search"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/slogwrap"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/xmlutil"
)

var log *slog.Logger = slogwrap.SlogWrap()

type App struct {
	cfg        *config.Config
	client     *httpclient.Client
	translator *response.Translator
	forward    *http.Client
	server     *http.Server
}

func New(cfg *config.Config) *App {
	signer := &auth.Signer{Credentials: cfg.Credentials()}
	client := httpclient.New(cfg.Supplier.BaseURL, signer)
	return &App{
		cfg:    cfg,
		client: client,
		translator: &response.Translator{
			SupplierID:  cfg.SupplierAgencyId(),
			RequesterID: cfg.RequesterAgencyId(),
		},
		forward: client.HTTP,
	}
}

// Handler builds the connector's HTTP surface.
func (a *App) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	router.Get("/healthz", healthHandler)
	router.Route("/ill-connector", func(r chi.Router) {
		r.Post("/action/order", a.handleOrder)
		r.Post("/action/cancel", a.handleCancel)
		r.Get("/search", a.handleSearch)
		r.Get("/reference/{name}", a.handleReference)
		r.Post("/sa-update", a.handleUpdate)
	})
	return router
}

func (a *App) Run() error {
	addr := ":" + strconv.Itoa(a.cfg.Server.Port)
	log.Info("connector starting", "addr", addr, "supplier", a.cfg.Supplier.BaseURL)
	a.server = &http.Server{Addr: addr, Handler: a.Handler()}
	return a.server.ListenAndServe()
}

func (a *App) Shutdown() error {
	if a.server != nil {
		return a.server.Shutdown(context.Background())
	}
	return nil
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Warn("failed to write health response", "error", err)
	}
}

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// writeError maps translation-layer errors onto HTTP statuses. Supplier
// format surprises are gateway errors, bad input is the caller's fault.
func writeError(w http.ResponseWriter, err error) {
	var (
		queryErr  *search.QueryError
		shapeErr  *xmlutil.ShapeError
		codeErr   *codes.UnmappedCodeError
		configErr *auth.ConfigError
		httpErr   *httpclient.HttpError
	)
	kind := "internal"
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &queryErr):
		kind, status = "malformed-query", http.StatusBadRequest
	case errors.As(err, &shapeErr):
		kind, status = "unexpected-document-shape", http.StatusBadGateway
	case errors.As(err, &codeErr):
		kind, status = "unmapped-code", http.StatusBadGateway
	case errors.As(err, &configErr):
		kind, status = "signature-config", http.StatusInternalServerError
	case errors.As(err, &httpErr):
		kind, status = "transport", http.StatusBadGateway
	}
	log.Error("request failed", "kind", kind, "error", err)
	writeJSON(w, status, map[string]errorBody{"error": {Kind: kind, Message: err.Error()}})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set(httpclient.ContentType, "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn("failed to write response", "error", err)
	}
}

func now() time.Time {
	return time.Now()
}
