package site

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/adminkit/adminkit/internal/adapter"
)

// BasicAdmin is a ready-made model admin exposing a JSON list endpoint
// backed by the adapter's query primitives. Projects with richer needs
// implement ModelAdmin themselves.
type BasicAdmin struct {
	Model         string
	VerbosePlural string
	OrderBy       []string
	Backend       adapter.Querier
}

// VerboseNamePlural implements ModelAdmin
func (a *BasicAdmin) VerboseNamePlural() string { return a.VerbosePlural }

// Routes returns the admin's route table
func (a *BasicAdmin) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Pattern: "/", Handler: a.listHandler},
	}
}

// listHandler serves all records of the bound model
func (a *BasicAdmin) listHandler(w http.ResponseWriter, r *http.Request) {
	var (
		records []any
		err     error
	)
	if len(a.OrderBy) > 0 {
		records, err = a.Backend.Order(r.Context(), a.Model, nil, a.OrderBy...)
	} else {
		records, err = a.Backend.Filter(r.Context(), a.Model, nil)
	}
	if err != nil {
		slog.Error("Failed to list model records", "model", a.Model, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to list records"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"model":   a.Model,
		"count":   len(records),
		"results": records,
	}); err != nil {
		slog.Error("Failed to encode model list", "model", a.Model, "error", err)
	}
}

var _ ModelAdmin = (*BasicAdmin)(nil)
