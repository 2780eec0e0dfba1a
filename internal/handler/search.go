package handler

import "marketfetch/internal/catalog"

// Search matches against the static catalog; no provider is consulted.
type Search struct {
	Catalog *catalog.Catalog
}

func (h *Search) Run(query string, limit int) []catalog.Entry {
	return h.Catalog.Search(query, limit)
}
