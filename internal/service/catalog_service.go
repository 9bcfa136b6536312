package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/VGuerra123/TiendaOnline-sub000/internal/catalog"
	"github.com/VGuerra123/TiendaOnline-sub000/internal/domain"
)

// DefaultTabs maps the storefront's page tabs onto catalog category labels.
// Injected here once instead of duplicating a switch per page.
var DefaultTabs = map[string]string{
	"gaming":      "Gaming",
	"smart-home":  "Smart Home",
	"smartphones": "Smartphones",
	"ofertas":     "Ofertas",
}

// CatalogService fetches the catalog and derives the displayed subset.
// The full list is re-fetched and re-filtered on every request; acceptable
// because the list is bounded to a single page of a few hundred products.
type CatalogService struct {
	client CommerceClient
	tabs   map[string]string
	logger *zap.Logger
}

// NewCatalogService creates a catalog service. tabs may be nil, in which
// case DefaultTabs is used.
func NewCatalogService(client CommerceClient, tabs map[string]string, logger *zap.Logger) *CatalogService {
	if tabs == nil {
		tabs = DefaultTabs
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{client: client, tabs: tabs, logger: logger}
}

// ListProducts returns the filtered, sorted catalog subset. Fail-soft all
// the way down: an unreachable platform yields an empty list, never an
// error, so the storefront renders an empty state instead of crashing.
func (s *CatalogService) ListProducts(ctx context.Context, state domain.FilterState, limit int) []domain.Product {
	if mapped, ok := s.tabs[state.Tab]; ok {
		state.Tab = mapped
	}
	products := s.client.GetAllProducts(ctx, limit)
	return catalog.Apply(products, state)
}

// Facets returns filter-panel metadata derived from the unfiltered catalog
func (s *CatalogService) Facets(ctx context.Context, limit int) catalog.FacetMetadata {
	return catalog.Facets(s.client.GetAllProducts(ctx, limit))
}
