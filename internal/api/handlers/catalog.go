package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VGuerra123/TiendaOnline-sub000/internal/domain"
	"github.com/VGuerra123/TiendaOnline-sub000/internal/service"
)

const defaultCatalogLimit = 100

// HandleListProducts handles GET /v1/catalog/products. The filter is
// recomputed from the full unfiltered list on every request; no result is
// ever an error, an empty data array means "no products match".
func HandleListProducts(svc *service.CatalogService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := parseFilterState(c)
		limit := parseLimit(c)

		products := svc.ListProducts(c.Request.Context(), state, limit)
		logger.Debug("Catalog listed",
			zap.Int("count", len(products)),
			zap.String("query", state.Query),
			zap.String("sort", string(state.Sort)),
		)

		c.JSON(http.StatusOK, gin.H{
			"data": products,
			"meta": gin.H{"count": len(products)},
		})
	}
}

// HandleGetFacets handles GET /v1/catalog/facets (filter panel metadata)
func HandleGetFacets(svc *service.CatalogService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		facets := svc.Facets(c.Request.Context(), parseLimit(c))
		c.JSON(http.StatusOK, gin.H{"data": facets})
	}
}

// parseFilterState builds the FilterState from query params:
// q, tab, brand (repeatable), category (repeatable), min_price, max_price,
// sort. Unknown sort keys fall back to featured.
func parseFilterState(c *gin.Context) domain.FilterState {
	state := domain.FilterState{
		Tab:        c.Query("tab"),
		Query:      c.Query("q"),
		Brands:     c.QueryArray("brand"),
		Categories: c.QueryArray("category"),
		Sort:       domain.SortFeatured,
	}

	if v := c.Query("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			state.MinPrice = &f
		}
	}
	if v := c.Query("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			state.MaxPrice = &f
		}
	}
	if key := domain.SortKey(c.Query("sort")); key.IsValid() {
		state.Sort = key
	}
	return state
}

func parseLimit(c *gin.Context) int {
	limit := defaultCatalogLimit
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n >= 1 && n <= 250 {
			limit = n
		}
	}
	return limit
}
