package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VGuerra123/TiendaOnline-sub000/internal/domain"
)

func contextWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/catalog/products?"+rawQuery, nil)
	return c
}

func TestParseFilterState(t *testing.T) {
	c := contextWithQuery(t, "q=iphone&tab=smartphones&brand=Apple&brand=Samsung&category=Smartphones&min_price=50000&max_price=300000&sort=price-ascending")

	state := parseFilterState(c)

	assert.Equal(t, "iphone", state.Query)
	assert.Equal(t, "smartphones", state.Tab)
	assert.Equal(t, []string{"Apple", "Samsung"}, state.Brands)
	assert.Equal(t, []string{"Smartphones"}, state.Categories)
	require.NotNil(t, state.MinPrice)
	assert.Equal(t, 50000.0, *state.MinPrice)
	require.NotNil(t, state.MaxPrice)
	assert.Equal(t, 300000.0, *state.MaxPrice)
	assert.Equal(t, domain.SortPriceAscending, state.Sort)
}

func TestParseFilterStateDefaults(t *testing.T) {
	state := parseFilterState(contextWithQuery(t, ""))

	assert.Empty(t, state.Query)
	assert.Empty(t, state.Brands)
	assert.Nil(t, state.MinPrice)
	assert.Nil(t, state.MaxPrice)
	assert.Equal(t, domain.SortFeatured, state.Sort)
}

func TestParseFilterStateUnknownSortFallsBack(t *testing.T) {
	state := parseFilterState(contextWithQuery(t, "sort=alphabetical"))
	assert.Equal(t, domain.SortFeatured, state.Sort)
}

func TestParseFilterStateBadPricesIgnored(t *testing.T) {
	state := parseFilterState(contextWithQuery(t, "min_price=cheap&max_price=1e3"))
	assert.Nil(t, state.MinPrice)
	require.NotNil(t, state.MaxPrice)
	assert.Equal(t, 1000.0, *state.MaxPrice)
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, defaultCatalogLimit, parseLimit(contextWithQuery(t, "")))
	assert.Equal(t, 25, parseLimit(contextWithQuery(t, "limit=25")))
	assert.Equal(t, defaultCatalogLimit, parseLimit(contextWithQuery(t, "limit=0")))
	assert.Equal(t, defaultCatalogLimit, parseLimit(contextWithQuery(t, "limit=9000")))
	assert.Equal(t, defaultCatalogLimit, parseLimit(contextWithQuery(t, "limit=lots")))
}
