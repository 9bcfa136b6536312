package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/VGuerra123/TiendaOnline-sub000/internal/config"
	"github.com/VGuerra123/TiendaOnline-sub000/internal/domain"
	"github.com/VGuerra123/TiendaOnline-sub000/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(config.StorefrontConfig{
		ShopDomain:  "tienda-test.myshopify.com",
		AccessToken: "shpsf_test_token",
		APIVersion:  "2024-01",
	}, zap.NewNop())
	client.baseURL = server.URL
	return client, server
}

func graphqlOK(t *testing.T, data interface{}) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{"data": data}))
	}
}

func TestClientDegradedMode(t *testing.T) {
	// Explicitly unset credentials: reads return empty, writes reject
	client := NewClient(config.StorefrontConfig{APIVersion: "2024-01"}, zap.NewNop())

	assert.False(t, client.IsConfigured())

	for _, limit := range []int{0, 1, 50, 500} {
		assert.Empty(t, client.GetAllProducts(context.Background(), limit))
	}

	_, err := client.CreateCart(context.Background())
	var notConfigured *errors.ErrNotConfigured
	require.ErrorAs(t, err, &notConfigured)

	_, err = client.AddLines(context.Background(), "cart-1", []domain.CartLineInput{{VariantID: "v1", Quantity: 1}})
	require.ErrorAs(t, err, &notConfigured)

	_, err = client.GetCart(context.Background(), "cart-1")
	require.ErrorAs(t, err, &notConfigured)
}

func TestClientWireProtocol(t *testing.T) {
	var gotPath, gotToken, gotContentType string
	var gotBody GraphQLRequest

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Storefront-Access-Token")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"data": {"products": {"edges": []}}}`))
	})

	client.GetAllProducts(context.Background(), 42)

	assert.Equal(t, "/api/2024-01/graphql.json", gotPath)
	assert.Equal(t, "shpsf_test_token", gotToken)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, ProductsQuery, gotBody.Query)
	assert.EqualValues(t, 42, gotBody.Variables["first"])
}

func TestGetAllProductsNormalizes(t *testing.T) {
	client, _ := newTestClient(t, graphqlOK(t, map[string]interface{}{
		"products": map[string]interface{}{
			"edges": []interface{}{
				map[string]interface{}{"node": map[string]interface{}{
					"id":          "gid://shopify/Product/1",
					"title":       "iPhone 15",
					"vendor":      "Apple",
					"productType": "Smartphones",
					"createdAt":   "2024-01-01T00:00:00Z",
					"updatedAt":   "2024-01-02T00:00:00Z",
				}},
				// Malformed node (no title) is skipped, not fatal
				map[string]interface{}{"node": map[string]interface{}{
					"id":        "gid://shopify/Product/2",
					"createdAt": "2024-01-01T00:00:00Z",
					"updatedAt": "2024-01-01T00:00:00Z",
				}},
			},
		},
	}))

	products := client.GetAllProducts(context.Background(), 10)
	require.Len(t, products, 1)
	assert.Equal(t, "iPhone 15", products[0].Title)
	assert.Equal(t, "Apple", products[0].Vendor)
}

func TestGetAllProductsFailSoft(t *testing.T) {
	t.Run("ServerError", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		assert.Empty(t, client.GetAllProducts(context.Background(), 10))
	})

	t.Run("GraphQLErrors", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"errors": [{"message": "throttled"}]}`))
		})
		assert.Empty(t, client.GetAllProducts(context.Background(), 10))
	})

	t.Run("Garbage", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>offline</html>`))
		})
		assert.Empty(t, client.GetAllProducts(context.Background(), 10))
	})
}

func testCartJSON(id string) map[string]interface{} {
	return map[string]interface{}{
		"id":          id,
		"checkoutUrl": "https://tienda-test.myshopify.com/checkout/" + id,
		"lines":       map[string]interface{}{"edges": []interface{}{}},
		"cost": map[string]interface{}{
			"subtotalAmount": map[string]interface{}{"amount": "0.0", "currencyCode": "CLP"},
			"totalAmount":    map[string]interface{}{"amount": "0.0", "currencyCode": "CLP"},
		},
	}
}

func TestCreateCart(t *testing.T) {
	client, _ := newTestClient(t, graphqlOK(t, map[string]interface{}{
		"cartCreate": map[string]interface{}{
			"cart":       testCartJSON("gid://shopify/Cart/new"),
			"userErrors": []interface{}{},
		},
	}))

	cart, err := client.CreateCart(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/Cart/new", cart.ID)
	assert.Contains(t, cart.CheckoutURL, "/checkout/")
}

func TestAddLinesUserErrors(t *testing.T) {
	client, _ := newTestClient(t, graphqlOK(t, map[string]interface{}{
		"cartLinesAdd": map[string]interface{}{
			"cart": nil,
			"userErrors": []interface{}{
				map[string]interface{}{"field": []string{"lines"}, "message": "The variant is out of stock"},
			},
		},
	}))

	_, err := client.AddLines(context.Background(), "cart-1", []domain.CartLineInput{{VariantID: "v1", Quantity: 3}})

	var remoteErr *errors.ErrRemoteValidation
	require.ErrorAs(t, err, &remoteErr)
	// Platform messages surface verbatim
	require.Len(t, remoteErr.Messages, 1)
	assert.Equal(t, "The variant is out of stock", remoteErr.Messages[0])
}

func TestAddLinesRejectsNonPositiveQuantity(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no network call expected for invalid quantity")
	})

	var validationErr *errors.ErrValidation

	_, err := client.AddLines(context.Background(), "cart-1", []domain.CartLineInput{{VariantID: "v1", Quantity: 0}})
	require.ErrorAs(t, err, &validationErr)

	_, err = client.AddLines(context.Background(), "cart-1", []domain.CartLineInput{{VariantID: "v1", Quantity: -2}})
	require.ErrorAs(t, err, &validationErr)
}

func TestUpdateLinesPassesQuantityZeroThrough(t *testing.T) {
	var gotBody GraphQLRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]interface{}{"data": map[string]interface{}{
			"cartLinesUpdate": map[string]interface{}{
				"cart":       testCartJSON("cart-1"),
				"userErrors": []interface{}{},
			},
		}})
	})

	// Quantity 0 is not special-cased into a removal
	_, err := client.UpdateLines(context.Background(), "cart-1", []domain.CartLineUpdate{{LineID: "line-1", Quantity: 0}})
	require.NoError(t, err)

	lines, ok := gotBody.Variables["lines"].([]interface{})
	require.True(t, ok)
	require.Len(t, lines, 1)
	line := lines[0].(map[string]interface{})
	assert.EqualValues(t, 0, line["quantity"])
	assert.Equal(t, "line-1", line["id"])
}

func TestRemoveLines(t *testing.T) {
	var gotBody GraphQLRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]interface{}{"data": map[string]interface{}{
			"cartLinesRemove": map[string]interface{}{
				"cart":       testCartJSON("cart-1"),
				"userErrors": []interface{}{},
			},
		}})
	})

	cart, err := client.RemoveLines(context.Background(), "cart-1", []string{"line-1", "line-2"})
	require.NoError(t, err)
	assert.Equal(t, "cart-1", cart.ID)

	ids, ok := gotBody.Variables["lineIds"].([]interface{})
	require.True(t, ok)
	assert.Len(t, ids, 2)
}

func TestGetCartNotFound(t *testing.T) {
	client, _ := newTestClient(t, graphqlOK(t, map[string]interface{}{"cart": nil}))

	_, err := client.GetCart(context.Background(), "gone")
	var notFound *errors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "cart", notFound.Resource)
}

func TestCartMutationTransportError(t *testing.T) {
	client, server := newTestClient(t, nil)
	server.Close()

	_, err := client.CreateCart(context.Background())
	var transportErr *errors.ErrTransport
	require.ErrorAs(t, err, &transportErr)
}
