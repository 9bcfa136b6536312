package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/VGuerra123/TiendaOnline-sub000/internal/config"
	"github.com/VGuerra123/TiendaOnline-sub000/internal/domain"
	"github.com/VGuerra123/TiendaOnline-sub000/pkg/errors"
)

// Client is the single point of contact with the Shopify Storefront
// GraphQL API. It hides query text and response-shape differences from
// callers and maps failures onto the error taxonomy in pkg/errors.
//
// No retries, no backoff, no request deduplication: catalog reads fail
// soft (empty result), cart mutations fail loud.
type Client struct {
	shopDomain  string
	accessToken string
	apiVersion  string
	httpClient  *http.Client
	logger      *zap.Logger

	// baseURL overrides the https://{shopDomain} origin when set (tests)
	baseURL string
}

// NewClient creates a new Storefront GraphQL client. Missing credentials
// are allowed: the client enters degraded mode where reads return empty
// results and writes fail with ErrNotConfigured.
func NewClient(cfg config.StorefrontConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	// Normalize shop domain - remove https://, http://, and trailing slashes
	shopDomain := cfg.ShopDomain
	shopDomain = strings.TrimPrefix(shopDomain, "https://")
	shopDomain = strings.TrimPrefix(shopDomain, "http://")
	shopDomain = strings.TrimSuffix(shopDomain, "/")

	c := &Client{
		shopDomain:  shopDomain,
		accessToken: cfg.AccessToken,
		apiVersion:  cfg.APIVersion,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
	if !c.IsConfigured() {
		logger.Warn("Storefront credentials missing, running in degraded mode (empty catalog, cart disabled)")
	}
	return c
}

// IsConfigured reports whether both shop domain and access token are set
func (c *Client) IsConfigured() bool {
	return c.shopDomain != "" && c.accessToken != ""
}

// GraphQLRequest represents a GraphQL request
type GraphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// GraphQLResponse represents a GraphQL response
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// GraphQLError represents a top-level GraphQL error. A non-empty errors
// array is treated as transport-adjacent, distinct from userErrors.
type GraphQLError struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
}

// Execute runs a GraphQL query/mutation against the storefront endpoint
func (c *Client) Execute(ctx context.Context, op, query string, variables map[string]interface{}) (json.RawMessage, error) {
	if !c.IsConfigured() {
		return nil, &errors.ErrNotConfigured{}
	}

	url := c.endpoint()

	reqBody := GraphQLRequest{
		Query:     query,
		Variables: variables,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &errors.ErrTransport{Op: op, Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, &errors.ErrTransport{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Storefront-Access-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errors.ErrTransport{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errors.ErrTransport{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &errors.ErrTransport{Op: op, Err: fmt.Errorf("storefront API status %d: %s", resp.StatusCode, string(body))}
	}

	var graphQLResp GraphQLResponse
	if err := json.Unmarshal(body, &graphQLResp); err != nil {
		return nil, &errors.ErrTransport{Op: op, Err: fmt.Errorf("unmarshal response: %w, body: %s", err, string(body))}
	}

	if len(graphQLResp.Errors) > 0 {
		messages := make([]string, len(graphQLResp.Errors))
		for i, gqlErr := range graphQLResp.Errors {
			messages[i] = gqlErr.Message
		}
		return nil, &errors.ErrTransport{Op: op, Err: fmt.Errorf("graphQL errors: %s", strings.Join(messages, "; "))}
	}

	return graphQLResp.Data, nil
}

func (c *Client) endpoint() string {
	origin := "https://" + c.shopDomain
	if c.baseURL != "" {
		origin = c.baseURL
	}
	return fmt.Sprintf("%s/api/%s/graphql.json", origin, c.apiVersion)
}

// GetAllProducts fetches up to limit products in a single page and
// normalizes them. Catalog browsing is non-critical-path, so this fails
// soft: any transport or GraphQL error yields an empty slice and a log
// line, never an error to the caller. Nodes that fail normalization are
// skipped individually.
func (c *Client) GetAllProducts(ctx context.Context, limit int) []domain.Product {
	if limit <= 0 {
		limit = 100
	}

	data, err := c.Execute(ctx, "getProducts", ProductsQuery, map[string]interface{}{
		"first": limit,
	})
	if err != nil {
		c.logger.Error("Failed to fetch products, returning empty catalog", zap.Error(err))
		return []domain.Product{}
	}

	var result productsData
	if err := json.Unmarshal(data, &result); err != nil {
		c.logger.Error("Failed to parse products response, returning empty catalog", zap.Error(err))
		return []domain.Product{}
	}

	products := make([]domain.Product, 0, len(result.Products.Edges))
	for _, e := range result.Products.Edges {
		p, err := transformProduct(e.Node)
		if err != nil {
			c.logger.Warn("Skipping malformed product node", zap.Error(err))
			continue
		}
		products = append(products, p)
	}
	return products
}

// CreateCart creates an empty cart server-side. Unlike catalog reads, cart
// mutations fail loudly: an error here blocks checkout and must surface.
func (c *Client) CreateCart(ctx context.Context) (*domain.Cart, error) {
	data, err := c.Execute(ctx, "cartCreate", CartCreateMutation, nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		CartCreate cartPayload `json:"cartCreate"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &errors.ErrTransport{Op: "cartCreate", Err: fmt.Errorf("parse response: %w", err)}
	}
	return cartFromPayload("cartCreate", result.CartCreate)
}

// AddLines appends line items to a cart and returns the full updated cart
// snapshot. Quantities must be positive; stock validation is entirely the
// platform's job, no local check happens here.
func (c *Client) AddLines(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.Cart, error) {
	if len(lines) == 0 {
		return nil, &errors.ErrValidation{Message: "at least one line is required"}
	}
	wireLines := make([]CartLineAddInput, 0, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, &errors.ErrValidation{Message: fmt.Sprintf("quantity must be a positive integer, got %d", l.Quantity)}
		}
		wireLines = append(wireLines, CartLineAddInput{MerchandiseID: l.VariantID, Quantity: l.Quantity})
	}

	data, err := c.Execute(ctx, "cartLinesAdd", CartLinesAddMutation, map[string]interface{}{
		"cartId": cartID,
		"lines":  wireLines,
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		CartLinesAdd cartPayload `json:"cartLinesAdd"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &errors.ErrTransport{Op: "cartLinesAdd", Err: fmt.Errorf("parse response: %w", err)}
	}
	return cartFromPayload("cartLinesAdd", result.CartLinesAdd)
}

// UpdateLines sets absolute quantities on existing lines. Quantity 0 is not
// special-cased; callers needing removal must use RemoveLines.
func (c *Client) UpdateLines(ctx context.Context, cartID string, lines []domain.CartLineUpdate) (*domain.Cart, error) {
	if len(lines) == 0 {
		return nil, &errors.ErrValidation{Message: "at least one line is required"}
	}
	wireLines := make([]CartLineUpdateWireInput, 0, len(lines))
	for _, l := range lines {
		wireLines = append(wireLines, CartLineUpdateWireInput{ID: l.LineID, Quantity: l.Quantity})
	}

	data, err := c.Execute(ctx, "cartLinesUpdate", CartLinesUpdateMutation, map[string]interface{}{
		"cartId": cartID,
		"lines":  wireLines,
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		CartLinesUpdate cartPayload `json:"cartLinesUpdate"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &errors.ErrTransport{Op: "cartLinesUpdate", Err: fmt.Errorf("parse response: %w", err)}
	}
	return cartFromPayload("cartLinesUpdate", result.CartLinesUpdate)
}

// RemoveLines removes lines by ID and returns the refreshed cart
func (c *Client) RemoveLines(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error) {
	if len(lineIDs) == 0 {
		return nil, &errors.ErrValidation{Message: "at least one line ID is required"}
	}

	data, err := c.Execute(ctx, "cartLinesRemove", CartLinesRemoveMutation, map[string]interface{}{
		"cartId":  cartID,
		"lineIds": lineIDs,
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		CartLinesRemove cartPayload `json:"cartLinesRemove"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &errors.ErrTransport{Op: "cartLinesRemove", Err: fmt.Errorf("parse response: %w", err)}
	}
	return cartFromPayload("cartLinesRemove", result.CartLinesRemove)
}

// GetCart re-fetches the current cart state
func (c *Client) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	data, err := c.Execute(ctx, "getCart", CartQuery, map[string]interface{}{
		"cartId": cartID,
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		Cart *cartNode `json:"cart"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &errors.ErrTransport{Op: "getCart", Err: fmt.Errorf("parse response: %w", err)}
	}
	if result.Cart == nil {
		return nil, &errors.ErrNotFound{Resource: "cart", ID: cartID}
	}
	cart, err := transformCart(*result.Cart)
	if err != nil {
		return nil, &errors.ErrTransport{Op: "getCart", Err: err}
	}
	return &cart, nil
}

// cartFromPayload maps a mutation payload onto the error taxonomy:
// non-empty userErrors -> ErrRemoteValidation, missing cart -> ErrTransport.
func cartFromPayload(op string, payload cartPayload) (*domain.Cart, error) {
	if len(payload.UserErrors) > 0 {
		messages := make([]string, len(payload.UserErrors))
		for i, ue := range payload.UserErrors {
			messages[i] = ue.Message
		}
		return nil, &errors.ErrRemoteValidation{Op: op, Messages: messages}
	}
	if payload.Cart == nil {
		return nil, &errors.ErrTransport{Op: op, Err: fmt.Errorf("response contains neither cart nor userErrors")}
	}
	cart, err := transformCart(*payload.Cart)
	if err != nil {
		return nil, &errors.ErrTransport{Op: op, Err: err}
	}
	return &cart, nil
}
