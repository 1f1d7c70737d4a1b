package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/rasoilink/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client lists the marketplace catalog from the Firestore REST API.
// Two collections are involved: "users" (suppliers) and "products"; the
// supplier display name is joined onto each product before anything else
// in the service sees it.
type Client struct {
	httpClient  *http.Client
	projectID   string
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new Firestore catalog client
func NewClient(projectID, apiKey, baseURL string) *Client {
	// Firestore free tier allows 50k reads/day; 1 req/sec with a small
	// burst keeps a busy lunch rush well inside that.
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		projectID:   projectID,
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug toggles request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// ListProducts fetches suppliers and products and returns the joined
// catalog snapshot. Implements domain.CatalogProvider.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	users, err := c.listCollection(ctx, "users")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	productDocs, err := c.listCollection(ctx, "products")
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if len(productDocs) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	products := mapProducts(productDocs, supplierNames(users))

	if c.debug {
		log.Printf("[CATALOG] Loaded %d products from %d supplier accounts", len(products), len(users))
	}

	return products, nil
}

// listCollection lists every document of one collection, following page
// tokens. Each page request is rate-limited and retried up to 3 times for
// transient failures.
func (c *Client) listCollection(ctx context.Context, collection string) ([]firestoreDocument, error) {
	var docs []firestoreDocument
	pageToken := ""

	for {
		page, err := c.listPage(ctx, collection, pageToken)
		if err != nil {
			return nil, err
		}

		docs = append(docs, page.Documents...)
		if page.NextPageToken == "" {
			return docs, nil
		}
		pageToken = page.NextPageToken
	}
}

// listPage fetches one page of a collection listing.
func (c *Client) listPage(ctx context.Context, collection, pageToken string) (*listResponse, error) {
	endpoint := fmt.Sprintf("%s/projects/%s/databases/(default)/documents/%s",
		c.baseURL, c.projectID, collection)
	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("pageSize", "300")
	if pageToken != "" {
		params.Add("pageToken", pageToken)
	}

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[CATALOG] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[CATALOG] API error (attempt %d) - Status: %d, Body: %s",
					attempt, resp.StatusCode, string(body))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrCatalogAPIFailure, resp.StatusCode)
			if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusForbidden {
				return nil, lastErr // configuration problem, retrying won't help
			}
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		var page listResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &page, nil
	}

	return nil, lastErr
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "RasoiLink/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}

	return resp, nil
}
