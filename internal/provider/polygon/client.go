package polygon

import (
	"net/http"
	"net/url"
)

const baseURL = "https://api.polygon.io"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=polygon_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// PolygonAPIClient is a client for the Polygon REST API.
type PolygonAPIClient struct {
	// baseURL is the base URL for the API.
	baseURL string
	// httpClient is the HTTP httpClient.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
	// query contains additional query parameters to be sent with each request.
	query url.Values
}

// PolygonAPIClientOption is a configuration option for the Polygon API client.
type PolygonAPIClientOption func(*PolygonAPIClient)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) PolygonAPIClientOption {
	return func(c *PolygonAPIClient) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) PolygonAPIClientOption {
	return func(c *PolygonAPIClient) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) PolygonAPIClientOption {
	return func(c *PolygonAPIClient) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// NewPolygonAPIClient creates a new Polygon API client.
func NewPolygonAPIClient(key string, options ...PolygonAPIClientOption) (*PolygonAPIClient, error) {
	var polygonAPIClient = &PolygonAPIClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
		query:      url.Values{},
	}
	if key != "" {
		// Polygon accepts the key as a query parameter on every endpoint.
		// https://polygon.io/docs/stocks/getting-started
		polygonAPIClient.query.Add("apiKey", key)
	}
	for _, option := range options {
		option(polygonAPIClient)
	}
	return polygonAPIClient, nil
}
