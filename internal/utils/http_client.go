package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// APIKeyHeader is the header carrying the shared API key of the remote
// contact store.
const APIKeyHeader = "ApiKey"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient().WithAPIKey(key)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewJSONClient returns a client bound to baseURL that sends and expects
// JSON and attaches apiKey to every request.
func NewJSONClient(baseURL string, timeout time.Duration, apiKey string) *HTTPClient {
	c := NewHTTPClient().WithAPIKey(apiKey)
	c.SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return c
}

// WithAPIKey sets the ApiKey header on every request. An empty key leaves
// the client unchanged.
func (c *HTTPClient) WithAPIKey(apiKey string) *HTTPClient {
	if apiKey != "" {
		c.SetHeader(APIKeyHeader, apiKey)
	}
	return c
}

// WithUserAgent identifies the client as "phonebook/<version>". An empty
// version keeps resty's default agent.
func (c *HTTPClient) WithUserAgent(version string) *HTTPClient {
	if version != "" {
		c.SetHeader("User-Agent", "phonebook/"+version)
	}
	return c
}
