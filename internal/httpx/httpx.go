package httpx

import (
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultUserAgent = "marketfetch/1.0"

// Client is a small wrapper around http.Client with sane defaults.
// One process serves one request, so the transport keeps few idle conns.
type Client struct {
	HTTP      *http.Client
	UserAgent string
	Headers   map[string]string
}

func New(timeout time.Duration) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          4,
		MaxIdleConnsPerHost:   2,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       30 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
	}
	return &Client{HTTP: &http.Client{Timeout: timeout, Transport: transport}, UserAgent: DefaultUserAgent}
}

// Do sets default headers that the request does not already carry and
// performs it.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	for k, v := range c.Headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}
	return c.HTTP.Do(req)
}

// Resty returns a resty client sharing this client's transport, timeout
// and default headers.
func (c *Client) Resty(baseURL string) *resty.Client {
	rc := resty.NewWithClient(c.HTTP).SetBaseURL(baseURL)
	if c.UserAgent != "" {
		rc.SetHeader("User-Agent", c.UserAgent)
	}
	for k, v := range c.Headers {
		rc.SetHeader(k, v)
	}
	return rc
}
