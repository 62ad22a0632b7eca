package freejourney

import (
	"io"
	"log/slog"
	"net/http"
)

type clientOption func(*Client)

// WithHttpClient sets the HTTP client used to send requests.
//
// If not specified, http.DefaultClient is used.
func WithHttpClient(client *http.Client) clientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithBaseUrl sets the URL every endpoint path is appended to.
func WithBaseUrl(url string) clientOption {
	return func(c *Client) {
		c.baseUrl = url
	}
}

// WithEndpoint overrides the path of one operation.
func WithEndpoint(op Operation, path string) clientOption {
	return func(c *Client) {
		c.overrides[op] = path
	}
}

func WithUserAgent(userAgent string) clientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets where the client logs its calls, at debug level.
//
// Nothing is logged by default.
func WithLogger(logger *slog.Logger) clientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithJournal records every call as a JSON line written to w.
func WithJournal(w io.Writer) clientOption {
	return func(c *Client) {
		c.journal = NewJournal(w)
	}
}

// WithoutResponseValidation disables checking the shape of response payloads
// before decoding them.
func WithoutResponseValidation() clientOption {
	return func(c *Client) {
		c.validate = false
	}
}
