package freejourney

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/checkmarble/freejourney-go/config"
	"github.com/cockroachdb/errors"
)

const (
	// HeaderKey carries the API token on every request.
	HeaderKey = "X-Freejourney-Key"

	defaultUserAgent = "freejourney-go/1"
)

// Client is the entrypoint for calling the Freejourney API.
//
// Operations are grouped in namespaces, mirroring the API itself:
//
//	fj, err := freejourney.New("your-api-key")
//
//	joke, err := fj.Fun.DadJoke(ctx)
//	completion, err := fj.ChatCompletion.ChatGPT4(ctx, "What is 1 + 1?")
//
// A Client does not change after creation and can be shared between
// goroutines.
type Client struct {
	ChatCompletion *ChatCompletion
	Fun            *Fun
	Animals        *Animals
	Moderation     *Moderation
	Images         *Images

	token      string
	httpClient *http.Client
	endpoints  endpointTable
	baseUrl    string
	userAgent  string
	logger     *slog.Logger
	journal    *Journal
	validate   bool

	overrides map[Operation]string
}

// New creates a client authenticating with the given token.
//
// Example usage:
//
//	fj, err := freejourney.New(
//		os.Getenv("FREEJOURNEY_TOKEN"),
//		freejourney.WithLogger(slog.Default()),
//	)
func New(token string, opts ...clientOption) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	endpoints, err := parseEndpoints(defaultEndpoints)
	if err != nil {
		return nil, errors.Wrap(err, "could not load endpoint table")
	}

	c := Client{
		token:     token,
		endpoints: endpoints,
		baseUrl:   endpoints.base,
		userAgent: defaultUserAgent,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate:  true,
		overrides: make(map[Operation]string),
	}

	for _, opt := range opts {
		opt(&c)
	}

	for op, path := range c.overrides {
		if _, ok := descriptors[op]; !ok {
			return nil, errors.Newf("cannot override path of unknown operation '%s'", op)
		}

		c.endpoints.paths[op] = path
	}

	c.ChatCompletion = &ChatCompletion{&c}
	c.Fun = &Fun{&c}
	c.Animals = &Animals{&c}
	c.Moderation = &Moderation{&c}
	c.Images = &Images{&c}

	return &c, nil
}

// NewFromConfig creates a client from loaded configuration. Options are
// applied after the configuration, so they take precedence.
func NewFromConfig(cfg config.Config, opts ...clientOption) (*Client, error) {
	cfgOpts := make([]clientOption, 0, 3)

	if cfg.BaseUrl != "" {
		cfgOpts = append(cfgOpts, WithBaseUrl(cfg.BaseUrl))
	}
	if cfg.UserAgent != "" {
		cfgOpts = append(cfgOpts, WithUserAgent(cfg.UserAgent))
	}
	if cfg.Timeout > 0 {
		cfgOpts = append(cfgOpts, WithHttpClient(&http.Client{Timeout: cfg.Timeout}))
	}

	return New(cfg.Token, append(cfgOpts, opts...)...)
}

func (c *Client) Token() string {
	return c.token
}

func (c *Client) BaseUrl() string {
	return c.baseUrl
}

// HttpClient returns the HTTP client set with WithHttpClient, or nil when
// http.DefaultClient is used.
func (c *Client) HttpClient() *http.Client {
	return c.httpClient
}

// Endpoint returns how an operation is reached by this client.
func (c *Client) Endpoint(op Operation) (Endpoint, error) {
	return c.endpoints.endpoint(op)
}

func (c *Client) doer() *http.Client {
	if c.httpClient != nil {
		return c.httpClient
	}

	return http.DefaultClient
}
