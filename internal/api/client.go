package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ucertify/client-go/internal/apierrors"
)

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithUserAgent overrides the default user agent.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new API client rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, apierrors.Parameter(apierrors.ErrMissingBaseURL, "")
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		userAgent:  DefaultUserAgent,
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the base URL requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, req *Request) (*Response, error) {
	return c.withMethod(ctx, http.MethodGet, req)
}

// Post issues a POST request.
func (c *Client) Post(ctx context.Context, req *Request) (*Response, error) {
	return c.withMethod(ctx, http.MethodPost, req)
}

// Put issues a PUT request.
func (c *Client) Put(ctx context.Context, req *Request) (*Response, error) {
	return c.withMethod(ctx, http.MethodPut, req)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, req *Request) (*Response, error) {
	return c.withMethod(ctx, http.MethodDelete, req)
}

func (c *Client) withMethod(ctx context.Context, method string, req *Request) (*Response, error) {
	if req == nil {
		return nil, apierrors.Parameter(nil, "request is required")
	}
	r := *req
	r.Method = method
	return c.Exec(ctx, &r)
}

// Exec builds, sends and classifies a single request.
func (c *Client) Exec(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	log := c.logger.With().
		Str("method", httpReq.Method).
		Str("path", req.Path).
		Logger()
	log.Debug().Msg("sending request")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Warn().Err(err).Dur("duration", time.Since(start)).Msg("request failed")
		return nil, apierrors.Transport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn().Err(err).Int("status", resp.StatusCode).Msg("failed to read response body")
		return nil, apierrors.Transport(err)
	}

	log = log.With().Int("status", resp.StatusCode).Dur("duration", time.Since(start)).Logger()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := parseErrorResponse(resp.StatusCode, body)
		log.Warn().Err(err).Msg("request rejected")
		return nil, err
	}

	result, err := parseBody(resp.StatusCode, body)
	if err != nil {
		log.Warn().Err(err).Msg("unparseable response")
		return nil, err
	}

	log.Debug().Msg("request completed")
	return result, nil
}

// buildRequest turns a descriptor into an *http.Request.
func (c *Client) buildRequest(ctx context.Context, req *Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	headers := map[string]string{
		HeaderUserAgent:   c.userAgent,
		HeaderAccept:      MIMEJSON,
		HeaderContentType: MIMEJSON,
	}
	for k, v := range req.Headers {
		headers[strings.ToLower(k)] = v
	}

	var body []byte
	var err error
	if req.File != nil {
		var contentType string
		body, contentType, err = req.encodeMultipart()
		if err != nil {
			return nil, err
		}
		headers[HeaderContentType] = contentType
	} else {
		body, err = req.encodeBody()
		if err != nil {
			return nil, err
		}
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	url := c.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Params) > 0 {
		url += "?" + req.Params.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, apierrors.Parameter(err, fmt.Sprintf("failed to create request: %v", err))
	}

	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	return httpReq, nil
}
