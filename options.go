package ucertify

import (
	"net/http"

	"github.com/rs/zerolog"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	sandbox    bool
	logger     zerolog.Logger
	envFiles   []string
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL. Without it the client reads
// UCERTIFY_API_URL from the environment.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithUserAgent overrides the user-agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}

// WithSandbox sets the initial sandbox mode.
// Default: false
func WithSandbox(enabled bool) Option {
	return func(c *clientConfig) {
		c.sandbox = enabled
	}
}

// WithLogger sets the logger for request diagnostics.
// Default: zerolog.Nop()
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithEnvFiles loads the given dotenv files before the environment is read.
// Variables already set in the process environment take precedence.
func WithEnvFiles(files ...string) Option {
	return func(c *clientConfig) {
		c.envFiles = append(c.envFiles, files...)
	}
}

// CallOption configures a single call.
type CallOption func(*Request)

// WithRequestSandbox overrides the client's sandbox mode for one call
// without changing SandboxMode.
func WithRequestSandbox(enabled bool) CallOption {
	return func(r *Request) {
		r.Sandbox = &enabled
	}
}

func applyCallOptions(req *Request, opts []CallOption) *Request {
	for _, opt := range opts {
		if opt != nil {
			opt(req)
		}
	}
	return req
}
