package ucertify

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/ucertify/client-go/internal/api"
	"github.com/ucertify/client-go/internal/apierrors"
	"github.com/ucertify/client-go/internal/crypto"
)

// Version is the SDK version.
const Version = api.Version

// tokenPath is the client-credentials exchange endpoint.
const tokenPath = "/oauth/token"

// Request describes a call made through the generic Get, Post, Put and
// Delete methods.
type Request = api.Request

// FilePart is a file uploaded as multipart/form-data.
type FilePart = api.FilePart

// Response is the outcome of a successful call: the HTTP status and the
// JSON body.
type Response = api.Response

// Credentials identify the caller. Supply either AccessToken, or ClientID
// together with ClientSecret.
type Credentials struct {
	AccessToken  string
	ClientID     string
	ClientSecret string
}

// validate enforces that exactly one credential mode is populated.
func (c Credentials) validate() error {
	hasToken := c.AccessToken != ""
	hasPair := c.ClientID != "" && c.ClientSecret != ""
	partialPair := (c.ClientID != "") != (c.ClientSecret != "")

	if hasToken == hasPair || partialPair {
		return apierrors.Parameter(apierrors.ErrInvalidCredentials,
			"Invalid arguments. Use CLIENT_ID and CLIENT SECRET, or ACCESS_TOKEN")
	}
	return nil
}

// Client is the certifier API client. It is safe for concurrent use.
type Client struct {
	apiClient    *api.Client
	accessToken  string
	clientID     string
	clientSecret string
	sandbox      atomic.Bool
	logger       zerolog.Logger

	tokens singleflight.Group
}

// New creates a client from explicit credentials.
func New(creds Credentials, opts ...Option) (*Client, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	return newClient(creds, cfg)
}

// NewWithToken creates a client that authenticates with an access token.
func NewWithToken(accessToken string, opts ...Option) (*Client, error) {
	return New(Credentials{AccessToken: accessToken}, opts...)
}

// NewWithSecret creates a client that signs requests with a client secret.
func NewWithSecret(clientID, clientSecret string, opts ...Option) (*Client, error) {
	return New(Credentials{ClientID: clientID, ClientSecret: clientSecret}, opts...)
}

func newClient(creds Credentials, cfg *clientConfig) (*Client, error) {
	if err := creds.validate(); err != nil {
		return nil, err
	}

	apiClient, err := api.New(cfg.baseURL,
		api.WithHTTPClient(cfg.httpClient),
		api.WithUserAgent(cfg.userAgent),
		api.WithLogger(cfg.logger),
	)
	if err != nil {
		return nil, err
	}

	c := &Client{
		apiClient:    apiClient,
		accessToken:  creds.AccessToken,
		clientID:     creds.ClientID,
		clientSecret: creds.ClientSecret,
		logger:       cfg.logger,
	}
	c.sandbox.Store(cfg.sandbox)

	return c, nil
}

// SandboxMode reports whether requests target the sandbox environment.
func (c *Client) SandboxMode() bool {
	return c.sandbox.Load()
}

// SetSandboxMode switches sandbox mode. The flag is read when each request
// is built, so calls already in flight keep the value they started with.
func (c *Client) SetSandboxMode(enabled bool) {
	c.sandbox.Store(enabled)
}

// Get issues an authenticated GET request.
func (c *Client) Get(ctx context.Context, req *Request) (*Response, error) {
	return c.send(ctx, req, c.apiClient.Get)
}

// Post issues an authenticated POST request.
func (c *Client) Post(ctx context.Context, req *Request) (*Response, error) {
	return c.send(ctx, req, c.apiClient.Post)
}

// Put issues an authenticated PUT request.
func (c *Client) Put(ctx context.Context, req *Request) (*Response, error) {
	return c.send(ctx, req, c.apiClient.Put)
}

// Delete issues an authenticated DELETE request.
func (c *Client) Delete(ctx context.Context, req *Request) (*Response, error) {
	return c.send(ctx, req, c.apiClient.Delete)
}

func (c *Client) send(
	ctx context.Context,
	req *Request,
	do func(context.Context, *api.Request) (*api.Response, error),
) (*Response, error) {
	if req == nil {
		return nil, apierrors.Parameter(nil, "request is required")
	}

	signed := req.Clone()
	if err := c.authenticate(signed); err != nil {
		return nil, err
	}

	return do(ctx, signed)
}

// sandboxFor resolves the sandbox flag for req: the Sandbox field, then a
// caller-supplied sandbox header, then the client's mode.
func (c *Client) sandboxFor(req *api.Request) bool {
	if req.Sandbox != nil {
		return *req.Sandbox
	}
	for k, v := range req.Headers {
		if strings.EqualFold(k, api.HeaderSandbox) {
			if enabled, err := strconv.ParseBool(v); err == nil {
				return enabled
			}
		}
	}
	return c.SandboxMode()
}

// authenticate attaches the sandbox flag and, unless SkipAuth is set, the
// caller's credentials. Secret-based clients sign the payload; token-based
// clients pass the token as a query parameter.
func (c *Client) authenticate(req *api.Request) error {
	req.SetHeader(api.HeaderSandbox, strconv.FormatBool(c.sandboxFor(req)))

	if req.SkipAuth {
		return nil
	}

	if c.clientSecret == "" {
		req.SetParam("access_token", c.accessToken)
		return nil
	}

	payload, err := req.Payload()
	if err != nil {
		return err
	}
	req.SetHeader(api.HeaderAPIKey, c.clientID)
	req.SetHeader(api.HeaderSignature, crypto.Sign(c.clientSecret, payload))
	return nil
}

// AccessToken returns the configured access token, or exchanges the client
// id and secret for one. Concurrent exchanges share a single request.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	if c.accessToken != "" {
		return c.accessToken, nil
	}

	v, err, _ := c.tokens.Do(tokenPath, func() (any, error) {
		resp, err := c.Post(ctx, &Request{
			Path: tokenPath,
			Body: url.Values{
				"client_id":     {c.clientID},
				"client_secret": {c.clientSecret},
				"grant_type":    {"client_credentials"},
			},
			Headers:  map[string]string{api.HeaderContentType: api.MIMEForm},
			SkipAuth: true,
		})
		if err != nil {
			return "", err
		}

		var result struct {
			AccessToken string `json:"access_token"`
		}
		if err := resp.Decode(&result); err != nil {
			return "", err
		}
		if strings.TrimSpace(result.AccessToken) == "" {
			return "", apierrors.BadResponse("missing access_token", nil)
		}
		return result.AccessToken, nil
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}
