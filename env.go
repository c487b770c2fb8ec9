package ucertify

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/ucertify/client-go/internal/apierrors"
)

// Environment variables read by the client.
const (
	EnvAPIURL       = "UCERTIFY_API_URL"
	EnvAccessToken  = "UCERTIFY_ACCESS_TOKEN"
	EnvClientID     = "UCERTIFY_CLIENT_ID"
	EnvClientSecret = "UCERTIFY_CLIENT_SECRET"
	EnvSandbox      = "UCERTIFY_SANDBOX"
)

// buildConfig applies opts, loads env files and resolves the base URL.
func buildConfig(opts []Option) (*clientConfig, error) {
	cfg := &clientConfig{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(cfg.envFiles) > 0 {
		if err := godotenv.Load(cfg.envFiles...); err != nil {
			return nil, apierrors.Parameter(err, fmt.Sprintf("load env files: %v", err))
		}
	}

	if strings.TrimSpace(cfg.baseURL) == "" {
		cfg.baseURL = strings.TrimSpace(os.Getenv(EnvAPIURL))
	}
	if cfg.baseURL == "" {
		return nil, apierrors.Parameter(apierrors.ErrMissingBaseURL,
			fmt.Sprintf("set %s or use WithBaseURL", EnvAPIURL))
	}

	return cfg, nil
}

// NewFromEnv creates a client from UCERTIFY_* environment variables.
// UCERTIFY_ACCESS_TOKEN selects token mode; otherwise UCERTIFY_CLIENT_ID and
// UCERTIFY_CLIENT_SECRET are used. UCERTIFY_SANDBOX sets the initial sandbox
// mode. Options are applied first, so WithEnvFiles can supply the variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	creds := Credentials{
		AccessToken:  os.Getenv(EnvAccessToken),
		ClientID:     os.Getenv(EnvClientID),
		ClientSecret: os.Getenv(EnvClientSecret),
	}

	if raw := strings.TrimSpace(os.Getenv(EnvSandbox)); raw != "" {
		sandbox, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, apierrors.Parameter(err, fmt.Sprintf("%s must be a boolean, got %q", EnvSandbox, raw))
		}
		cfg.sandbox = sandbox
	}

	return newClient(creds, cfg)
}
