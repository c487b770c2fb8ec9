//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ucertify "github.com/ucertify/client-go"
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	if os.Getenv(ucertify.EnvAPIURL) == "" {
		os.Stderr.WriteString("Skipping integration tests: " + ucertify.EnvAPIURL + " not set\n")
		os.Exit(0)
	}

	if os.Getenv(ucertify.EnvClientID) == "" && os.Getenv(ucertify.EnvAccessToken) == "" {
		os.Stderr.WriteString("Skipping integration tests: no credentials set\n")
		os.Exit(0)
	}

	os.Stderr.WriteString("Running integration tests...\n")
	os.Stderr.WriteString("API URL: " + os.Getenv(ucertify.EnvAPIURL) + "\n")

	os.Exit(m.Run())
}

func newClient(t *testing.T) *ucertify.Client {
	t.Helper()

	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)

	client, err := ucertify.NewFromEnv(
		ucertify.WithSandbox(true),
		ucertify.WithLogger(logger),
	)
	require.NoError(t, err)
	return client
}

func TestIntegration_CertifyAndFetch(t *testing.T) {
	client := newClient(t)
	client.SetSandboxMode(true)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.Certify(ctx, []ucertify.Link{
		{Name: "picture_0", Link: "https://cloudflare-ipfs.com/ipfs/QmUwHMFY9GSiKgjqyZpgAv2LhBrh7GV8rtLuagbry9wmMU"},
		{Name: "picture_1", Link: "https://ipfs.io/ipfs/Qmep61aZqJhhmSkhQHUSUme5RFbi8ZfccxXC1TyjKHcEig"},
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, resp.Status, 200)
	assert.Less(t, resp.Status, 300)

	cert, err := ucertify.ParseCertification(resp)
	require.NoError(t, err)
	require.NotEmpty(t, cert.Identifier())

	fetched, err := client.GetCertification(ctx, cert.Identifier())
	require.NoError(t, err)
	assert.Equal(t, 200, fetched.Status)
}

func TestIntegration_UnknownCertification(t *testing.T) {
	client := newClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := client.GetCertification(ctx, "does-not-exist-0000")
	require.Error(t, err)

	var certErr *ucertify.Error
	require.True(t, errors.As(err, &certErr))
	assert.Equal(t, ucertify.KindHTTPStatus, certErr.Kind)
}
