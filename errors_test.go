package ucertify

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ucertify/client-go/internal/apierrors"
)

func TestErrors_PublicAliasesMatchInternal(t *testing.T) {
	err := fmt.Errorf("lookup: %w", apierrors.HTTPStatus(429, "slow down"))

	assert.ErrorIs(t, err, ErrRateLimited)
	assert.ErrorIs(t, err, ErrHTTPStatus)
	assert.NotErrorIs(t, err, ErrTransport)

	var certErr *Error
	if assert.True(t, errors.As(err, &certErr)) {
		assert.Equal(t, KindHTTPStatus, certErr.Kind)
		assert.Equal(t, "API error 429: slow down", certErr.Error())
	}
}

func TestErrors_KindsAreDistinct(t *testing.T) {
	kinds := []ErrorKind{KindParameter, KindTransport, KindHTTPStatus, KindBadResponse}
	seen := map[ErrorKind]bool{}
	for _, k := range kinds {
		assert.False(t, seen[k], "duplicate kind %q", k)
		seen[k] = true
	}
}
