package ucertify

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGo_CallbackAndFutureAgree(t *testing.T) {
	want := &Response{Status: http.StatusCreated, Body: []byte(`{"id":"abc"}`)}

	var cbResp *Response
	var cbErr error
	cbCalls := 0

	f := Go(context.Background(), func(context.Context) (*Response, error) {
		return want, nil
	}, func(resp *Response, err error) {
		cbCalls++
		cbResp, cbErr = resp, err
	})

	resp, err := f.Result()
	require.NoError(t, err)
	assert.Same(t, want, resp)

	// The callback runs before the future settles.
	assert.Equal(t, 1, cbCalls)
	assert.Same(t, want, cbResp)
	assert.NoError(t, cbErr)
}

func TestGo_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	var cbErr error

	f := Go(context.Background(), func(context.Context) (*Response, error) {
		return nil, boom
	}, func(_ *Response, err error) {
		cbErr = err
	})

	resp, err := f.Wait(context.Background())
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, cbErr, boom)
}

func TestGo_NilCallback(t *testing.T) {
	f := Go(context.Background(), func(context.Context) (*Response, error) {
		return &Response{Status: http.StatusOK}, nil
	}, nil)

	select {
	case <-f.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("future did not settle")
	}

	resp, err := f.Result()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestFuture_WaitHonorsContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	f := Go(context.Background(), func(context.Context) (*Response, error) {
		<-release
		return &Response{Status: http.StatusOK}, nil
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCertifyAsync(t *testing.T) {
	_, server := newFakeService(t, http.StatusCreated, `{"id":"abc"}`)
	client := newSecretClient(t, server.URL)

	done := make(chan *Response, 1)
	f, err := client.CertifyAsync(context.Background(),
		[]Link{{Name: "picture_0", Link: "https://ipfs.io/ipfs/Qm"}},
		func(resp *Response, err error) {
			assert.NoError(t, err)
			done <- resp
		})
	require.NoError(t, err)

	resp, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.JSONEq(t, `{"id":"abc"}`, string(resp.Body))

	cbResp := <-done
	assert.Same(t, resp, cbResp)
}

func TestAsync_PerCallSandbox(t *testing.T) {
	svc, server := newFakeService(t, http.StatusCreated, `{"id":"abc"}`)
	client := newSecretClient(t, server.URL)
	ctx := context.Background()

	f, err := client.CertifyAsync(ctx, []Link{{Name: "a", Link: "https://example.com/a"}}, nil, WithRequestSandbox(true))
	require.NoError(t, err)
	_, err = f.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "true", svc.last(t).Header.Get("Sandbox"))

	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o600))
	f, err = client.CertifyFileAsync(ctx, path, nil, WithRequestSandbox(true))
	require.NoError(t, err)
	_, err = f.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "true", svc.last(t).Header.Get("Sandbox"))

	f, err = client.GetCertificationAsync(ctx, "abc", nil, WithRequestSandbox(true))
	require.NoError(t, err)
	_, err = f.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "true", svc.last(t).Header.Get("Sandbox"))
	assert.False(t, client.SandboxMode())
}

func TestCertifyAsync_ParameterErrorIsSynchronous(t *testing.T) {
	svc, server := newFakeService(t, http.StatusCreated, `{}`)
	client := newSecretClient(t, server.URL)

	called := false
	f, err := client.CertifyAsync(context.Background(), nil, func(*Response, error) { called = true })
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrEmptyPayload)
	assert.False(t, called)
	assert.Zero(t, svc.calls.Load())
}

func TestCertifyFileAsync(t *testing.T) {
	svc, server := newFakeService(t, http.StatusCreated, `{"id":"f"}`)
	client := newSecretClient(t, server.URL)

	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o600))

	f, err := client.CertifyFileAsync(context.Background(), path, nil)
	require.NoError(t, err)

	_, err = f.Result()
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), svc.last(t).Payload)

	_, err = client.CertifyFileAsync(context.Background(), filepath.Join(t.TempDir(), "missing"), nil)
	assert.ErrorIs(t, err, ErrMissingFile)
}

func TestGetCertificationAsync_HTTPError(t *testing.T) {
	_, server := newFakeService(t, http.StatusNotFound, `{"message":"nope"}`)
	client := newSecretClient(t, server.URL)

	errCh := make(chan error, 1)
	f, err := client.GetCertificationAsync(context.Background(), "abc", func(_ *Response, err error) {
		errCh <- err
	})
	require.NoError(t, err)

	_, err = f.Result()
	var certErr *Error
	require.ErrorAs(t, err, &certErr)
	assert.Equal(t, 404, certErr.Status)
	assert.Equal(t, err, <-errCh)

	_, err = client.GetCertificationAsync(context.Background(), "", nil)
	assert.ErrorIs(t, err, ErrMissingID)
}
