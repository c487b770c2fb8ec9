package ucertify

import (
	"context"
)

// Callback receives the outcome of an asynchronous call. Exactly one of
// resp and err is non-nil.
type Callback func(resp *Response, err error)

// Future is the pending result of an asynchronous call.
type Future struct {
	done chan struct{}
	resp *Response
	err  error
}

// Go runs fn in its own goroutine. When fn returns, cb (if non-nil) is
// invoked with the outcome and then the future settles with the same outcome.
func Go(ctx context.Context, fn func(context.Context) (*Response, error), cb Callback) *Future {
	f := &Future{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		resp, err := fn(ctx)
		if cb != nil {
			cb(resp, err)
		}
		f.resp, f.err = resp, err
	}()

	return f
}

// Done is closed once the future has settled.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the future settles or ctx is done. Cancelling ctx stops
// the wait, not the underlying request.
func (f *Future) Wait(ctx context.Context) (*Response, error) {
	select {
	case <-f.done:
		return f.resp, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Result blocks until the future settles.
func (f *Future) Result() (*Response, error) {
	<-f.done
	return f.resp, f.err
}

// CertifyAsync validates links and certifies them in the background.
// Parameter errors are returned immediately and never reach cb.
func (c *Client) CertifyAsync(ctx context.Context, links []Link, cb Callback, opts ...CallOption) (*Future, error) {
	if err := validateLinks(links); err != nil {
		return nil, err
	}
	return Go(ctx, func(ctx context.Context) (*Response, error) {
		return c.Certify(ctx, links, opts...)
	}, cb), nil
}

// CertifyFileAsync certifies a local file in the background. Parameter
// errors (missing or unreadable file) are returned immediately.
func (c *Client) CertifyFileAsync(ctx context.Context, path string, cb Callback, opts ...CallOption) (*Future, error) {
	file, err := readCertifyFile(path)
	if err != nil {
		return nil, err
	}
	return Go(ctx, func(ctx context.Context) (*Response, error) {
		return c.certifyContent(ctx, file.name, file.content, opts)
	}, cb), nil
}

// GetCertificationAsync fetches a certification in the background.
func (c *Client) GetCertificationAsync(ctx context.Context, id string, cb Callback, opts ...CallOption) (*Future, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return Go(ctx, func(ctx context.Context) (*Response, error) {
		return c.GetCertification(ctx, id, opts...)
	}, cb), nil
}
