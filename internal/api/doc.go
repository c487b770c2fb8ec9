// Package api provides the REST transport for the certifier API. It turns a
// logical [Request] descriptor into an HTTP request, executes it, and
// normalizes the outcome into a [Response] envelope or a single error type.
//
// # Request Building
//
// Every request carries a user-agent, accept and content-type header. Header
// names supplied by the caller are lower-cased and override the defaults. The
// body is encoded according to the content type:
//
//   - application/json (default): the body is JSON-encoded.
//   - any other content type: the body is form-encoded and must be a
//     url.Values, map[string]string, string or []byte.
//   - a [FilePart] switches the request to multipart/form-data.
//
// [Request.Payload] returns the exact bytes that will be sent, so callers can
// sign them before execution. The encoded body is cached on the request, so
// a body is marshalled once even when it is both signed and sent.
//
// # Error Handling
//
// All failures are reported as *apierrors.Error:
//
//   - KindTransport (status 500): the request never produced a response.
//   - KindHTTPStatus (actual status): the service answered outside 2xx. The
//     message is taken from the body's "message" field, falling back to the
//     raw body.
//   - KindBadResponse (status 500): a 2xx body that is not valid JSON.
//
// There are no retries. Timeouts come from the caller's context and the
// configured *http.Client.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
