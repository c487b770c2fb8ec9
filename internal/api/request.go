package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"mime/multipart"
	"net/url"
	"strings"

	"github.com/ucertify/client-go/internal/apierrors"
)

// MIME types understood by the transport.
const (
	MIMEJSON = "application/json"
	MIMEForm = "application/x-www-form-urlencoded"
)

// Header names used by the certifier API.
const (
	HeaderUserAgent   = "user-agent"
	HeaderAccept      = "accept"
	HeaderContentType = "content-type"
	HeaderAPIKey      = "u-cert-api-key"
	HeaderSignature   = "u-cert-signature"
	HeaderSandbox     = "sandbox"
)

// FilePart is a file sent as multipart/form-data.
type FilePart struct {
	FieldName string
	FileName  string
	Content   []byte
}

// Request is a logical description of an outbound call.
type Request struct {
	// Path is appended to the client's base URL.
	Path string
	// Method is set by Get, Post, Put and Delete.
	Method string
	// Body is JSON-encoded, or form-encoded when the content type is not JSON.
	// Form bodies are url.Values, map[string]string, string or []byte.
	Body any
	// File, when set, replaces Body with a multipart upload.
	File *FilePart
	// Params are added to the query string.
	Params url.Values
	// Headers override the default headers. Names are case-insensitive.
	Headers map[string]string
	// SkipAuth marks the request as not requiring credentials.
	SkipAuth bool
	// Sandbox, when set, overrides the client's sandbox mode for this request.
	Sandbox *bool

	// encoded caches the encoded Body so signing and sending use the same bytes.
	encoded []byte
}

// Clone returns a copy of r whose headers and params can be modified
// without affecting r.
func (r *Request) Clone() *Request {
	c := *r
	c.encoded = nil
	c.Headers = make(map[string]string, len(r.Headers))
	for k, v := range r.Headers {
		c.Headers[strings.ToLower(k)] = v
	}
	if r.Params != nil {
		c.Params = maps.Clone(r.Params)
	}
	return &c
}

// SetHeader sets a header, normalizing its name to lower case.
func (r *Request) SetHeader(name, value string) {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[strings.ToLower(name)] = value
}

// SetParam sets a query parameter.
func (r *Request) SetParam(name, value string) {
	if r.Params == nil {
		r.Params = url.Values{}
	}
	r.Params.Set(name, value)
}

// ContentType returns the content type the body will be encoded with,
// ignoring multipart uploads.
func (r *Request) ContentType() string {
	for k, v := range r.Headers {
		if strings.EqualFold(k, HeaderContentType) {
			return v
		}
	}
	return MIMEJSON
}

// Payload returns the bytes covered by the request signature: the raw file
// content for uploads, otherwise the encoded body.
func (r *Request) Payload() ([]byte, error) {
	if r.File != nil {
		return r.File.Content, nil
	}
	return r.encodeBody()
}

// encodeBody encodes Body according to the content type. The result is
// cached on r.
func (r *Request) encodeBody() ([]byte, error) {
	if r.encoded != nil {
		return r.encoded, nil
	}
	data, err := r.marshalBody()
	if err != nil {
		return nil, err
	}
	r.encoded = data
	return data, nil
}

func (r *Request) marshalBody() ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	if isJSON(r.ContentType()) {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, apierrors.Parameter(err, "failed to marshal request body")
		}
		return data, nil
	}

	switch form := r.Body.(type) {
	case url.Values:
		return []byte(form.Encode()), nil
	case map[string]string:
		values := url.Values{}
		for k, v := range form {
			values.Set(k, v)
		}
		return []byte(values.Encode()), nil
	case string:
		return []byte(form), nil
	case []byte:
		return form, nil
	default:
		return nil, apierrors.Parameter(nil,
			fmt.Sprintf("form body must be url.Values, map[string]string, string or []byte, got %T", r.Body))
	}
}

// encodeMultipart writes File as multipart/form-data and returns the body
// together with its content type.
func (r *Request) encodeMultipart() ([]byte, string, error) {
	var buf bytes.Buffer
	contentType, err := r.writeMultipart(&buf)
	if err != nil {
		return nil, "", err
	}
	return buf.Bytes(), contentType, nil
}

func (r *Request) writeMultipart(dst io.Writer) (string, error) {
	w := multipart.NewWriter(dst)

	part, err := w.CreateFormFile(r.File.FieldName, r.File.FileName)
	if err != nil {
		return "", apierrors.Parameter(err, fmt.Sprintf("failed to create form file: %v", err))
	}
	if _, err := part.Write(r.File.Content); err != nil {
		return "", apierrors.Parameter(err, fmt.Sprintf("failed to write form file: %v", err))
	}
	if err := w.Close(); err != nil {
		return "", apierrors.Parameter(err, fmt.Sprintf("failed to close multipart writer: %v", err))
	}

	return w.FormDataContentType(), nil
}

func isJSON(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return strings.EqualFold(strings.TrimSpace(mediaType), MIMEJSON)
}
