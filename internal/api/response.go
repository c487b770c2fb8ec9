package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ucertify/client-go/internal/apierrors"
)

// Response is the normalized outcome of a successful call.
type Response struct {
	// Status is the HTTP status code.
	Status int `json:"status"`
	// Body is the JSON response body, nil when the service sent none.
	Body json.RawMessage `json:"response,omitempty"`
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return apierrors.BadResponse("empty response body", nil)
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return apierrors.BadResponse("failed to decode response", err)
	}
	return nil
}

// parseBody validates a 2xx body as JSON.
func parseBody(status int, body []byte) (*Response, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return &Response{Status: status}, nil
	}
	if !json.Valid(trimmed) {
		return nil, apierrors.BadResponse("Bad response", errors.New("body is not valid JSON"))
	}
	return &Response{Status: status, Body: json.RawMessage(trimmed)}, nil
}

// parseErrorResponse builds the error for a non-2xx response.
func parseErrorResponse(status int, body []byte) error {
	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			return apierrors.HTTPStatus(status, errResp.Message)
		}
		if errResp.Error != "" {
			return apierrors.HTTPStatus(status, errResp.Error)
		}
	}

	message := strings.TrimSpace(string(body))
	if message == "" {
		message = "Unknown"
	}
	return apierrors.HTTPStatus(status, message)
}
