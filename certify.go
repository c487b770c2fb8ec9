package ucertify

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ucertify/client-go/internal/api"
	"github.com/ucertify/client-go/internal/apierrors"
)

// API paths.
const (
	certifyPath       = "/certifier/certify"
	certificationPath = "/certifier/"
)

// FileField is the multipart field name carrying a certified file.
const FileField = "certifyThis"

// Link is a named piece of content to certify.
type Link struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// Certification is the service's record for a certify request.
type Certification struct {
	ID              string `json:"id,omitempty"`
	CertificationID string `json:"certificationId,omitempty"`
	Status          string `json:"status,omitempty"`
	Links           []Link `json:"links,omitempty"`
	CreatedAt       string `json:"createdAt,omitempty"`
}

// Identifier returns the id to pass to GetCertification.
func (c *Certification) Identifier() string {
	if c.CertificationID != "" {
		return c.CertificationID
	}
	return c.ID
}

// ParseCertification decodes a certify or lookup response.
func ParseCertification(resp *Response) (*Certification, error) {
	if resp == nil {
		return nil, apierrors.Parameter(nil, "response is required")
	}
	var cert Certification
	if err := resp.Decode(&cert); err != nil {
		return nil, err
	}
	return &cert, nil
}

func validateLinks(links []Link) error {
	if len(links) == 0 {
		return apierrors.Parameter(apierrors.ErrEmptyPayload, "links must not be empty")
	}
	for i, l := range links {
		if strings.TrimSpace(l.Link) == "" {
			return apierrors.Parameter(apierrors.ErrInvalidLink, fmt.Sprintf("link %d has no URL", i))
		}
	}
	return nil
}

// Certify registers a set of links in a single request. The request body is
// the JSON array of links and is signed as sent.
func (c *Client) Certify(ctx context.Context, links []Link, opts ...CallOption) (*Response, error) {
	if err := validateLinks(links); err != nil {
		return nil, err
	}

	req := applyCallOptions(&Request{
		Path: certifyPath,
		Body: links,
	}, opts)

	c.logger.Debug().Int("links", len(links)).Bool("sandbox", c.sandboxFor(req)).Msg("certifying links")

	return c.Post(ctx, req)
}

// fileContent is a file read for certification.
type fileContent struct {
	name    string
	content []byte
}

func readCertifyFile(path string) (*fileContent, error) {
	if strings.TrimSpace(path) == "" {
		return nil, apierrors.Parameter(apierrors.ErrMissingFile, "file path is required")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, apierrors.Parameter(fmt.Errorf("%w: %w", apierrors.ErrMissingFile, err),
			fmt.Sprintf("read file: %v", err))
	}
	if len(content) == 0 {
		return nil, apierrors.Parameter(apierrors.ErrEmptyPayload, "file is empty")
	}

	return &fileContent{name: filepath.Base(path), content: content}, nil
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return apierrors.Parameter(apierrors.ErrMissingID, "")
	}
	return nil
}

// CertifyFile uploads a local file for certification. The signature covers
// the raw file bytes.
func (c *Client) CertifyFile(ctx context.Context, path string, opts ...CallOption) (*Response, error) {
	file, err := readCertifyFile(path)
	if err != nil {
		return nil, err
	}
	return c.certifyContent(ctx, file.name, file.content, opts)
}

// CertifyReader uploads in-memory content for certification under name.
func (c *Client) CertifyReader(ctx context.Context, name string, r io.Reader, opts ...CallOption) (*Response, error) {
	if r == nil {
		return nil, apierrors.Parameter(apierrors.ErrMissingFile, "reader is required")
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, apierrors.Parameter(fmt.Errorf("%w: %w", apierrors.ErrMissingFile, err),
			fmt.Sprintf("read content: %v", err))
	}

	return c.certifyContent(ctx, name, content, opts)
}

func (c *Client) certifyContent(ctx context.Context, name string, content []byte, opts []CallOption) (*Response, error) {
	if len(content) == 0 {
		return nil, apierrors.Parameter(apierrors.ErrEmptyPayload, "file is empty")
	}
	if name == "" {
		name = FileField
	}

	req := applyCallOptions(&Request{
		Path: certifyPath,
		File: &api.FilePart{
			FieldName: FileField,
			FileName:  name,
			Content:   content,
		},
	}, opts)

	c.logger.Debug().Str("file", name).Int("bytes", len(content)).Bool("sandbox", c.sandboxFor(req)).Msg("certifying file")

	return c.Post(ctx, req)
}

// GetCertification fetches a certification by id.
func (c *Client) GetCertification(ctx context.Context, id string, opts ...CallOption) (*Response, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	return c.Get(ctx, applyCallOptions(&Request{
		Path: certificationPath + url.PathEscape(id),
	}, opts))
}
