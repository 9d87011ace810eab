// Package httpclient executes supplier API calls: it signs requests
// that need it, sends them and returns the raw response document.
// Retry of transient failures happens here and nowhere else.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/PTFS-Europe/mod-ill-connector-bldss/auth"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/order"
)

const (
	ContentTypeTextXml        string = "text/xml"
	ContentTypeApplicationXml string = "application/xml"
	ContentType               string = "Content-Type"
)

const DefaultMaxResponseSize int64 = 1024 * 1024 * 10 // 10MB

type HttpError struct {
	StatusCode int
	Body       []byte
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, e.Body)
}

// Client talks to one supplier API instance.
type Client struct {
	BaseURL         string
	Signer          *auth.Signer
	HTTP            *http.Client
	MaxResponseSize int64
}

// New builds a client with a retrying transport.
func New(baseURL string, signer *auth.Signer) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.Logger = nil
	return &Client{
		BaseURL:         baseURL,
		Signer:          signer,
		HTTP:            rc.StandardClient(),
		MaxResponseSize: DefaultMaxResponseSize,
	}
}

func (c *Client) WithMaxSize(maxResponseSize int64) *Client {
	c.MaxResponseSize = maxResponseSize
	return c
}

// Do executes one supplier call and returns the response document.
// Non-2xx responses come back as an HttpError carrying the body.
func (c *Client) Do(ctx context.Context, req order.Request) (string, error) {
	target := c.BaseURL + req.Path
	if len(req.Params) > 0 {
		values := url.Values{}
		for k, v := range req.Params {
			values.Set(k, v)
		}
		target += "?" + values.Encode()
	}

	var body io.Reader
	if req.Payload != "" {
		body = strings.NewReader(req.Payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return "", err
	}
	if req.Payload != "" {
		httpReq.Header.Set(ContentType, ContentTypeApplicationXml)
	}
	if req.NeedsAuth {
		header, err := c.Signer.Sign(req.Method, req.Path, req.Params, req.Payload)
		if err != nil {
			return "", err
		}
		httpReq.Header.Set(auth.HeaderName, header)
	}

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer func() {
		dErr := resp.Body.Close()
		if dErr != nil {
			fmt.Printf("failed to close body: %v", dErr)
		}
	}()
	buf, err := c.readResponse(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &HttpError{resp.StatusCode, buf}
	}
	return string(buf), nil
}

func (c *Client) readResponse(body io.Reader) ([]byte, error) {
	if c.MaxResponseSize > 0 {
		body = NewLimitErrorReader(body, c.MaxResponseSize)
	}
	buf, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

type LimitErrorReader struct {
	reader *io.LimitedReader
}

func NewLimitErrorReader(r io.Reader, limit int64) *LimitErrorReader {
	return &LimitErrorReader{
		reader: &io.LimitedReader{R: r, N: limit},
	}
}

func (ler *LimitErrorReader) Read(p []byte) (int, error) {
	if ler.reader.N <= 0 {
		return 0, errors.New("response body too large")
	}
	return ler.reader.Read(p)
}
