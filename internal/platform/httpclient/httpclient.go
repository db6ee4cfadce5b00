package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "animal-shelter"

	maxBody = 1 << 20
)

// Options para construir un Client. Todo es opcional salvo que se usen paths
// relativos, que requieren BaseURL.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string

	// Headers fijos en todos los requests (p.ej. API key del proveedor).
	Headers map[string]string

	// Transport para tests; nil usa http.DefaultTransport.
	Transport http.RoundTripper
}

// Client envuelve *http.Client para hablar JSON con servicios externos.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	headers   map[string]string
}

func New(opts Options) (*Client, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ua := strings.TrimSpace(opts.UserAgent)
	if ua == "" {
		ua = DefaultUserAgent
	}

	c := &Client{
		http:      &http.Client{Timeout: timeout, Transport: opts.Transport},
		userAgent: ua,
		headers:   map[string]string{},
	}
	for k, v := range opts.Headers {
		if strings.TrimSpace(k) != "" {
			c.headers[k] = v
		}
	}

	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		return c, nil
	}
	u, err := url.ParseRequestURI(base)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", base)
	}
	c.baseURL = strings.TrimRight(base, "/")
	return c, nil
}

func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// StatusIs indica si err es un HTTPError con alguno de los códigos dados.
func StatusIs(err error, codes ...int) bool {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		return false
	}
	for _, c := range codes {
		if httpErr.StatusCode == c {
			return true
		}
	}
	return false
}

// PostJSON envía in como JSON y decodifica la respuesta en out (si no es nil).
func (c *Client) PostJSON(ctx context.Context, path string, headers map[string]string, in, out any) error {
	return c.DoJSON(ctx, http.MethodPost, path, headers, in, out)
}

// DoJSON hace un request JSON. pathOrURL puede ser absoluta o relativa a
// BaseURL. Los headers por request pisan a los fijos del Client.
// Una respuesta no-2xx devuelve *HTTPError con el body (hasta 1MB).
func (c *Client) DoJSON(ctx context.Context, method, pathOrURL string, headers map[string]string, in, out any) error {
	if c == nil || c.http == nil {
		return errors.New("httpclient: nil client")
	}

	fullURL, err := c.resolveURL(pathOrURL)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		if strings.TrimSpace(k) == "" {
			continue
		}
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s %s: %w", method, fullURL, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("httpclient: empty url")
	}
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL, nil
	}
	if c.baseURL == "" {
		return "", errors.New("httpclient: relative path requires BaseURL")
	}
	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.baseURL + pathOrURL, nil
}
