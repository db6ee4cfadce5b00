package idp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"animal-shelter/internal/platform/httpclient"
	"animal-shelter/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("identity provider not configured")
	ErrUnauthorized  = errors.New("identity provider rejected token")
	ErrUpstream      = errors.New("identity provider upstream error")
)

const verifyPath = "/v1/tokens/verify"

// Config del proveedor de identidad que emite las sesiones de los cuidadores.
type Config struct {
	BaseURL string
	APIKey  string

	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) (*Client, error) {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	key := strings.TrimSpace(cfg.APIKey)

	hc, err := httpclient.New(httpclient.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Headers: map[string]string{h: key},
	})
	if err != nil {
		return nil, err
	}
	return &Client{http: hc, apiKey: key}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http.BaseURL() != "" && c.apiKey != ""
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// VerifyToken valida la sesión contra el proveedor y devuelve la identidad.
func (c *Client) VerifyToken(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	headers := map[string]string{"Authorization": "Bearer " + token}

	var out verifyResponse
	err := c.http.PostJSON(ctx, verifyPath, headers, verifyRequest{Token: token}, &out)
	if err != nil {
		if httpclient.StatusIs(err, http.StatusUnauthorized, http.StatusForbidden) {
			return auth.Claims{}, ErrUnauthorized
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	out.UserID = strings.TrimSpace(out.UserID)
	if out.UserID == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing user_id", ErrUpstream)
	}

	return auth.Claims{
		UserID: out.UserID,
		Email:  strings.TrimSpace(out.Email),
		Name:   strings.TrimSpace(out.Name),
	}, nil
}
