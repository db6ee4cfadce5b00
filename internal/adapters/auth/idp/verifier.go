package idp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"animal-shelter/internal/ports/auth"
)

var (
	ErrTokenEmpty    = errors.New("token is empty")
	ErrMissingUserID = errors.New("identity provider claims missing user id")
)

// DefaultCacheTTL: cuánto se reutiliza una verificación exitosa. La app
// hace varios requests seguidos con el mismo token al abrir la vista diaria.
const DefaultCacheTTL = 30 * time.Second

type cachedClaims struct {
	claims  auth.Claims
	expires time.Time
}

// Verifier implementa auth.AuthVerifier contra el proveedor de identidad.
// Solo cachea verificaciones exitosas; un rechazo siempre vuelve a consultar.
type Verifier struct {
	client *Client
	ttl    time.Duration
	now    func() time.Time

	mu    sync.Mutex
	cache map[string]cachedClaims
}

func NewVerifier(client *Client) *Verifier {
	return NewCachingVerifier(client, DefaultCacheTTL)
}

// NewCachingVerifier permite elegir el TTL; ttl <= 0 desactiva la cache.
func NewCachingVerifier(client *Client, ttl time.Duration) *Verifier {
	return &Verifier{
		client: client,
		ttl:    ttl,
		now:    time.Now,
		cache:  map[string]cachedClaims{},
	}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	if c, ok := v.cached(token); ok {
		return c, nil
	}

	claims, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("idp verify failed: %w", err)
	}
	claims.UserID = strings.TrimSpace(claims.UserID)
	if claims.UserID == "" {
		return auth.Claims{}, ErrMissingUserID
	}

	v.store(token, claims)
	return claims, nil
}

func (v *Verifier) cached(token string) (auth.Claims, bool) {
	if v.ttl <= 0 {
		return auth.Claims{}, false
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	e, ok := v.cache[token]
	if !ok {
		return auth.Claims{}, false
	}
	if !v.now().Before(e.expires) {
		delete(v.cache, token)
		return auth.Claims{}, false
	}
	return e.claims, true
}

func (v *Verifier) store(token string, c auth.Claims) {
	if v.ttl <= 0 {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	// barrido simple: la cache no crece con tokens vencidos
	for k, e := range v.cache {
		if !now.Before(e.expires) {
			delete(v.cache, k)
		}
	}
	v.cache[token] = cachedClaims{claims: c, expires: now.Add(v.ttl)}
}
