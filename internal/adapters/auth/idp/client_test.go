package idp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != verifyPath || r.Header.Get("X-Api-Key") != "secret" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		var req verifyRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		switch req.Token {
		case "good":
			_ = json.NewEncoder(w).Encode(verifyResponse{UserID: " carol ", Email: "carol@shelter.org"})
		case "blank":
			_ = json.NewEncoder(w).Encode(verifyResponse{})
		case "boom":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVerifier(t *testing.T) {
	srv := newTestServer(t)
	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})
	require.NoError(t, err)
	v := NewVerifier(c)
	ctx := context.Background()

	claims, err := v.Verify(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "carol", claims.UserID)
	assert.Equal(t, "carol@shelter.org", claims.Email)

	_, err = v.Verify(ctx, "bad")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = v.Verify(ctx, "boom")
	assert.ErrorIs(t, err, ErrUpstream)

	_, err = v.Verify(ctx, "blank")
	assert.ErrorIs(t, err, ErrUpstream)

	_, err = v.Verify(ctx, "  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}

func TestVerifier_NotConfigured(t *testing.T) {
	c, err := NewClient(Config{})
	require.NoError(t, err)
	assert.False(t, c.IsConfigured())

	_, err = NewVerifier(c).Verify(context.Background(), "good")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestVerifier_CachesSuccessUntilTTL(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		var req verifyRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Token != "good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(verifyResponse{UserID: "carol"})
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	v := NewCachingVerifier(c, time.Minute)
	v.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		claims, err := v.Verify(ctx, "good")
		require.NoError(t, err)
		assert.Equal(t, "carol", claims.UserID)
	}
	assert.EqualValues(t, 1, hits.Load())

	// los rechazos no se cachean
	for i := 0; i < 2; i++ {
		_, err = v.Verify(ctx, "bad")
		assert.ErrorIs(t, err, ErrUnauthorized)
	}
	assert.EqualValues(t, 3, hits.Load())

	now = now.Add(time.Minute)
	_, err = v.Verify(ctx, "good")
	require.NoError(t, err)
	assert.EqualValues(t, 4, hits.Load())
}

func TestVerifier_NoCacheWhenTTLDisabled(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_ = json.NewEncoder(w).Encode(verifyResponse{UserID: "carol"})
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})
	require.NoError(t, err)
	v := NewCachingVerifier(c, 0)

	for i := 0; i < 2; i++ {
		_, err := v.Verify(context.Background(), "good")
		require.NoError(t, err)
	}
	assert.EqualValues(t, 2, hits.Load())
}
