package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_SendsHeadersAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/echo", r.URL.Path)
		assert.Equal(t, "shelter-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "k", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "per-request", r.Header.Get("X-Trace"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["msg"]})
	}))
	defer srv.Close()

	c, err := New(Options{
		BaseURL:   srv.URL + "/",
		UserAgent: "shelter-test",
		Headers:   map[string]string{"X-Api-Key": "k", "X-Trace": "fixed"},
	})
	require.NoError(t, err)

	var out map[string]string
	err = c.PostJSON(context.Background(), "v1/echo", map[string]string{"X-Trace": "per-request"}, map[string]string{"msg": "hola"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "hola", out["echo"])
}

func TestDoJSON_Non2xxIsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c, err := New(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, nil)
	require.Error(t, err)
	assert.True(t, StatusIs(err, http.StatusUnauthorized, http.StatusForbidden))
	assert.Contains(t, err.Error(), "nope")
}

func TestNew_ValidatesBaseURL(t *testing.T) {
	_, err := New(Options{BaseURL: "not a url"})
	assert.Error(t, err)

	c, err := New(Options{})
	require.NoError(t, err)
	assert.Empty(t, c.BaseURL())

	err = c.DoJSON(context.Background(), http.MethodGet, "/relative", nil, nil, nil)
	assert.ErrorContains(t, err, "requires BaseURL")
}
