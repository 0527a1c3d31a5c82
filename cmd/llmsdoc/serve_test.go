package main_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jeongil-dev/llmsdoc"
	main "github.com/jeongil-dev/llmsdoc/cmd/llmsdoc"
	llmsdocmcp "github.com/jeongil-dev/llmsdoc/mcp"
	"github.com/jeongil-dev/llmsdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouter(t *testing.T) {
	t.Parallel()

	content := &mock.ContentService{
		HealthFn: func(_ context.Context) llmsdoc.Health {
			return llmsdoc.Health{Status: "stale", Sections: 12}
		},
	}
	srv, err := llmsdocmcp.NewServer(content)
	require.NoError(t, err)

	ts := httptest.NewServer(main.NewRouter(srv, content))
	t.Cleanup(ts.Close)

	t.Run("healthz reports cache health", func(t *testing.T) {
		t.Parallel()

		resp, err := http.Get(ts.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var h llmsdoc.Health
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&h))
		assert.Equal(t, "stale", h.Status)
		assert.Equal(t, 12, h.Sections)
	})

	t.Run("unknown path is not found", func(t *testing.T) {
		t.Parallel()

		resp, err := http.Get(ts.URL + "/nope")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
