//go:build !integration

package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/grimoire-service/internal/service"
)

func TestNLQClient_Parse(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		expectErr   bool
		expectParts []string
		expectWarn  []string
	}{
		{
			name:        "returns parts and warnings",
			status:      http.StatusOK,
			body:        `{"query_parts":["t:goblin","c:r"],"warnings":["guessed color"]}`,
			expectParts: []string{"t:goblin", "c:r"},
			expectWarn:  []string{"guessed color"},
		},
		{
			name:        "missing fields become empty",
			status:      http.StatusOK,
			body:        `{}`,
			expectParts: []string{},
			expectWarn:  []string{},
		},
		{name: "parser failure", status: http.StatusInternalServerError, body: "boom", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/nlq/parse", r.URL.Path)
				var req parseRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "red goblins", req.Text)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			parsed, err := NewNLQClient(server.URL+"/", time.Second).Parse(context.Background(), "  red goblins ")

			if tt.expectErr {
				var upstreamErr *service.UpstreamError
				require.True(t, errors.As(err, &upstreamErr))
				assert.Equal(t, tt.status, upstreamErr.StatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectParts, parsed.QueryParts)
			assert.Equal(t, tt.expectWarn, parsed.Warnings)
		})
	}
}
