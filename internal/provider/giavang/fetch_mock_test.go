package giavang_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ntuan2502/gold-tracker/internal/provider/giavang"
)

func TestFetch_UsesInjectedHTTPClient(t *testing.T) {
	ctrl := gomock.NewController(t)

	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Truef(t, strings.HasPrefix(req.URL.String(), "http://localhost:9999"),
				"expected request against the configured endpoint, got %s", req.URL.String())
			require.Equal(t, "application/json", req.Header.Get("Accept"))

			buffer := &bytes.Buffer{}
			require.NoError(t, json.NewEncoder(buffer).Encode(map[string]any{
				"success": true,
				"data": []map[string]any{
					{"date": "2026-01-02", "type": "SJC", "buy": 91500000.0, "sell": 92100000.0},
				},
			}))

			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(buffer),
			}, nil
		}).
		Times(1)

	c := giavang.New(
		giavang.WithWorkers(1),
		giavang.WithEndpoint("http://localhost:9999/api"),
		giavang.WithClient(httpClient),
	)

	quotes, err := c.Fetch(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
}
