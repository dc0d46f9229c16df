package session

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func decode(resp *http.Response, v any) error {
	defer func() { _ = resp.Body.Close() }()

	return json.NewDecoder(resp.Body).Decode(v)
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(b)
}
