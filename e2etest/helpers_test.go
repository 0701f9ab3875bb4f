package e2etest

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// doRequest performs a request against the running server and decodes the JSON body
func doRequest(t *testing.T, env *TestEnv, method, path, apiKey, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, env.ServerBaseURL+path, reader)
	require.NoError(t, err)
	if apiKey != "" {
		req.Header.Set("x-api-key", apiKey)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err, "Should be able to make a request to %s", path)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Should be able to read response body")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded), "Response should be valid JSON: %s", raw)

	return resp, decoded
}
