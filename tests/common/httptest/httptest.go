//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// executes HTTP request with optional authorization
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	return perform(router, method, path, reqBody, body != nil, authToken)
}

// sends a raw JSON body as is, for payloads a Go struct cannot express
func PerformRawRequest(t *testing.T, router *gin.Engine, method, path, rawJSON, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return perform(router, method, path, strings.NewReader(rawJSON), true, authToken)
}

func perform(router *gin.Engine, method, path string, body io.Reader, isJSON bool, authToken string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if isJSON {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodes JSON response body into target struct
func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()

	err := json.NewDecoder(body).Decode(target)
	require.NoError(t, err, "Failed to decode response body")

	return err
}
