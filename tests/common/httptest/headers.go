//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertRetryAfter checks the header carries a whole number of seconds.
func AssertRetryAfter(t *testing.T, w *httptest.ResponseRecorder, wantSeconds int) {
	t.Helper()
	raw := w.Header().Get("Retry-After")
	got, err := strconv.Atoi(raw)
	if assert.NoError(t, err, "Retry-After %q is not delta-seconds", raw) {
		assert.Equal(t, wantSeconds, got)
	}
}
