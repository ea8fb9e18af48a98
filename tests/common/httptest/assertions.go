//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	} `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

// AssertSuccessResponse decodes the body into target when target is non-nil.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target != nil && expectedStatus >= 200 && expectedStatus < 300 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "decode response: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that error.message contains expectedMsg.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()
	decodeError(t, w, expectedStatus, expectedMsg)
}

// AssertErrorDetail also decodes the structured detail into target.
func AssertErrorDetail(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string, target any) {
	t.Helper()

	body := decodeError(t, w, expectedStatus, expectedMsg)
	require.NotEmpty(t, body.Detail, "error response has no detail: %s", w.Body.String())
	require.NoError(t, json.Unmarshal(body.Detail, target))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) errorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var body errorBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "decode error response: %s", w.Body.String())
	if expectedMsg != "" {
		assert.Contains(t, body.Error.Message, expectedMsg)
	}
	return body
}
