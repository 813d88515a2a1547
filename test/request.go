package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/setoran/backend/internal/auth"
	"github.com/setoran/backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestBody encodes the body of a test request. Strings and buffers are
// sent as they are, everything else is encoded as JSON.
func requestBody(t *testing.T, body any) io.Reader {
	switch b := body.(type) {
	case string:
		return bytes.NewBufferString(b)
	case *bytes.Buffer:
		return b
	}

	encoded, err := json.Marshal(body)
	require.Nil(t, err, "Request body could not be marshalled from %T", body)
	return bytes.NewReader(encoded)
}

// newRouter sets up the complete router with the base URL from API_URL.
func newRouter(t *testing.T) (*gin.Engine, func()) {
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		require.FailNow(t, "environment variable API_URL must be set")
	}

	baseURL, err := url.Parse(apiURL)
	require.Nil(t, err, "environment variable API_URL must be a valid URL")

	r, teardown, err := router.Config(baseURL)
	if err != nil {
		teardown()
		require.FailNow(t, "Router could not be initialized", err)
	}

	path := baseURL.Path
	if path == "" {
		path = "/"
	}
	router.AttachRoutes(r.Group(path), auth.NewJWT(signingKey(t)))

	return r, teardown
}

// Request sends a request through the full router and returns the recorded
// response. Headers of all maps are set on the request.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	r, teardown := newRouter(t)
	defer teardown()

	req, err := http.NewRequest(method, reqURL, requestBody(t, body))
	require.Nil(t, err, "Request could not be created")

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// DecodeError decodes the error message of an error response.
func DecodeError(t *testing.T, s []byte) string {
	var r struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(s, &r); err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into error, '%v'", string(s), err)
	}

	return r.Error
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
