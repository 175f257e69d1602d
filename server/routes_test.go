package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidground/facade/internal/ezhttp"
	"github.com/solidground/facade/internal/ver"
	"github.com/solidground/facade/server/store"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) *Server {
	t.Helper()

	documents, err := store.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, documents.Initialize(time.Now()))

	signer, err := jose.NewSigner(jose.SigningKey{
		Algorithm: jose.HS512,
		Key:       []byte(testSecret),
	}, nil)
	require.NoError(t, err)

	cfg := Config{
		ListenAddr:    ":0",
		JWTSecret:     testSecret,
		TokenTTL:      24 * time.Hour,
		UploadsDir:    t.TempDir(),
		MaxUploadSize: 10 * 1024 * 1024,
	}
	return NewServer(ver.Version{Version: "test", Revision: "0000000"}, cfg, documents, signer, http.Dir(t.TempDir()))
}

func adminToken(t *testing.T, s *Server) string {
	t.Helper()
	token, err := s.NewToken("1", "admin")
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, s *Server, method string, path string, token string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rq := httptest.NewRequest(method, path, reader)
	if body != "" {
		rq.Header.Set(ezhttp.HeaderContentType, ezhttp.ContentTypeJSON)
	}
	if token != "" {
		rq.Header.Set(ezhttp.HeaderAuthorization, "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.Routes().ServeHTTP(rr, rq)
	return rr
}

func TestGetHealth(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(t, s, http.MethodGet, "/api/health", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"OK"`)
	assert.Contains(t, rr.Body.String(), `"storage":"File-based JSON"`)
}

func TestErrorResponseShape(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(t, s, http.MethodGet, "/api/content/bogus", "", "")

	require.Equal(t, http.StatusNotFound, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `"message"`)
	assert.Contains(t, body, `"status":404`)
	assert.Contains(t, body, `"path":"/api/content/bogus"`)
}

func TestContentETag(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(t, s, http.MethodGet, "/api/content", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	etag := rr.Header().Get(ezhttp.HeaderETag)
	require.NotEmpty(t, etag)

	rq := httptest.NewRequest(http.MethodGet, "/api/content", nil)
	rq.Header.Set(ezhttp.HeaderIfNoneMatch, etag)
	rr = httptest.NewRecorder()
	s.Routes().ServeHTTP(rr, rq)

	assert.Equal(t, http.StatusNotModified, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestMutatingRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPut, "/api/content/hero", `{"title":"x"}`},
		{http.MethodPut, "/api/settings", `{}`},
		{http.MethodPost, "/api/blog", `{"title":"x"}`},
		{http.MethodPut, "/api/blog/1", `{"title":"x"}`},
		{http.MethodDelete, "/api/blog/1", ""},
		{http.MethodPost, "/api/upload", ""},
	}
	for _, test := range tests {
		t.Run(test.method+" "+test.path, func(t *testing.T) {
			rr := doRequest(t, s, test.method, test.path, "", test.body)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestPing(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(t, s, http.MethodGet, "/ping", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}
