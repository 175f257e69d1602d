package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidground/facade/internal/ezhttp"
)

func uploadRequest(t *testing.T, s *Server, token string, field string, filename string, mime string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	buff := new(bytes.Buffer)
	mpw := multipart.NewWriter(buff)
	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	partHeader.Set(ezhttp.HeaderContentType, mime)
	part, err := mpw.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mpw.Close())

	rq := httptest.NewRequest(http.MethodPost, "/api/upload", buff)
	rq.Header.Set(ezhttp.HeaderContentType, mpw.FormDataContentType())
	if token != "" {
		rq.Header.Set(ezhttp.HeaderAuthorization, "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.Routes().ServeHTTP(rr, rq)
	return rr
}

func TestUpload(t *testing.T) {
	s := newTestServer(t)
	token := adminToken(t, s)

	rr := uploadRequest(t, s, token, "image", "team.png", "image/png", []byte("fake image bytes"))
	require.Equal(t, http.StatusOK, rr.Code)

	var uploadRs UploadResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &uploadRs))
	assert.True(t, strings.HasPrefix(uploadRs.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(uploadRs.Filename, ".png"))

	stored, err := os.ReadFile(filepath.Join(s.cfg.UploadsDir, uploadRs.Filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), stored)
}

func TestUploadGeneratesUniqueFilenames(t *testing.T) {
	s := newTestServer(t)
	token := adminToken(t, s)

	first := uploadRequest(t, s, token, "image", "same.png", "image/png", []byte("a"))
	second := uploadRequest(t, s, token, "image", "same.png", "image/png", []byte("b"))
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	var rs1, rs2 UploadResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &rs1))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &rs2))
	assert.NotEqual(t, rs1.Filename, rs2.Filename)
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	s := newTestServer(t)
	token := adminToken(t, s)

	rr := uploadRequest(t, s, token, "image", "script.svg", "image/svg+xml", []byte("<svg/>"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = uploadRequest(t, s, token, "image", "notes.txt", "text/plain", []byte("text"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUploadRejectsMismatchedMime(t *testing.T) {
	s := newTestServer(t)
	token := adminToken(t, s)

	// Image extension with a non-image part type, and the reverse.
	rr := uploadRequest(t, s, token, "image", "payload.png", "application/octet-stream", []byte("bytes"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = uploadRequest(t, s, token, "image", "payload.html", "image/png", []byte("bytes"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUploadMissingFile(t *testing.T) {
	s := newTestServer(t)
	token := adminToken(t, s)

	rr := uploadRequest(t, s, token, "wrongfield", "team.png", "image/png", []byte("bytes"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUploadTooLarge(t *testing.T) {
	s := newTestServer(t)
	s.cfg.MaxUploadSize = 16
	token := adminToken(t, s)

	rr := uploadRequest(t, s, token, "image", "big.png", "image/png", bytes.Repeat([]byte("x"), 1024))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}
