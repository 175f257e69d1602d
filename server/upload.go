package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/solidground/facade/internal/ezhttp"
	"github.com/solidground/facade/internal/httperr"
)

var (
	allowedImageExts  = []string{".jpeg", ".jpg", ".png", ".gif", ".webp"}
	allowedImageMimes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
)

var ErrImageType = errors.New("only jpeg, jpg, png, gif and webp images are allowed")

// PostUpload accepts a multipart form with a single "image" field, writes it
// under the uploads directory with a collision-free name and answers with the
// public URL.
func (s *Server) PostUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) || r.ContentLength > s.cfg.MaxUploadSize {
			s.error(w, r, httperr.New(fmt.Errorf("image exceeds the %s upload limit", humanize.IBytes(uint64(s.cfg.MaxUploadSize))), http.StatusRequestEntityTooLarge))
			return
		}
		s.error(w, r, httperr.BadRequest(fmt.Errorf("failed to parse multipart form: %w", err)))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		s.error(w, r, httperr.BadRequest(errors.New("no image file provided")))
		return
	}
	defer file.Close()

	// Extension and declared MIME type both have to match.
	ext := strings.ToLower(filepath.Ext(header.Filename))
	mime := strings.ToLower(header.Header.Get(ezhttp.HeaderContentType))
	if !slices.Contains(allowedImageExts, ext) || !slices.Contains(allowedImageMimes, mime) {
		s.error(w, r, httperr.BadRequest(ErrImageType))
		return
	}

	if err = os.MkdirAll(s.cfg.UploadsDir, 0755); err != nil {
		s.error(w, r, err)
		return
	}

	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	dst, err := os.Create(filepath.Join(s.cfg.UploadsDir, filename))
	if err != nil {
		s.error(w, r, err)
		return
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		s.error(w, r, err)
		return
	}

	s.ok(w, r, UploadResponse{
		URL:      "/uploads/" + filename,
		Filename: filename,
	})
}
