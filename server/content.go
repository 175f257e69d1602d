package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/solidground/facade/internal/httperr"
	"github.com/solidground/facade/server/store"
)

func (s *Server) GetContent(w http.ResponseWriter, r *http.Request) {
	raw, ok := s.documents.ContentRaw()
	if !ok {
		// Nothing persisted yet, serve an empty document rather than a 404 so
		// the loader can fail soft.
		raw = json.RawMessage("{}")
	}
	s.rawJSON(w, r, raw)
}

func (s *Server) GetContentSection(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	content := s.documents.Content()
	raw, ok := content[section]
	if !ok {
		s.error(w, r, httperr.NotFound(fmt.Errorf("%w: %s", ErrSectionNotFound, section)))
		return
	}
	s.rawJSON(w, r, raw)
}

// PutContentSection stores the request body verbatim as the new value of the
// section. The body has to be valid JSON, but its shape is up to the editor:
// sections keep whatever structure the admin UI writes.
func (s *Server) PutContentSection(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.error(w, r, fmt.Errorf("failed to read request body: %w", err))
		return
	}
	if len(body) == 0 {
		s.error(w, r, httperr.BadRequest(ErrEmptyBody))
		return
	}
	if !json.Valid(body) {
		s.error(w, r, httperr.BadRequest(ErrInvalidJSON))
		return
	}

	content := s.documents.Content()
	content[section] = json.RawMessage(body)
	if err = s.documents.SaveContent(content); err != nil {
		s.error(w, r, err)
		return
	}

	s.ok(w, r, MessageResponse{
		Message: fmt.Sprintf("%s updated successfully", store.SectionTitle(section)),
		Data:    json.RawMessage(body),
	})
}
