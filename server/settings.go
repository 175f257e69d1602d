package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/solidground/facade/internal/ezhttp"
	"github.com/solidground/facade/internal/httperr"
	"github.com/solidground/facade/server/store"
)

func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	raw, ok := s.documents.SettingsRaw()
	if !ok {
		data, err := json.Marshal(store.DefaultSettings())
		if err != nil {
			s.error(w, r, err)
			return
		}
		raw = data
	}
	s.rawJSON(w, r, raw)
}

// PutSettings stores the settings document mostly verbatim. The only field
// the server touches is sectionOrder, which is forced into a permutation of
// the known section identifiers so a broken editor payload can never hide a
// section from the loader.
func (s *Server) PutSettings(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.error(w, r, fmt.Errorf("failed to read request body: %w", err))
		return
	}
	if len(body) == 0 {
		s.error(w, r, httperr.BadRequest(ErrEmptyBody))
		return
	}

	var settings map[string]json.RawMessage
	if err = json.Unmarshal(body, &settings); err != nil {
		s.error(w, r, httperr.BadRequest(errors.Join(ErrInvalidJSON, err)))
		return
	}
	// "null" unmarshals into a nil map without error.
	if settings == nil {
		s.error(w, r, httperr.BadRequest(errors.New("settings must be a JSON object")))
		return
	}

	var order []string
	if raw, ok := settings["sectionOrder"]; ok {
		if err = json.Unmarshal(raw, &order); err != nil {
			s.error(w, r, httperr.BadRequest(fmt.Errorf("sectionOrder must be an array of strings: %w", err)))
			return
		}
	}
	normalized, err := json.Marshal(store.NormalizeSectionOrder(order))
	if err != nil {
		s.error(w, r, err)
		return
	}
	settings["sectionOrder"] = normalized

	raw, err := json.Marshal(settings)
	if err != nil {
		s.error(w, r, err)
		return
	}
	if err = s.documents.SaveSettingsRaw(raw); err != nil {
		s.error(w, r, err)
		return
	}

	s.ok(w, r, MessageResponse{
		Message: "Settings updated successfully",
		Data:    json.RawMessage(raw),
	})
}

// ThemeCSS renders the persisted settings as a stylesheet: custom properties
// for colors and typography, per-section spacing and visibility rules, then
// the admin's custom CSS appended last so it wins.
func (s *Server) ThemeCSS(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.Start(r.Context(), "renderThemeCSS")
	defer span.End()

	settings := s.documents.Settings()

	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, key := range sortedKeys(settings.Colors) {
		fmt.Fprintf(&sb, "  --color-%s: %s;\n", cssToken(key), settings.Colors[key])
	}
	for _, key := range sortedKeys(settings.Typography) {
		fmt.Fprintf(&sb, "  --%s: %s;\n", cssToken(key), settings.Typography[key])
	}
	sb.WriteString("}\n")

	for _, id := range store.NormalizeSectionOrder(settings.SectionOrder) {
		if visible, ok := settings.SectionVisibility[id]; ok && !visible {
			fmt.Fprintf(&sb, "[data-section=%q] { display: none; }\n", id)
			continue
		}
		if spacing, ok := settings.SectionSpacing[id]; ok && spacing != "" {
			fmt.Fprintf(&sb, "[data-section=%q] { margin-top: %s; }\n", id, spacing)
		}
	}

	if settings.CustomCSS != "" {
		sb.WriteString(settings.CustomCSS)
		sb.WriteString("\n")
	}

	body := []byte(sb.String())
	if writeETag(w, r, body) {
		return
	}
	w.Header().Set(ezhttp.HeaderContentType, ezhttp.ContentTypeCSS)
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

// cssToken turns a camelCase settings key into a kebab-case property name,
// e.g. "primaryDark" -> "primary-dark".
func cssToken(key string) string {
	var sb strings.Builder
	for _, c := range key {
		if c >= 'A' && c <= 'Z' {
			sb.WriteByte('-')
			sb.WriteRune(c + ('a' - 'A'))
			continue
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
