package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/lmittmann/tint"
)

// Document names one of the flat JSON files the server owns.
type Document string

const (
	DocumentContent  Document = "content"
	DocumentAdmins   Document = "admin"
	DocumentSettings Document = "settings"
	DocumentBlog     Document = "blog"
)

func (d Document) filename() string {
	return string(d) + ".json"
}

// Store reads and writes whole JSON documents in a single directory. There is
// no partial update: every save replaces the file. Concurrent writers to the
// same document race and the last write wins in full.
type Store struct {
	dir string
	mu  sync.RWMutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Load unmarshals doc into v and reports whether a usable document was found.
// A missing or unparseable file leaves v untouched so the caller's default
// value stands; storage failures never propagate past here.
func (s *Store) Load(doc Document, v any) bool {
	raw, ok := s.LoadRaw(doc)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		slog.Warn("ignoring malformed document", slog.String("document", string(doc)), tint.Err(err))
		return false
	}
	return true
}

// LoadRaw returns the raw bytes of doc, or false if the file is absent,
// unreadable, or not valid JSON.
func (s *Store) LoadRaw(doc Document) (json.RawMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(filepath.Join(s.dir, doc.filename()))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read document", slog.String("document", string(doc)), tint.Err(err))
		}
		return nil, false
	}
	if !json.Valid(data) {
		slog.Warn("ignoring malformed document", slog.String("document", string(doc)))
		return nil, false
	}
	return data, true
}

// Save marshals v pretty-printed and replaces the document. The bytes go to a
// temp file in the same directory first, then rename, so a concurrent reader
// never observes a partial write.
func (s *Store) Save(doc Document, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %w", doc, err)
	}
	return s.SaveRaw(doc, data)
}

// SaveRaw replaces the document with raw, which must be valid JSON. The bytes
// are re-indented but otherwise stored verbatim.
func (s *Store) SaveRaw(doc Document, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("invalid JSON for document %s: %w", doc, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, doc.filename())
	tmp, err := os.CreateTemp(s.dir, doc.filename()+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp document: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write document %s: %w", doc, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp document: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace document %s: %w", doc, err)
	}
	return nil
}

// Content returns the content document, empty if never written.
func (s *Store) Content() Content {
	content := Content{}
	s.Load(DocumentContent, &content)
	return content
}

func (s *Store) SaveContent(content Content) error {
	return s.Save(DocumentContent, content)
}

// ContentRaw returns the content document exactly as persisted.
func (s *Store) ContentRaw() (json.RawMessage, bool) {
	return s.LoadRaw(DocumentContent)
}

// Blog returns the blog document, with an empty post list as default.
func (s *Store) Blog() Blog {
	blog := Blog{Posts: []Post{}}
	s.Load(DocumentBlog, &blog)
	if blog.Posts == nil {
		blog.Posts = []Post{}
	}
	return blog
}

func (s *Store) SaveBlog(blog Blog) error {
	return s.Save(DocumentBlog, blog)
}

// Admins returns the admin credential list, empty if never seeded.
func (s *Store) Admins() []Admin {
	var admins []Admin
	s.Load(DocumentAdmins, &admins)
	return admins
}

func (s *Store) SaveAdmins(admins []Admin) error {
	return s.Save(DocumentAdmins, admins)
}

// Settings returns the typed view of the settings document. Unknown fields
// submitted by the editor survive in the raw document; this view only carries
// the fields the server itself renders.
func (s *Store) Settings() Settings {
	var settings Settings
	if !s.Load(DocumentSettings, &settings) {
		return DefaultSettings()
	}
	return settings
}

// SettingsRaw returns the settings document as persisted, including any
// fields the typed view does not know about.
func (s *Store) SettingsRaw() (json.RawMessage, bool) {
	return s.LoadRaw(DocumentSettings)
}

func (s *Store) SaveSettingsRaw(raw json.RawMessage) error {
	return s.SaveRaw(DocumentSettings, raw)
}
