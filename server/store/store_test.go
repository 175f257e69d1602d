package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestLoadMissingDocument(t *testing.T) {
	s := newTestStore(t)

	content := Content{"hero": json.RawMessage(`{"title":"untouched"}`)}
	ok := s.Load(DocumentContent, &content)

	assert.False(t, ok)
	assert.Equal(t, json.RawMessage(`{"title":"untouched"}`), content["hero"], "a missing document must leave the target untouched")
}

func TestLoadMalformedDocument(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "content.json"), []byte("{not json"), 0644))

	var content Content
	ok := s.Load(DocumentContent, &content)

	assert.False(t, ok, "a malformed document reads as absent")
	assert.Empty(t, content)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := Content{"hero": json.RawMessage(`{"title":"Hello"}`)}
	require.NoError(t, s.SaveContent(in))

	out := s.Content()
	require.Contains(t, out, "hero")
	assert.JSONEq(t, `{"title":"Hello"}`, string(out["hero"]))
}

func TestSaveRawRejectsInvalidJSON(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.SaveRaw(DocumentSettings, json.RawMessage("{broken")))
}

func TestSaveRawReplacesWholeDocument(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveRaw(DocumentSettings, json.RawMessage(`{"a":1,"b":2}`)))
	require.NoError(t, s.SaveRaw(DocumentSettings, json.RawMessage(`{"c":3}`)))

	raw, ok := s.SettingsRaw()
	require.True(t, ok)
	assert.JSONEq(t, `{"c":3}`, string(raw))
}

func TestBlogDefaultsToEmptyPosts(t *testing.T) {
	s := newTestStore(t)

	blog := s.Blog()
	require.NotNil(t, blog.Posts)
	assert.Empty(t, blog.Posts)
}

func TestSettingsFallsBackToDefaults(t *testing.T) {
	s := newTestStore(t)

	settings := s.Settings()
	assert.Equal(t, DefaultSettings(), settings)
}
