package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestInitializeSeedsDefaults(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Initialize(time.Now()))

	admins := s.Admins()
	require.Len(t, admins, 1)
	assert.Equal(t, "1", admins[0].ID)
	assert.Equal(t, DefaultAdminUsername, admins[0].Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admins[0].Password), []byte(DefaultAdminPassword)))

	content := s.Content()
	for _, section := range Sections {
		assert.Contains(t, content, section)
	}

	settings := s.Settings()
	assert.Equal(t, DefaultSettings(), settings)
}

func TestInitializeIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Initialize(time.Now()))
	first := s.Content()

	require.NoError(t, s.Initialize(time.Now()))
	assert.Equal(t, first, s.Content())
	assert.Len(t, s.Admins(), 1)
}

func TestInitializeNeverOverwrites(t *testing.T) {
	s := newTestStore(t)
	custom := Content{"hero": json.RawMessage(`{"title":"Custom"}`)}
	require.NoError(t, s.SaveContent(custom))

	require.NoError(t, s.Initialize(time.Now()))

	content := s.Content()
	require.Contains(t, content, "hero")
	assert.JSONEq(t, `{"title":"Custom"}`, string(content["hero"]))
	assert.NotContains(t, content, "navbar", "a non-empty content document is left alone")
}

func TestDefaultContentNavbar(t *testing.T) {
	raw, err := json.Marshal(DefaultContent()["navbar"])
	require.NoError(t, err)

	var navbar Navbar
	require.NoError(t, json.Unmarshal(raw, &navbar))

	require.Len(t, navbar.Links, 6)
	assert.Equal(t, Link{Text: "About", Href: "#about"}, navbar.Links[0])
}

func TestDefaultSettingsOrderIsCanonical(t *testing.T) {
	assert.Equal(t, Sections, DefaultSettings().SectionOrder)
}
