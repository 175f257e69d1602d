package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"How Preferred Returns Work!", "how-preferred-returns-work"},
		{"Hello World", "hello-world"},
		{"  Multiple   Spaces  ", "multiple-spaces"},
		{"!!!", ""},
		{"", ""},
		{"already-slugged", "already-slugged"},
		{"Numbers 123 Work", "numbers-123-work"},
	}
	for _, test := range tests {
		t.Run(test.title, func(t *testing.T) {
			assert.Equal(t, test.want, Slugify(test.title))
		})
	}
}

func TestNewPost(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	post := NewPost(map[string]any{
		"title":   "How Preferred Returns Work!",
		"content": "body text",
	}, now)

	assert.Equal(t, "1709294400000", post.ID())
	assert.Equal(t, "how-preferred-returns-work", post.Slug())
	assert.Equal(t, "How Preferred Returns Work!", post.Title())
	assert.Equal(t, "2024-03-01T12:00:00.000Z", post.CreatedAt())
	assert.Equal(t, post.CreatedAt(), post.UpdatedAt())
	assert.Equal(t, "body text", post["content"])
}

func TestBlogUpdate(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	blog := Blog{Posts: []Post{NewPost(map[string]any{"title": "Original Title"}, created)}}
	original := blog.Posts[0]

	post, ok := blog.Update(original.ID(), map[string]any{
		"title": "New Title",
		"id":    "hijacked",
	}, created.Add(time.Hour))
	require.True(t, ok)

	assert.Equal(t, original.ID(), post.ID(), "update must not reassign the id")
	assert.Equal(t, original.CreatedAt(), post.CreatedAt())
	assert.Equal(t, original.Slug(), post.Slug(), "slug is not regenerated on title change")
	assert.Equal(t, "New Title", post.Title())
	assert.Equal(t, "2024-03-01T13:00:00.000Z", post.UpdatedAt())
}

func TestBlogUpdateUnknownID(t *testing.T) {
	blog := Blog{Posts: []Post{}}
	_, ok := blog.Update("missing", map[string]any{"title": "x"}, time.Now())
	assert.False(t, ok)
}

func TestBlogDeleteIdempotent(t *testing.T) {
	now := time.Now()
	blog := Blog{Posts: []Post{
		NewPost(map[string]any{"title": "First"}, now),
		NewPost(map[string]any{"title": "Second"}, now.Add(time.Millisecond)),
	}}

	blog.Delete("does-not-exist")
	require.Len(t, blog.Posts, 2)

	id := blog.Posts[0].ID()
	blog.Delete(id)
	require.Len(t, blog.Posts, 1)

	blog.Delete(id)
	assert.Len(t, blog.Posts, 1)
}

func TestBlogFindBySlug(t *testing.T) {
	blog := Blog{Posts: []Post{NewPost(map[string]any{"title": "Hello World"}, time.Now())}}

	post, ok := blog.FindBySlug("hello-world")
	require.True(t, ok)
	assert.Equal(t, "Hello World", post.Title())

	_, ok = blog.FindBySlug("missing")
	assert.False(t, ok)
}

func TestNormalizeSectionOrder(t *testing.T) {
	tests := []struct {
		name  string
		order []string
	}{
		{"nil", nil},
		{"empty", []string{}},
		{"canonical", Sections},
		{"reversed", []string{"footer", "contact", "resources", "benefits", "strategy", "focus", "about", "highlights", "hero", "navbar"}},
		{"duplicates", []string{"hero", "hero", "navbar", "navbar"}},
		{"unknown ids", []string{"hero", "bogus", "navbar", "sidebar"}},
		{"partial", []string{"footer", "hero"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := NormalizeSectionOrder(test.order)
			assert.ElementsMatch(t, Sections, got, "result must be a permutation of the canonical ids")
		})
	}
}

func TestNormalizeSectionOrderKeepsSubmittedOrder(t *testing.T) {
	got := NormalizeSectionOrder([]string{"footer", "hero"})
	require.Equal(t, "footer", got[0])
	require.Equal(t, "hero", got[1])
}
