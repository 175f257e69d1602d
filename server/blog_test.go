package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidground/facade/server/store"
)

func createPost(t *testing.T, s *Server, token string, body string) store.Post {
	t.Helper()
	rr := doRequest(t, s, http.MethodPost, "/api/blog", token, body)
	require.Equal(t, http.StatusOK, rr.Code)

	var createRs struct {
		Message string     `json:"message"`
		Data    store.Post `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &createRs))
	return createRs.Data
}

func TestBlogCreate(t *testing.T) {
	s := newTestServer(t)
	token := adminToken(t, s)

	post := createPost(t, s, token, `{"title":"How Preferred Returns Work!","content":"Explainer."}`)

	assert.NotEmpty(t, post.ID())
	assert.Equal(t, "how-preferred-returns-work", post.Slug())
	assert.Equal(t, post.CreatedAt(), post.UpdatedAt())

	rr := doRequest(t, s, http.MethodGet, "/api/blog", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var blog store.Blog
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &blog))
	require.Len(t, blog.Posts, 1)
}

func TestBlogGetBySlug(t *testing.T) {
	s := newTestServer(t)
	token := adminToken(t, s)
	createPost(t, s, token, `{"title":"Hello World","content":"First."}`)

	rr := doRequest(t, s, http.MethodGet, "/api/blog/hello-world", "", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var post store.Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &post))
	assert.Equal(t, "Hello World", post.Title())

	rr = doRequest(t, s, http.MethodGet, "/api/blog/missing", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBlogUpdatePreservesIdentity(t *testing.T) {
	s := newTestServer(t)
	token := adminToken(t, s)
	post := createPost(t, s, token, `{"title":"Original","content":"Body."}`)

	rr := doRequest(t, s, http.MethodPut, "/api/blog/"+post.ID(), token, `{"title":"Renamed","id":"hijacked"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var updateRs struct {
		Data store.Post `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updateRs))
	updated := updateRs.Data

	assert.Equal(t, post.ID(), updated.ID())
	assert.Equal(t, post.CreatedAt(), updated.CreatedAt())
	assert.Equal(t, post.Slug(), updated.Slug())
	assert.Equal(t, "Renamed", updated.Title())
	assert.Equal(t, "Body.", updated["content"], "fields absent from the body survive the merge")
}

func TestBlogUpdateUnknownIDIs404(t *testing.T) {
	s := newTestServer(t)
	token := adminToken(t, s)

	rr := doRequest(t, s, http.MethodPut, "/api/blog/999", token, `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBlogDeleteIsIdempotent(t *testing.T) {
	s := newTestServer(t)
	token := adminToken(t, s)
	post := createPost(t, s, token, `{"title":"Ephemeral"}`)

	rr := doRequest(t, s, http.MethodDelete, "/api/blog/"+post.ID(), token, "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, s, http.MethodDelete, "/api/blog/"+post.ID(), token, "")
	require.Equal(t, http.StatusOK, rr.Code, "deleting an absent id still succeeds")

	rr = doRequest(t, s, http.MethodGet, "/api/blog", "", "")
	var blog store.Blog
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &blog))
	assert.Empty(t, blog.Posts)
}
