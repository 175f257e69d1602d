package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/solidground/facade/internal/httperr"
	"github.com/solidground/facade/server/store"
)

func (s *Server) GetBlog(w http.ResponseWriter, r *http.Request) {
	s.ok(w, r, s.documents.Blog())
}

func (s *Server) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	post, ok := s.documents.Blog().FindBySlug(slug)
	if !ok {
		s.error(w, r, httperr.NotFound(fmt.Errorf("%w: %s", ErrPostNotFound, slug)))
		return
	}
	s.ok(w, r, post)
}

func (s *Server) PostBlogPost(w http.ResponseWriter, r *http.Request) {
	fields, err := decodePostFields(r)
	if err != nil {
		s.error(w, r, err)
		return
	}

	blog := s.documents.Blog()
	post := store.NewPost(fields, time.Now())
	blog.Posts = append(blog.Posts, post)
	if err = s.documents.SaveBlog(blog); err != nil {
		s.error(w, r, err)
		return
	}

	s.ok(w, r, MessageResponse{
		Message: "Post created successfully",
		Data:    post,
	})
}

func (s *Server) PutBlogPost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	fields, err := decodePostFields(r)
	if err != nil {
		s.error(w, r, err)
		return
	}

	blog := s.documents.Blog()
	post, ok := blog.Update(postID, fields, time.Now())
	if !ok {
		s.error(w, r, httperr.NotFound(fmt.Errorf("%w: %s", ErrPostNotFound, postID)))
		return
	}
	if err = s.documents.SaveBlog(blog); err != nil {
		s.error(w, r, err)
		return
	}

	s.ok(w, r, MessageResponse{
		Message: "Post updated successfully",
		Data:    post,
	})
}

// DeleteBlogPost is idempotent: deleting an unknown id still answers 200 so
// retried deletes from the editor do not surface as errors.
func (s *Server) DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	blog := s.documents.Blog()
	blog.Delete(postID)
	if err := s.documents.SaveBlog(blog); err != nil {
		s.error(w, r, err)
		return
	}

	s.ok(w, r, MessageResponse{
		Message: "Post deleted successfully",
	})
}

func decodePostFields(r *http.Request) (map[string]any, error) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return nil, httperr.BadRequest(errors.Join(ErrInvalidJSON, err))
	}
	return fields, nil
}
