package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"samko/internal/store"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	posts, err := s.posts.List(r.Context(), filter)
	if err != nil {
		s.fail(w, err, "Failed to fetch posts")
		return
	}

	// A slug lookup answers with the single post, not a list
	if filter.Slug != "" {
		writeData(w, http.StatusOK, posts[0], "")
		return
	}
	writeList(w, posts, len(posts))
}

func parseListFilter(q url.Values) (store.ListFilter, error) {
	f := store.ListFilter{
		Category: q.Get("category"),
		Slug:     q.Get("slug"),
	}

	flags := []struct {
		name string
		dst  **bool
	}{
		{"featured", &f.Featured},
		{"published", &f.Published},
	}
	for _, flag := range flags {
		raw := q.Get(flag.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return f, fmt.Errorf("Invalid value for %s: %q", flag.name, raw)
		}
		*flag.dst = &v
	}

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return f, fmt.Errorf("Invalid value for limit: %q", raw)
		}
		f.Limit = &n
	}
	return f, nil
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.posts.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.fail(w, err, "Failed to fetch post")
		return
	}
	writeData(w, http.StatusOK, post, "")
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var in store.CreateInput
	if !s.decode(w, r, &in) {
		return
	}

	post, err := s.posts.Create(r.Context(), in)
	if err != nil {
		s.fail(w, err, "Failed to create post")
		return
	}
	writeData(w, http.StatusCreated, post, "Post created successfully")
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	var in store.UpdateInput
	if !s.decode(w, r, &in) {
		return
	}

	post, err := s.posts.Update(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		s.fail(w, err, "Failed to update post")
		return
	}
	writeData(w, http.StatusOK, post, "Post updated successfully")
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	post, err := s.posts.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.fail(w, err, "Failed to delete post")
		return
	}
	writeData(w, http.StatusOK, post, "Post deleted successfully")
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats := s.categories.List(r.Context())
	writeList(w, cats, len(cats))
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// fail maps store errors onto status codes; anything unexpected is a 500 with msg.
func (s *Server) fail(w http.ResponseWriter, err error, msg string) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, "Missing required field: "+verr.Field)
	case errors.Is(err, store.ErrConflict):
		writeError(w, http.StatusBadRequest, "A post with this title already exists")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "Post not found")
	default:
		s.logger.Error(msg, zap.Error(err))
		writeError(w, http.StatusInternalServerError, msg)
	}
}
