// Package testutil runs an in-process post service for tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	shared "blog-cli/shared"

	"github.com/gorilla/mux"
)

type FakePostService struct {
	Server *httptest.Server

	mu    sync.Mutex
	posts []*shared.Post

	// FailWith, when non-zero, makes every request answer with that status
	// and FailBody as the body.
	FailWith int
	FailBody string

	// Hold, when set, parks GET /posts until it is closed or the client goes away.
	Hold chan struct{}

	requests []string
}

func NewFakePostService(posts ...*shared.Post) *FakePostService {
	s := &FakePostService{posts: posts}

	r := mux.NewRouter()
	r.HandleFunc("/posts", s.listPosts).Methods(http.MethodGet)
	r.HandleFunc("/posts", s.createPost).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}", s.deletePost).Methods(http.MethodDelete)
	r.Use(s.recordRequests, s.failures)

	s.Server = httptest.NewServer(r)
	return s
}

func (s *FakePostService) URL() string {
	return s.Server.URL
}

func (s *FakePostService) Close() {
	s.Server.Close()
}

func (s *FakePostService) Posts() []*shared.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*shared.Post{}, s.posts...)
}

// Requests returns "METHOD path" for every request received so far.
func (s *FakePostService) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.requests...)
}

func (s *FakePostService) SetFailure(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FailWith = status
	s.FailBody = body
}

func (s *FakePostService) recordRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Method+" "+r.URL.Path)
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *FakePostService) failures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		status, body := s.FailWith, s.FailBody
		s.mu.Unlock()

		if status != 0 {
			http.Error(w, body, status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *FakePostService) listPosts(w http.ResponseWriter, r *http.Request) {
	if s.Hold != nil {
		select {
		case <-s.Hold:
		case <-r.Context().Done():
			return
		}
	}

	writeJSON(w, http.StatusOK, s.Posts())
}

func (s *FakePostService) createPost(w http.ResponseWriter, r *http.Request) {
	var post shared.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		http.Error(w, fmt.Sprintf("invalid post: %v", err), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.posts = append(s.posts, &post)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, post)
}

func (s *FakePostService) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, post := range s.posts {
		if post.Id == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]any{})
			return
		}
	}

	http.Error(w, "Not Found", http.StatusNotFound)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
