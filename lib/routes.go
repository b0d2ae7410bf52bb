package lib

import (
	"strconv"
	"strings"
	"sync"
)

type RouteName string

const (
	RouteHome     RouteName = "home"
	RouteNewPost  RouteName = "new-post"
	RoutePostPage RouteName = "post"
	RouteAbout    RouteName = "about"
	RouteMissing  RouteName = "missing"
)

const (
	HomePath    = "/"
	NewPostPath = "/post"
	AboutPath   = "/about"
)

type Route struct {
	Name   RouteName
	Path   string
	PostId int
}

func PostPath(postId int) string {
	return NewPostPath + "/" + strconv.Itoa(postId)
}

// MatchRoute resolves a path against the route table. Anything unknown,
// including a post path with a non-numeric id, is the missing route.
func MatchRoute(path string) Route {
	if path == "" {
		path = HomePath
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}

	switch path {
	case HomePath:
		return Route{Name: RouteHome, Path: path}
	case NewPostPath:
		return Route{Name: RouteNewPost, Path: path}
	case AboutPath:
		return Route{Name: RouteAbout, Path: path}
	}

	if rest, ok := strings.CutPrefix(path, NewPostPath+"/"); ok && !strings.Contains(rest, "/") {
		if postId, err := strconv.Atoi(rest); err == nil {
			return Route{Name: RoutePostPage, Path: path, PostId: postId}
		}
	}

	return Route{Name: RouteMissing, Path: path}
}

type Navigator interface {
	Navigate(path string)
}

// Router holds the current location. Mutations navigate from their own
// goroutine, hence the lock.
type Router struct {
	mu      sync.Mutex
	current Route
	history []Route
}

var _ Navigator = (*Router)(nil)

func NewRouter() *Router {
	return &Router{current: MatchRoute(HomePath)}
}

func (r *Router) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history = append(r.history, r.current)
	r.current = MatchRoute(path)
}

func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Back returns to the previous route, false when there's nowhere to go.
func (r *Router) Back() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.history) == 0 {
		return false
	}
	r.current = r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	return true
}
