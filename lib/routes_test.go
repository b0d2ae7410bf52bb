package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchRoute(t *testing.T) {
	tests := []struct {
		path     string
		expected Route
	}{
		{"", Route{Name: RouteHome, Path: "/"}},
		{"/", Route{Name: RouteHome, Path: "/"}},
		{"/post", Route{Name: RouteNewPost, Path: "/post"}},
		{"/post/", Route{Name: RouteNewPost, Path: "/post"}},
		{"/post/12", Route{Name: RoutePostPage, Path: "/post/12", PostId: 12}},
		{"/post/abc", Route{Name: RouteMissing, Path: "/post/abc"}},
		{"/post/1/edit", Route{Name: RouteMissing, Path: "/post/1/edit"}},
		{"/about", Route{Name: RouteAbout, Path: "/about"}},
		{"/nope", Route{Name: RouteMissing, Path: "/nope"}},
	}

	for _, test := range tests {
		t.Run("Path: "+test.path, func(t *testing.T) {
			assert.Equal(t, test.expected, MatchRoute(test.path))
		})
	}
}

func TestRouterHistory(t *testing.T) {
	router := NewRouter()
	assert.Equal(t, RouteHome, router.Current().Name)
	assert.False(t, router.Back())

	router.Navigate(PostPath(3))
	router.Navigate(AboutPath)
	assert.Equal(t, RouteAbout, router.Current().Name)

	assert.True(t, router.Back())
	assert.Equal(t, Route{Name: RoutePostPage, Path: "/post/3", PostId: 3}, router.Current())

	assert.True(t, router.Back())
	assert.Equal(t, RouteHome, router.Current().Name)
}
