package lib

import (
	"strings"
	"testing"

	shared "blog-cli/shared"

	"github.com/stretchr/testify/assert"
)

func TestFilterPostsScenario(t *testing.T) {
	posts := []*shared.Post{
		post(1, "Cats", "Meow"),
		post(2, "Dogs", "Woof"),
	}

	res := FilterPosts(posts, "o")
	assert.Equal(t, []int{2}, ids(res))
}

func TestFilterPostsEmptyCollection(t *testing.T) {
	for _, q := range []string{"", "o", "anything"} {
		res := FilterPosts(nil, q)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	}
}

func TestFilterPostsReversesMatches(t *testing.T) {
	posts := []*shared.Post{
		post(1, "Go tips", "channels"),
		post(2, "Rust", "borrowing"),
		post(3, "More Go", "generics"),
		post(4, "Gardening", "tomatoes"),
	}

	assert.Equal(t, []int{4, 3, 2, 1}, ids(FilterPosts(posts, "")))
	assert.Equal(t, []int{4, 3, 1}, ids(FilterPosts(posts, "go")))
	assert.Equal(t, []int{4, 3, 1}, ids(FilterPosts(posts, "GO")))
	assert.Equal(t, []int{2}, ids(FilterPosts(posts, "BORROW")))
	assert.Empty(t, FilterPosts(posts, "haskell"))

	// input order is left alone
	assert.Equal(t, []int{1, 2, 3, 4}, ids(posts))
}

func TestFilterPostsProperties(t *testing.T) {
	posts := []*shared.Post{
		post(1, "Alpha", "first body"),
		post(2, "Beta", "SECOND body"),
		post(3, "Gamma", "third"),
		post(4, "delta", "Body four"),
		post(5, "Epsilon", ""),
	}

	for _, q := range []string{"", "a", "body", "BODY", "eta", "x", "ps"} {
		first := FilterPosts(posts, q)
		second := FilterPosts(posts, q)
		assert.Equal(t, ids(first), ids(second), "query %q not idempotent", q)

		var expected []int
		for i := len(posts) - 1; i >= 0; i-- {
			p := posts[i]
			if strings.Contains(strings.ToLower(p.Title), strings.ToLower(q)) ||
				strings.Contains(strings.ToLower(p.Body), strings.ToLower(q)) {
				expected = append(expected, p.Id)
			}
		}
		if expected == nil {
			expected = []int{}
		}
		assert.Equal(t, expected, ids(first), "query %q", q)

		for _, p := range first {
			assert.Contains(t, posts, p)
		}
	}
}
