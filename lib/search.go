package lib

import (
	"strings"

	shared "blog-cli/shared"

	"github.com/samber/lo"
)

// FilterPosts returns the posts whose title or body contains query,
// ignoring case, newest-appended first.
func FilterPosts(posts []*shared.Post, query string) []*shared.Post {
	if len(posts) == 0 {
		return []*shared.Post{}
	}

	q := strings.ToLower(query)
	matches := lo.Filter(posts, func(post *shared.Post, _ int) bool {
		return strings.Contains(strings.ToLower(post.Body), q) ||
			strings.Contains(strings.ToLower(post.Title), q)
	})

	return lo.Reverse(matches)
}
