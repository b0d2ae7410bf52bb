package format

import (
	"fmt"

	shared "blog-cli/shared"
)

// PostMarkdown lays a post out as a markdown document for rendering.
func PostMarkdown(post *shared.Post) string {
	return fmt.Sprintf("# %s\n\n_%s_\n\n%s\n", post.Title, post.Datetime, post.Body)
}
