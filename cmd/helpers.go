package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"blog-cli/api"
	"blog-cli/lib"
	shared "blog-cli/shared"
	"blog-cli/term"
)

// mustLoadBlog fetches the post list once and exits on failure. Commands
// outside the TUI have no view to navigate, so the router only records.
func mustLoadBlog(ctx context.Context) *lib.Blog {
	blog := lib.NewBlog(api.Client, lib.NewRouter())

	term.StartSpinner("")
	res := blog.Loader.Load(ctx)
	term.StopSpinner()

	switch res.Outcome {
	case lib.FetchCancelled:
		fmt.Fprintln(os.Stderr, "🛑 Request cancelled")
		os.Exit(1)
	case lib.FetchFailed:
		term.OutputErrorAndExit("Error loading posts: %s", blog.Loader.Status().FetchError)
	}

	return blog
}

func mustParsePostId(arg string) int {
	postId, err := strconv.Atoi(arg)
	if err != nil {
		term.OutputErrorAndExit("Invalid post id %q", arg)
	}
	return postId
}

func mustFindPost(blog *lib.Blog, postId int) *shared.Post {
	post, ok := blog.Store.FindPost(postId)
	if !ok {
		term.OutputErrorAndExit("Post Not Found: no post with id %d", postId)
	}
	return post
}
