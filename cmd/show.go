package cmd

import (
	"fmt"

	"blog-cli/format"
	"blog-cli/term"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a post",
	Args:  cobra.ExactArgs(1),
	Run:   showPost,
}

func init() {
	RootCmd.AddCommand(showCmd)
}

func showPost(cmd *cobra.Command, args []string) {
	postId := mustParsePostId(args[0])
	blog := mustLoadBlog(cmd.Context())
	post := mustFindPost(blog, postId)

	md, err := term.GetMarkdown(format.PostMarkdown(post))
	if err != nil {
		fmt.Println(term.GetPlain(post.Title + "\n\n" + post.Body))
		return
	}
	fmt.Print(md)
}
