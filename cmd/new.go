package cmd

import (
	"fmt"

	"blog-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var postTitle string
var postBody string

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Write a new post",
	Args:  cobra.NoArgs,
	Run:   newPost,
}

func init() {
	RootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&postTitle, "title", "t", "", "Post title")
	newCmd.Flags().StringVarP(&postBody, "body", "b", "", "Post body")
}

func newPost(cmd *cobra.Command, args []string) {
	// ids are assigned from the posts already on the service
	blog := mustLoadBlog(cmd.Context())

	var err error
	if postTitle == "" {
		postTitle, err = term.GetRequiredUserStringInput("Title:")
		if err != nil {
			term.OutputErrorAndExit("Error getting title: %v", err)
		}
	}
	if postBody == "" {
		postBody, err = term.GetUserStringInput("Post:")
		if err != nil {
			term.OutputErrorAndExit("Error getting post: %v", err)
		}
	}

	blog.Draft.SetTitle(postTitle)
	blog.Draft.SetBody(postBody)

	term.StartSpinner("")
	post, err := blog.SubmitDraft()
	term.StopSpinner()

	if err != nil {
		term.OutputErrorAndExit("%v", err)
	}

	fmt.Println("✅ Created post", color.New(color.Bold, term.ColorHiGreen).Sprintf("#%d %s", post.Id, post.Title))
	fmt.Println()
	term.PrintCmds("", "show", "ls")
}
