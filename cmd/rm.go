package cmd

import (
	"fmt"
	"os"
	"strconv"

	"blog-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var skipConfirm bool

var rmCmd = &cobra.Command{
	Use:     "rm [id]",
	Aliases: []string{"delete"},
	Short:   "Delete a post",
	Long:    `Delete a post by id, or pick one from the list when no id is given.`,
	Args:    cobra.MaximumNArgs(1),
	Run:     deletePost,
}

func init() {
	RootCmd.AddCommand(rmCmd)
	rmCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Delete without asking for confirmation")
}

func deletePost(cmd *cobra.Command, args []string) {
	blog := mustLoadBlog(cmd.Context())

	var postId int
	if len(args) > 0 {
		postId = mustParsePostId(args[0])
	} else {
		results := blog.Store.Results()
		if len(results) == 0 {
			fmt.Fprintln(os.Stderr, "🤷‍♂️ No posts to delete")
			return
		}

		labels := make([]string, len(results))
		for i, post := range results {
			labels[i] = post.Title + " (#" + strconv.Itoa(post.Id) + ")"
		}

		idx, err := term.SelectIndexFromList("Select a post to delete:", labels)
		if err != nil {
			term.OutputErrorAndExit("Error selecting post: %v", err)
		}
		postId = results[idx].Id
	}

	post := mustFindPost(blog, postId)

	if !skipConfirm {
		confirmed, err := term.ConfirmYesNo("Delete %q?", post.Title)
		if err != nil {
			term.OutputErrorAndExit("Error getting confirmation: %v", err)
		}
		if !confirmed {
			fmt.Println("🤷‍♂️ Nothing deleted")
			return
		}
	}

	term.StartSpinner("")
	err := blog.DeletePost(postId)
	term.StopSpinner()

	if err != nil {
		term.OutputErrorAndExit("%v", err)
	}

	fmt.Println("🗑️  Deleted post", color.New(color.Bold, term.ColorHiRed).Sprintf("#%d %s", post.Id, post.Title))
	fmt.Println()
	term.PrintCmds("", "ls")
}
