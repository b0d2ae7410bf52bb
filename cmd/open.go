package cmd

import (
	"fmt"

	"blog-cli/api"
	"blog-cli/term"
	"blog-cli/ui"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var copyUrl bool

var openCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Open a post in the browser",
	Args:  cobra.ExactArgs(1),
	Run:   openPost,
}

func init() {
	RootCmd.AddCommand(openCmd)
	openCmd.Flags().BoolVarP(&copyUrl, "copy", "c", false, "Copy the post's URL to the clipboard instead of opening it")
}

func openPost(cmd *cobra.Command, args []string) {
	postId := mustParsePostId(args[0])
	url := api.PostUrl(apiHost, postId)

	if copyUrl {
		if err := clipboard.WriteAll(url); err != nil {
			term.OutputErrorAndExit("Error copying to clipboard: %v", err)
		}
		fmt.Println("📋 Copied", url)
		return
	}

	ui.OpenURL("Opening post in your browser...", url)
}
