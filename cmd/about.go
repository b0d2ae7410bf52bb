package cmd

import (
	"fmt"

	"blog-cli/lib"
	"blog-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "About this blog",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		color.New(color.Bold, term.ColorHiCyan).Println(lib.GetBlogTitle())
		fmt.Println(term.GetDivisionLine())
		fmt.Println(lib.AboutText)
		fmt.Println()
		fmt.Println("Posts are served from", apiHost)
	},
}

func init() {
	RootCmd.AddCommand(aboutCmd)
}
