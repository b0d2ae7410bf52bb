package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"blog-cli/format"
	shared "blog-cli/shared"
	"blog-cli/term"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var searchQuery string

var lsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List posts, newest first",
	Args:    cobra.NoArgs,
	Run:     listPosts,
}

func init() {
	RootCmd.AddCommand(lsCmd)
	lsCmd.Flags().StringVarP(&searchQuery, "search", "s", "", "Only show posts whose title or body contains this text")
}

func listPosts(cmd *cobra.Command, args []string) {
	blog := mustLoadBlog(cmd.Context())
	blog.Store.SetSearch(searchQuery)
	results := blog.Store.Results()

	if len(results) == 0 {
		fmt.Println("🤷‍♂️ No posts to display.")
		fmt.Println()
		term.PrintCmds("", "new")
		return
	}

	now := time.Now()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Id", "Title", "Posted", "Age", "Preview"})
	table.SetAutoWrapText(false)

	for i, post := range results {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(post.Id),
			post.Title,
			post.Datetime,
			format.PostAge(post.Datetime, now),
			shared.Truncate(post.Body, 25),
		}
		table.Rich(row, []tablewriter.Colors{
			{tablewriter.Bold},
			{},
			{tablewriter.FgHiGreenColor, tablewriter.Bold},
		})
	}

	table.Render()

	fmt.Println()
	term.PrintCmds("", "show", "new", "rm")
}
