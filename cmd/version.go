package cmd

import (
	"fmt"

	"blog-cli/version"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of blog-cli",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("blog-cli version:", version.Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
