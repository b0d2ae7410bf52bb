package cmd

import (
	"context"
	"os"
	"os/signal"

	"blog-cli/api"
	blogtui "blog-cli/blog_tui"
	"blog-cli/lib"
	"blog-cli/term"

	"github.com/spf13/cobra"
)

var apiHost string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   `blog [command] [flags]`,
	Short: "Blog: read and write posts from the terminal",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		resolveApiClient()
	},
	Run: runBlogUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		term.OutputErrorAndExit("Error executing root command: %v", err)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&apiHost, "host", "", "Post service base URL (overrides BLOG_API_HOST)")

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			cmd.Println(cmd.UsageString())
			return
		}
		term.PrintCustomHelp()
	})
}

func resolveApiClient() {
	if apiHost == "" {
		apiHost = api.GetApiHost()
	}
	api.Client = api.NewApi(apiHost)
}

func runBlogUI(cmd *cobra.Command, args []string) {
	err := blogtui.StartBlogUI(cmd.Context(), api.Client, lib.GetBlogTitle())
	if err != nil {
		term.OutputErrorAndExit("Error running blog: %v", err)
	}
}
