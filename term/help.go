package term

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type CmdConfig struct {
	Cmd   string
	Alias string
	Desc  string
}

var CliCommands = []CmdConfig{
	{"", "", "open the interactive blog"},
	{"ls", "", "list posts, newest first"},
	{"show", "", "show a post"},
	{"new", "", "write a new post"},
	{"rm", "", "delete a post"},
	{"open", "", "open a post in the browser"},
	{"about", "", "about this blog"},
	{"version", "", "print the version"},
}

var CmdDesc = map[string][2]string{}

func init() {
	for _, cmd := range CliCommands {
		CmdDesc[cmd.Cmd] = [2]string{cmd.Alias, cmd.Desc}
	}
}

func PrintCmds(prefix string, cmds ...string) {
	for _, cmd := range cmds {
		config, ok := CmdDesc[cmd]
		if !ok {
			continue
		}

		alias := config[0]
		desc := config[1]
		if alias != "" {
			containsFull := strings.Contains(cmd, alias)
			if containsFull {
				cmd = strings.Replace(cmd, alias, fmt.Sprintf("(%s)", alias), 1)
			} else {
				cmd = fmt.Sprintf("%s (%s)", cmd, alias)
			}
		}

		styled := color.New(color.Bold, color.FgHiWhite, color.BgCyan, color.FgHiWhite).Sprintf(" blog %s ", strings.TrimSpace(cmd))

		fmt.Printf("%s%s 👉 %s\n", prefix, styled, desc)
	}
}

func PrintCustomHelp() {
	builder := &strings.Builder{}

	color.New(color.Bold, ColorHiCyan).Fprintln(builder, "Usage:")
	color.New(color.Bold).Fprintln(builder, "  blog [command] [flags]")
	fmt.Fprintln(builder)

	color.New(color.Bold, ColorHiMagenta).Fprintln(builder, "Reading")
	fmt.Fprintln(builder, "  blog            Open the interactive blog")
	fmt.Fprintln(builder, "  ls              List posts, newest first (--search to filter)")
	fmt.Fprintln(builder, "  show <id>       Show a post")
	fmt.Fprintln(builder, "  open <id>       Open a post in the browser")
	fmt.Fprintln(builder)

	color.New(color.Bold, ColorHiMagenta).Fprintln(builder, "Writing")
	fmt.Fprintln(builder, "  new             Write a new post (-t title, -b body)")
	fmt.Fprintln(builder, "  rm [id]         Delete a post (-y to skip confirmation)")
	fmt.Fprintln(builder)

	color.New(color.Bold, ColorHiMagenta).Fprintln(builder, "Other")
	fmt.Fprintln(builder, "  about           About this blog")
	fmt.Fprintln(builder, "  version         Print the version")
	fmt.Fprintln(builder)

	color.New(color.Bold, ColorHiCyan).Fprintln(builder, "Flags:")
	fmt.Fprintln(builder, "  --host string   Post service base URL (env BLOG_API_HOST)")

	fmt.Print(builder.String())
}
