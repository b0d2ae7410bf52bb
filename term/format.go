package term

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
)

// GetMarkdown renders a post body for the terminal.
func GetMarkdown(input string) (string, error) {
	return GetMarkdownWidth(input, getTerminalWidth())
}

func GetMarkdownWidth(input string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(min(width, 80), 20)),
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return "", err
	}

	out, err := r.Render(input)
	if err != nil {
		return "", err
	}

	return out, nil
}

func GetPlain(input string) string {
	width := getTerminalWidth()

	s := wordwrap.String(input, max(min(width-2, 80), 20))

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	s = strings.Join(lines, "\n")

	c := "234"
	if IsDarkBg {
		c = "251"
	}

	return termenv.String(s).Foreground(termenv.ANSI256.Color(c)).String()
}
