package term

import (
	"os"
	"strings"

	"golang.org/x/term"
)

func GetDivisionLine() string {
	return strings.Repeat("─", min(getTerminalWidth(), 80))
}

func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
