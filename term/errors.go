package term

import (
	"fmt"
	"os"
	"strings"

	shared "blog-cli/shared"

	"github.com/fatih/color"
)

func OutputErrorAndExit(msg string, args ...interface{}) {
	StopSpinner()
	fmt.Fprintln(os.Stderr, FormatError(fmt.Sprintf(msg, args...)))
	os.Exit(1)
}

// FormatError lays a chain of "outer: inner: cause" messages out as an
// indented list, skipping parts that repeat.
func FormatError(msg string) string {
	errorParts := strings.Split(msg, ": ")
	if len(errorParts) < 2 {
		return color.New(ColorHiRed, color.Bold).Sprint("🚨 " + shared.Capitalize(msg))
	}

	var b strings.Builder
	seen := map[string]bool{}
	i := 0
	for _, part := range errorParts {
		part = strings.TrimSpace(part)
		if part == "" || seen[strings.ToLower(part)] {
			continue
		}
		seen[strings.ToLower(part)] = true

		if i == 0 {
			b.WriteString(color.New(ColorHiRed, color.Bold).Sprint("🚨 " + shared.Capitalize(part)))
		} else {
			b.WriteString("\n" + strings.Repeat("  ", i) + "→ " + shared.Capitalize(part))
		}
		i++
	}

	return b.String()
}
