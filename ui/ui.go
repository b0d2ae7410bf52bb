package ui

import (
	"fmt"

	"blog-cli/term"

	"github.com/fatih/color"
	"github.com/pkg/browser"
)

func OpenURL(msg, url string) {
	fmt.Printf(
		"%s\n\nIf it doesn't open automatically, use this URL:\n%s\n",
		color.New(term.ColorHiGreen).Sprint(msg),
		url,
	)

	err := browser.OpenURL(url)
	if err != nil {
		fmt.Printf("Failed to open URL automatically: %v\n", err)
		fmt.Println("Please open the URL manually in your browser.")
	}
}
