package term

import (
	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

var IsDarkBg = termenv.HasDarkBackground()

var ColorHiGreen color.Attribute
var ColorHiMagenta color.Attribute
var ColorHiRed color.Attribute
var ColorHiCyan color.Attribute

func init() {
	if IsDarkBg {
		ColorHiGreen = color.FgHiGreen
		ColorHiMagenta = color.FgHiMagenta
		ColorHiRed = color.FgHiRed
		ColorHiCyan = color.FgHiCyan
	} else {
		ColorHiGreen = color.FgGreen
		ColorHiMagenta = color.FgMagenta
		ColorHiRed = color.FgRed
		ColorHiCyan = color.FgCyan
	}
}
