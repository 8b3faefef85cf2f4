package ui

import (
	"github.com/pterm/pterm"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Muted styles text that should recede, such as unscheduled rows.
func Muted(a any) string {
	return pterm.Gray(a)
}

// Swatch renders a block in the given "#rrggbb" color followed by the code
// itself. Invalid colors are printed as is.
func Swatch(hex string) string {
	rgb, err := pterm.NewRGBFromHEX(hex)
	if err != nil {
		return hex
	}

	return rgb.Sprint("■") + " " + hex
}
