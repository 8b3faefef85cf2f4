package segment

import (
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPlaceholderColor is the neutral fill used for unscheduled time.
const DefaultPlaceholderColor = "#444444"

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// RandomColor returns a random, reasonably saturated "#rrggbb" color.
func RandomColor() string {
	return colorful.FastHappyColor().Hex()
}

// ValidColor reports whether c is a six digit hex color with a leading '#'.
func ValidColor(c string) bool {
	return hexColorRegex.MatchString(c)
}

// NormalizeColor lowercases a color and adds the '#' prefix when missing. It
// returns an error if the result is not a valid hex color.
func NormalizeColor(c string) (string, error) {
	c = strings.ToLower(strings.TrimSpace(c))
	if c != "" && !strings.HasPrefix(c, "#") {
		c = "#" + c
	}

	if !ValidColor(c) {
		return "", errInvalidColor.Fmt(c)
	}

	return c, nil
}
