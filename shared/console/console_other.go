//go:build !windows

package console

import (
	"os"
	"strings"
)

// backgroundIsBlue inspects COLORFGBG ("fg;bg" or "fg;default;bg") as set by
// rxvt-style terminals.
func backgroundIsBlue(*os.File) bool {
	raw := os.Getenv("COLORFGBG")
	if raw == "" {
		return false
	}
	parts := strings.Split(raw, ";")
	bg := strings.TrimSpace(parts[len(parts)-1])

	// ANSI 16-color backgrounds: 4 (blue) and 12 (bright blue).
	return bg == "4" || bg == "12"
}
