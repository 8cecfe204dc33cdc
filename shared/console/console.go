// Package console inspects the terminal that tables are drawn on.
package console

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/thirukguru/pid/shared/ansi"
)

// HeaderColors picks the table header colours for w. Nothing is coloured when
// w is not a terminal or NO_COLOR is set.
func HeaderColors(w io.Writer) text.Colors {
	f, ok := w.(*os.File)
	if !ok || Width(w) == 0 || os.Getenv("NO_COLOR") != "" {
		return nil
	}
	if !ansi.Enable(f) {
		return nil
	}
	if backgroundIsBlue(f) {
		return text.Colors{text.Bold, text.FgHiWhite}
	}
	return text.Colors{text.Bold, text.FgHiYellow}
}
