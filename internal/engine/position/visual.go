package position

import (
	"github.com/rivo/uniseg"
)

// VisualColumn computes the display width of a line up to the given
// rune index, honoring wide characters and grapheme clusters. Render
// layers use this to place a cursor on screen; the engine itself only
// works in rune columns.
func VisualColumn(line string, col int) int {
	if col <= 0 {
		return 0
	}

	width := 0
	runes := 0
	gr := uniseg.NewGraphemes(line)

	for gr.Next() {
		if runes >= col {
			break
		}
		width += gr.Width()
		runes += len(gr.Runes())
	}
	return width
}
