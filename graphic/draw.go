package graphic

import (
	"github.com/nsf/termbox-go"

	"github.com/noriah/wavescope/render"
)

// DisplayBar is the block we use for trace cells
const DisplayBar rune = '█'

// drawPolyline plots one channel trace onto the cell grid. Vertical
// gaps between neighboring points are filled so the trace reads as a
// continuous line rather than scattered cells.
func drawPolyline(pl render.Polyline, cHeight int) {
	fg := termbox.Attribute(pl.Color) + 1

	prevCol := -1
	prevRow := 0

	for _, pt := range pl.Points {
		col := int(pt.X)
		row := clampRow(int(pt.Y), cHeight)

		if prevCol >= 0 {
			fillColumn(col, prevRow, row, fg)
		} else {
			termbox.SetCell(col, row, DisplayBar, fg, termbox.ColorDefault)
		}

		prevCol, prevRow = col, row
	}
}

// fillColumn draws the vertical span [from, to] at column col.
func fillColumn(col, from, to int, fg termbox.Attribute) {
	if from > to {
		from, to = to, from
	}

	for row := from; row <= to; row++ {
		termbox.SetCell(col, row, DisplayBar, fg, termbox.ColorDefault)
	}
}

func clampRow(row, cHeight int) int {
	if row >= cHeight {
		row = cHeight - 1
	}

	if row < 0 {
		row = 0
	}

	return row
}
