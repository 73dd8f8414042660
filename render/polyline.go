package render

import (
	"github.com/noriah/wavescope/window"
)

// Point is one screen-space vertex of a polyline. Points are derived on
// every render pass and never stored.
type Point struct {
	X float64
	Y float64
}

// Polyline is the ordered point sequence representing one channel's
// current window.
type Polyline struct {
	Channel int
	Color   Color
	Points  []Point
}

// Policy selects how the renderer decides what needs redrawing.
type Policy int

const (
	// PolicyAlwaysDirty treats every change notification as a full
	// recomputation and redraw of all channels. There is no diffing.
	PolicyAlwaysDirty Policy = iota
)

// Renderer converts buffer snapshots into polylines for a target
// drawing size. It holds no per-frame state; the same snapshot, range
// and size always produce the same polylines.
type Renderer struct {
	capacity int
	palette  Palette
	policy   Policy
}

// NewRenderer returns a renderer for buffers of the given window
// capacity. A nil palette falls back to DefaultPalette.
func NewRenderer(capacity int, palette Palette) *Renderer {
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	return &Renderer{
		capacity: capacity,
		palette:  palette,
		policy:   PolicyAlwaysDirty,
	}
}

// Policy returns the renderer's redraw policy.
func (r *Renderer) Policy() Policy {
	return r.policy
}

// Polylines lays out one polyline per non-empty channel of the
// snapshot within a width x height target.
//
// The x axis is scaled against the window capacity, not the current
// sample count. A channel that has not yet filled its window only
// occupies the left portion of the width, widening as samples arrive,
// and spans the full width once the window is full. This compresses
// the trace horizontally while the buffer fills; it matches the
// historical behavior of the display and is kept on purpose, so do not
// "fix" it to scale against the current length.
//
// The y axis maps rng.Min to the bottom edge (y = height) and rng.Max
// to the top edge (y = 0).
//
// A zero width or height yields no polylines and no error. Channels
// with no samples yield no polyline.
func (r *Renderer) Polylines(snap window.Snapshot, rng Range, width, height float64) []Polyline {
	if width <= 0 || height <= 0 {
		return nil
	}

	span := float64(r.capacity - 1)
	if span < 1 {
		span = 1
	}

	lines := make([]Polyline, 0, len(snap))

	for idx, ch := range snap {
		if len(ch) == 0 {
			continue
		}

		points := make([]Point, len(ch))

		for j, s := range ch {
			points[j] = Point{
				X: float64(j) / span * width,
				Y: height - (s-rng.Min)/rng.Span()*height,
			}
		}

		lines = append(lines, Polyline{
			Channel: idx,
			Color:   r.palette.Color(idx),
			Points:  points,
		})
	}

	return lines
}
