package render

import (
	"gonum.org/v1/gonum/floats"

	"github.com/noriah/wavescope/window"
)

// Range is the (min, max) amplitude pair used to normalize samples into
// vertical screen coordinates. When derived from ComputeRange, Max is
// always strictly greater than Min.
type Range struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// ComputeRange scans every sample across every channel of the snapshot
// and returns the amplitude range.
//
// An empty snapshot yields the default range (-1, 1). A flat signal,
// where every sample equals the same value, is widened by one unit on
// each side so the span never collapses to zero. Non-finite samples are
// not sanitized and flow straight into the result.
//
// ComputeRange is a pure function of the snapshot and is recomputed on
// every render pass.
func ComputeRange(snap window.Snapshot) Range {
	if snap.Empty() {
		return Range{Min: -1.0, Max: 1.0}
	}

	first := true
	var rng Range

	for _, ch := range snap {
		if len(ch) == 0 {
			continue
		}

		lo, hi := floats.Min(ch), floats.Max(ch)

		if first {
			rng = Range{Min: lo, Max: hi}
			first = false
			continue
		}

		if lo < rng.Min {
			rng.Min = lo
		}

		if hi > rng.Max {
			rng.Max = hi
		}
	}

	if rng.Min == rng.Max {
		rng.Min--
		rng.Max++
	}

	return rng
}
