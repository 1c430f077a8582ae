package grid

import (
	"github.com/jsphweid/chordgrid/constants"
	"github.com/jsphweid/chordgrid/model"
)

// NoneIndex is returned by TimestampToIndex when no cell is active.
const NoneIndex = -1

// TimeIndex resolves visual index <-> playback timestamp over an
// immutable grid. Both directions read the same effective timestamps,
// precomputed once, so a round trip through a model cell is exact.
type TimeIndex struct {
	cells []model.Cell
	times []float64
	next  []float64
}

// NewTimeIndex precomputes effective timestamps. audioMap (visual
// index -> original-audio seconds) is optional and wins for model
// cells; it is the most precise source because it knows nothing of
// shift rotation.
func NewTimeIndex(g *Grid, beats []float64, audioMap map[int]float64) *TimeIndex {
	idx := &TimeIndex{
		cells: g.Cells,
		times: make([]float64, len(g.Cells)),
		next:  make([]float64, len(g.Cells)),
	}
	for i, c := range g.Cells {
		idx.times[i] = effectiveTime(c, beats, audioMap)
	}
	nextValid := model.InvalidTime
	for i := len(idx.times) - 1; i >= 0; i-- {
		idx.next[i] = nextValid
		if idx.times[i] >= 0 {
			nextValid = idx.times[i]
		}
	}
	return idx
}

func effectiveTime(c model.Cell, beats []float64, audioMap map[int]float64) float64 {
	switch c.Type {
	case model.CellShift:
		return model.InvalidTime
	case model.CellPadding:
		return c.Timestamp
	default:
		if t, ok := audioMap[c.VisualIndex]; ok && validTime(t) {
			return t
		}
		if c.BeatIndex >= 0 && c.BeatIndex < len(beats) && validTime(beats[c.BeatIndex]) {
			return beats[c.BeatIndex]
		}
		if validTime(c.Timestamp) {
			return c.Timestamp
		}
		return model.InvalidTime
	}
}

// BuildAudioMap derives the precise per-cell table from the beat
// array, once per grid.
func BuildAudioMap(g *Grid, beats []float64) map[int]float64 {
	res := make(map[int]float64)
	for _, c := range g.Cells {
		if c.Type != model.CellModel {
			continue
		}
		if c.BeatIndex >= 0 && c.BeatIndex < len(beats) && validTime(beats[c.BeatIndex]) {
			res[c.VisualIndex] = beats[c.BeatIndex]
		}
	}
	return res
}

// IndexToTimestamp returns the seek timestamp for a cell and whether
// it is usable. Shift cells never are.
func (x *TimeIndex) IndexToTimestamp(i int) (float64, bool) {
	if i < 0 || i >= len(x.times) {
		return model.InvalidTime, false
	}
	t := x.times[i]
	return t, t >= 0
}

// TimestampToIndex finds the active cell at playback time t: the
// first cell whose [timestamp, nextValidTimestamp) window contains t.
// The last valid cell keeps a ~2s window. NoneIndex when t precedes
// the first valid cell (or nothing matches).
func (x *TimeIndex) TimestampToIndex(t float64) int {
	for i := range x.times {
		ts := x.times[i]
		if ts < 0 {
			continue
		}
		hi := x.next[i]
		if hi < 0 {
			hi = ts + constants.HighlightWindowSec
		}
		if t >= ts && t < hi {
			return i
		}
	}
	return NoneIndex
}

// Len is the number of cells the index covers.
func (x *TimeIndex) Len() int {
	return len(x.times)
}

// Cell returns the underlying cell for an index.
func (x *TimeIndex) Cell(i int) (model.Cell, bool) {
	if i < 0 || i >= len(x.cells) {
		return model.Cell{}, false
	}
	return x.cells[i], true
}

// End is the timestamp after which nothing highlights anymore.
func (x *TimeIndex) End() float64 {
	for i := len(x.times) - 1; i >= 0; i-- {
		if x.times[i] >= 0 {
			return x.times[i] + constants.HighlightWindowSec
		}
	}
	return model.InvalidTime
}
