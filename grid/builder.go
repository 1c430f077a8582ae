package grid

import (
	"math"

	"github.com/jsphweid/chordgrid/chord"
	"github.com/jsphweid/chordgrid/constants"
	"github.com/jsphweid/chordgrid/model"
)

// Options controls a build. PaddingCount and ShiftCount of -1 mean
// "compute them"; values >= 0 are taken as-is (the upstream services
// sometimes precompute them).
type Options struct {
	TimeSignature int
	BPM           float64
	PaddingCount  int
	ShiftCount    int
}

func DefaultOptions() Options {
	return Options{
		TimeSignature: constants.DefaultTimeSignature,
		BPM:           constants.DefaultBPM,
		PaddingCount:  -1,
		ShiftCount:    -1,
	}
}

// OptionsFor lifts the tempo/meter fields of an analysis result into
// build options, falling back to defaults where the payload is silent.
func OptionsFor(r model.AnalysisResult) Options {
	opts := DefaultOptions()
	if r.TimeSignature >= 1 {
		opts.TimeSignature = r.TimeSignature
	}
	if r.BPM > 0 {
		opts.BPM = r.BPM
	}
	opts.PaddingCount = r.PaddingCount
	opts.ShiftCount = r.ShiftCount
	return opts
}

// Grid is the flat cell sequence plus the numbers everything
// downstream needs to interpret it. It is a pure function of its
// inputs; rebuilding with identical inputs yields an identical grid.
type Grid struct {
	Cells         []model.Cell
	ShiftCount    int
	PaddingCount  int
	TimeSignature int
	BPM           float64
	BeatDuration  float64
}

// Build assembles the visual grid: shift cells, then padding cells
// back-filling time 0 to the first detected beat, then one model cell
// per chord event. It never panics; bad numbers degrade to defaults
// or invalid timestamps.
func Build(events []model.ChordEvent, beats []float64, opts Options) *Grid {
	ts := opts.TimeSignature
	if ts < 1 {
		ts = constants.DefaultTimeSignature
	}
	if ts > constants.MaxTimeSignature {
		ts = constants.MaxTimeSignature
	}
	bpm := opts.BPM
	if bpm <= 0 || math.IsNaN(bpm) || math.IsInf(bpm, 0) {
		bpm = constants.DefaultBPM
	}
	g := &Grid{
		TimeSignature: ts,
		BPM:           bpm,
		BeatDuration:  60.0 / bpm,
	}
	if len(events) == 0 {
		return g
	}

	if !anyValid(beats) {
		// no beat grid at all: degenerate 1:1 mapping on event times
		for i, ev := range events {
			g.Cells = append(g.Cells, modelCell(i, ev, nil))
		}
		return g
	}

	shift := opts.ShiftCount
	if shift < 0 {
		shift = OptimalShift(events, ts)
	}
	padding := opts.PaddingCount
	if padding < 0 {
		padding = 0
		if t0 := firstValid(beats); t0 > 0 {
			padding = flooredCount(t0 / g.BeatDuration)
		}
	}
	shift = clampCount(shift)
	padding = clampCount(padding)
	g.ShiftCount = shift
	g.PaddingCount = padding

	for i := 0; i < shift; i++ {
		g.Cells = append(g.Cells, model.Cell{
			VisualIndex: i,
			Timestamp:   model.InvalidTime,
			Type:        model.CellShift,
			BeatIndex:   -1,
		})
	}

	firstModel := eventTimestamp(events[0], beats)
	for i, t := range paddingTimes(padding, g.BeatDuration, firstModel) {
		g.Cells = append(g.Cells, model.Cell{
			VisualIndex: shift + i,
			Timestamp:   t,
			Type:        model.CellPadding,
			BeatIndex:   -1,
			Clickable:   t >= 0,
		})
	}

	base := shift + padding
	for i, ev := range events {
		g.Cells = append(g.Cells, modelCell(base+i, ev, beats))
	}
	return g
}

func modelCell(visualIndex int, ev model.ChordEvent, beats []float64) model.Cell {
	t := eventTimestamp(ev, beats)
	return model.Cell{
		VisualIndex: visualIndex,
		Chord:       ev.Chord,
		Timestamp:   t,
		Type:        model.CellModel,
		BeatIndex:   ev.BeatIndex,
		Clickable:   t >= 0,
	}
}

// eventTimestamp prefers the beat array entry addressed by BeatIndex,
// then the event's own time, then gives up.
func eventTimestamp(ev model.ChordEvent, beats []float64) float64 {
	if ev.BeatIndex >= 0 && ev.BeatIndex < len(beats) && validTime(beats[ev.BeatIndex]) {
		return beats[ev.BeatIndex]
	}
	if validTime(ev.Time) {
		return ev.Time
	}
	return model.InvalidTime
}

// clampCount keeps a synthetic cell count inside
// [0, constants.MaxSyntheticCells].
func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	if n > constants.MaxSyntheticCells {
		return constants.MaxSyntheticCells
	}
	return n
}

// flooredCount floors a beat ratio to a count, saturating at
// MaxSyntheticCells before the int conversion can overflow.
func flooredCount(q float64) int {
	if q >= float64(constants.MaxSyntheticCells) {
		return constants.MaxSyntheticCells
	}
	return int(math.Floor(q))
}

// paddingTimes lays the synthetic cells on the i*beatDuration ramp.
// The ramp must stay strictly below the first model timestamp; when an
// externally supplied padding count overruns it, the cells are spread
// proportionally below it instead.
func paddingTimes(count int, beatDur, firstModel float64) []float64 {
	res := make([]float64, count)
	for i := range res {
		res[i] = float64(i) * beatDur
	}
	if count == 0 || firstModel < 0 || res[count-1] < firstModel {
		return res
	}
	for i := range res {
		res[i] = firstModel * float64(i) / float64(count)
	}
	return res
}

// OptimalShift picks the rotation in [0, timeSignature) that lands the
// most chord changes on downbeats. A change is counted at position i
// when the label differs from position i-1 (both real chords) and
// i+shift is a downbeat. Ties go to the smallest shift, so an
// all-identical sequence stays at 0.
func OptimalShift(events []model.ChordEvent, timeSignature int) int {
	scores := ShiftScores(events, timeSignature)
	best := 0
	for shift, score := range scores {
		if score > scores[best] {
			best = shift
		}
	}
	return best
}

// ShiftScores returns the downbeat-aligned change count per candidate
// shift. Exposed for diagnostics.
func ShiftScores(events []model.ChordEvent, timeSignature int) []int {
	if timeSignature < 1 {
		timeSignature = constants.DefaultTimeSignature
	}
	if timeSignature > constants.MaxTimeSignature {
		timeSignature = constants.MaxTimeSignature
	}
	scores := make([]int, timeSignature)
	for shift := 0; shift < timeSignature; shift++ {
		for i := 1; i < len(events); i++ {
			prev := events[i-1].Chord
			curr := events[i].Chord
			if curr == prev || chord.IsNoChord(prev) || chord.IsNoChord(curr) {
				continue
			}
			if (i+shift)%timeSignature == 0 {
				scores[shift]++
			}
		}
	}
	return scores
}

func validTime(t float64) bool {
	return t >= 0 && !math.IsNaN(t) && !math.IsInf(t, 0)
}

func anyValid(beats []float64) bool {
	for _, t := range beats {
		if validTime(t) {
			return true
		}
	}
	return false
}

func firstValid(beats []float64) float64 {
	for _, t := range beats {
		if validTime(t) {
			return t
		}
	}
	return model.InvalidTime
}
