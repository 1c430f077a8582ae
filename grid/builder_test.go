package grid

import (
	"testing"

	"github.com/jsphweid/chordgrid/constants"
	"github.com/jsphweid/chordgrid/model"
	"github.com/stretchr/testify/assert"
)

func makeEvents(labels ...string) []model.ChordEvent {
	res := make([]model.ChordEvent, len(labels))
	for i, l := range labels {
		res[i] = model.ChordEvent{Chord: l, BeatIndex: i, Time: -1}
	}
	return res
}

func makeBeats(count int, first, spacing float64) []float64 {
	res := make([]float64, count)
	for i := range res {
		res[i] = first + float64(i)*spacing
	}
	return res
}

func TestPaddingCountFromFirstBeat(t *testing.T) {
	// bpm 120 -> beatDuration 0.5s, first beat 1.5s -> 3 padding cells
	events := makeEvents("C", "C", "C", "C")
	beats := makeBeats(4, 1.5, 0.5)
	g := Build(events, beats, DefaultOptions())

	assert := assert.New(t)
	assert.Equal(3, g.PaddingCount)
	assert.Equal(0, g.ShiftCount)
	assert.Equal([]float64{0, 0.5, 1.0}, []float64{g.Cells[0].Timestamp, g.Cells[1].Timestamp, g.Cells[2].Timestamp})
}

func TestPaddingStaysBelowFirstModelTimestamp(t *testing.T) {
	events := makeEvents("C", "C", "C", "C")
	beats := makeBeats(4, 1.5, 0.5)
	g := Build(events, beats, DefaultOptions())

	assert := assert.New(t)
	first := g.Cells[g.ShiftCount+g.PaddingCount].Timestamp
	for i := 0; i < g.PaddingCount; i++ {
		c := g.Cells[g.ShiftCount+i]
		assert.Equal(model.CellPadding, c.Type)
		assert.Less(c.Timestamp, first)
		if i > 0 {
			assert.Greater(c.Timestamp, g.Cells[g.ShiftCount+i-1].Timestamp)
		}
	}
}

func TestPaddingOverrideRedistributesBelowFirstBeat(t *testing.T) {
	// 6 padding cells at 0.5s each would overrun a first beat at 1.5s
	events := makeEvents("C", "C", "C", "C")
	beats := makeBeats(4, 1.5, 0.5)
	opts := DefaultOptions()
	opts.PaddingCount = 6
	g := Build(events, beats, opts)

	assert := assert.New(t)
	assert.Equal(6, g.PaddingCount)
	for i := 0; i < 6; i++ {
		c := g.Cells[i]
		assert.Less(c.Timestamp, 1.5)
		if i > 0 {
			assert.Greater(c.Timestamp, g.Cells[i-1].Timestamp)
		}
	}
}

func TestLengthInvariantAndTypePartition(t *testing.T) {
	events := makeEvents("C", "C", "G", "G", "Am", "Am", "F", "F")
	beats := makeBeats(8, 1.5, 0.5)
	g := Build(events, beats, DefaultOptions())

	assert := assert.New(t)
	assert.Equal(g.ShiftCount+g.PaddingCount+len(events), len(g.Cells))
	for i, c := range g.Cells {
		assert.Equal(i, c.VisualIndex)
		switch {
		case i < g.ShiftCount:
			assert.Equal(model.CellShift, c.Type)
			assert.Equal("", c.Chord)
			assert.Equal(model.InvalidTime, c.Timestamp)
			assert.False(c.Clickable)
		case i < g.ShiftCount+g.PaddingCount:
			assert.Equal(model.CellPadding, c.Type)
			assert.Equal("", c.Chord)
		default:
			assert.Equal(model.CellModel, c.Type)
		}
	}
}

func TestOptimalShiftMaximizesDownbeatChanges(t *testing.T) {
	events := makeEvents("C", "C", "G", "G", "Am", "Am", "F", "F")

	assert := assert.New(t)
	scores := ShiftScores(events, 4)
	assert.Equal([]int{1, 0, 2, 0}, scores)
	assert.Equal(2, OptimalShift(events, 4))
	// reproducible
	assert.Equal(2, OptimalShift(events, 4))
}

func TestOptimalShiftTieGoesToZero(t *testing.T) {
	events := makeEvents("C", "C", "C", "C", "C", "C", "C", "C")
	assert.Equal(t, 0, OptimalShift(events, 4))
}

func TestOptimalShiftIgnoresNoChordBoundaries(t *testing.T) {
	// a change into or out of N.C. is not a chord change
	events := makeEvents("C", "N.C.", "C", "C", "G", "G", "G", "G")
	scores := ShiftScores(events, 4)

	assert := assert.New(t)
	assert.Equal([]int{1, 0, 0, 0}, scores)
	assert.Equal(0, OptimalShift(events, 4))
}

func TestShiftOverrideSkipsComputation(t *testing.T) {
	events := makeEvents("C", "C", "G", "G", "Am", "Am", "F", "F")
	beats := makeBeats(8, 0, 0.5)
	opts := DefaultOptions()
	opts.ShiftCount = 1
	g := Build(events, beats, opts)

	assert := assert.New(t)
	assert.Equal(1, g.ShiftCount)
	assert.Equal(model.CellShift, g.Cells[0].Type)
}

func TestNonPositiveBPMFallsBackTo120(t *testing.T) {
	events := makeEvents("C", "C", "C", "C")
	beats := makeBeats(4, 1.5, 0.5)
	opts := DefaultOptions()
	opts.BPM = 0
	g := Build(events, beats, opts)

	assert := assert.New(t)
	assert.Equal(float64(120), g.BPM)
	assert.Equal(3, g.PaddingCount)
}

func TestEmptyBeatsDegeneratesToEventTimes(t *testing.T) {
	events := []model.ChordEvent{
		{Chord: "C", BeatIndex: 0, Time: 0.1},
		{Chord: "G", BeatIndex: 1, Time: 0.6},
	}
	g := Build(events, nil, DefaultOptions())

	assert := assert.New(t)
	assert.Equal(0, g.ShiftCount)
	assert.Equal(0, g.PaddingCount)
	assert.Equal(2, len(g.Cells))
	assert.Equal(0.1, g.Cells[0].Timestamp)
	assert.Equal(0.6, g.Cells[1].Timestamp)
	assert.True(g.Cells[0].Clickable)
}

func TestEmptyInputsYieldEmptyGrid(t *testing.T) {
	g := Build(nil, nil, DefaultOptions())

	assert := assert.New(t)
	assert.Equal(0, len(g.Cells))
	assert.Equal(0, g.ShiftCount)
	assert.Equal(0, g.PaddingCount)
}

func TestOutOfRangeBeatIndexFallsBackToEventTime(t *testing.T) {
	events := []model.ChordEvent{
		{Chord: "C", BeatIndex: 0, Time: -1},
		{Chord: "G", BeatIndex: 99, Time: 2.25},
		{Chord: "F", BeatIndex: 98, Time: -1},
	}
	beats := makeBeats(1, 2.0, 0.5)
	g := Build(events, beats, DefaultOptions())

	assert := assert.New(t)
	base := g.ShiftCount + g.PaddingCount
	assert.Equal(2.0, g.Cells[base].Timestamp)
	assert.Equal(2.25, g.Cells[base+1].Timestamp)
	// no beat and no event time: renders but is not clickable
	assert.Equal(model.InvalidTime, g.Cells[base+2].Timestamp)
	assert.False(g.Cells[base+2].Clickable)
	assert.Equal("F", g.Cells[base+2].Chord)
}

func TestMalformedBeatTimestampsAreIgnored(t *testing.T) {
	events := makeEvents("C", "C", "C", "C")
	beats := []float64{-1, 1.5, 2.0, 2.5}
	g := Build(events, beats, DefaultOptions())

	assert := assert.New(t)
	// first valid beat (1.5s) drives padding
	assert.Equal(3, g.PaddingCount)
	// cell addressing the bad entry falls back to invalid
	base := g.ShiftCount + g.PaddingCount
	assert.Equal(model.InvalidTime, g.Cells[base].Timestamp)
	assert.False(g.Cells[base].Clickable)
}

func TestHugeFirstBeatClampsPadding(t *testing.T) {
	events := makeEvents("C", "G")
	opts := DefaultOptions()
	opts.ShiftCount = 0
	g := Build(events, []float64{1e30, 1e30 + 0.5}, opts)

	assert := assert.New(t)
	assert.Equal(constants.MaxSyntheticCells, g.PaddingCount)
	assert.Len(g.Cells, constants.MaxSyntheticCells+2)
}

func TestAbsurdCountOverridesAreClamped(t *testing.T) {
	events := makeEvents("C", "G")
	opts := DefaultOptions()
	opts.PaddingCount = 1 << 60
	opts.ShiftCount = 1 << 59
	g := Build(events, makeBeats(2, 0.5, 0.5), opts)

	assert := assert.New(t)
	assert.Equal(constants.MaxSyntheticCells, g.ShiftCount)
	assert.Equal(constants.MaxSyntheticCells, g.PaddingCount)
	assert.Len(g.Cells, 2*constants.MaxSyntheticCells+2)
	// padding still climbs strictly below the first beat
	last := g.Cells[g.ShiftCount+g.PaddingCount-1].Timestamp
	assert.Greater(last, g.Cells[g.ShiftCount].Timestamp)
	assert.Less(last, 0.5)
}

func TestOversizedTimeSignatureIsCapped(t *testing.T) {
	events := makeEvents("C", "G")
	opts := DefaultOptions()
	opts.TimeSignature = 1 << 40
	g := Build(events, makeBeats(2, 0, 0.5), opts)

	assert.Equal(t, constants.MaxTimeSignature, g.TimeSignature)
}

func TestBuildIsDeterministic(t *testing.T) {
	events := makeEvents("C", "C", "G", "G", "Am", "Am", "F", "F")
	beats := makeBeats(8, 1.5, 0.5)
	a := Build(events, beats, DefaultOptions())
	b := Build(events, beats, DefaultOptions())

	assert.Equal(t, a, b)
}
