package playhead

import (
	"testing"

	"github.com/jsphweid/chordgrid/grid"
	"github.com/jsphweid/chordgrid/model"
	"github.com/stretchr/testify/assert"
)

func testIndex(t *testing.T) *grid.TimeIndex {
	t.Helper()
	events := []model.ChordEvent{
		{Chord: "C", BeatIndex: 0, Time: -1},
		{Chord: "C", BeatIndex: 1, Time: -1},
		{Chord: "C", BeatIndex: 2, Time: -1},
	}
	beats := []float64{0, 0.5, 1.0}
	g := grid.Build(events, beats, grid.DefaultOptions())
	return grid.NewTimeIndex(g, beats, grid.BuildAudioMap(g, beats))
}

func TestTickFiresOnlyOnChange(t *testing.T) {
	var clock float64
	var fired []int
	tr := NewTracker(func() float64 { return clock }, testIndex(t), func(i int) {
		fired = append(fired, i)
	})

	tr.Tick()
	tr.Tick()
	clock = 0.6
	tr.Tick()
	tr.Tick()
	clock = 1.1
	tr.Tick()

	assert := assert.New(t)
	assert.Equal([]int{0, 1, 2}, fired)
	assert.Equal(2, tr.Current())
}

func TestTickPastEndReportsNone(t *testing.T) {
	clock := 0.0
	tr := NewTracker(func() float64 { return clock }, testIndex(t), nil)

	tr.Tick()
	assert.Equal(t, 0, tr.Current())

	clock = 100
	tr.Tick()
	assert.Equal(t, grid.NoneIndex, tr.Current())
}

func TestSetIndexSwapsMidFlight(t *testing.T) {
	clock := 0.0
	tr := NewTracker(func() float64 { return clock }, nil, nil)

	// nil index: ticks are harmless no-ops
	tr.Tick()
	assert.Equal(t, grid.NoneIndex, tr.Current())

	tr.SetIndex(testIndex(t))
	tr.Tick()
	assert.Equal(t, 0, tr.Current())
}
