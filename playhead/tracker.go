package playhead

import (
	"sync"
	"time"

	"github.com/jsphweid/chordgrid/constants"
	"github.com/jsphweid/chordgrid/grid"
)

// Tracker polls a playback clock and reports which grid cell is
// active. It is approximate by design: a missed tick just delays the
// next update by one poll interval. The clock returns seconds of
// playback position.
type Tracker struct {
	clock    func() float64
	interval time.Duration
	onChange func(int)

	mu      sync.Mutex
	idx     *grid.TimeIndex
	current int
	stop    chan struct{}
}

func NewTracker(clock func() float64, idx *grid.TimeIndex, onChange func(int)) *Tracker {
	return &Tracker{
		clock:    clock,
		interval: constants.PollInterval,
		onChange: onChange,
		idx:      idx,
		current:  grid.NoneIndex,
	}
}

// SetIndex swaps in a freshly built index, e.g. after corrections
// arrive. The next tick picks it up.
func (t *Tracker) SetIndex(idx *grid.TimeIndex) {
	t.mu.Lock()
	t.idx = idx
	t.mu.Unlock()
}

// Current returns the last resolved index, NoneIndex when nothing is
// active.
func (t *Tracker) Current() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Tick samples the clock once, firing onChange only when the active
// cell moved.
func (t *Tracker) Tick() {
	t.mu.Lock()
	idx := t.idx
	t.mu.Unlock()
	if idx == nil {
		return
	}
	i := idx.TimestampToIndex(t.clock())
	t.mu.Lock()
	changed := i != t.current
	t.current = i
	t.mu.Unlock()
	if changed && t.onChange != nil {
		t.onChange(i)
	}
}

// Start runs the poll loop in a goroutine. Safe to call once; a
// second call while running is a no-op.
func (t *Tracker) Start() {
	t.mu.Lock()
	if t.stop != nil {
		t.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	t.stop = stop
	t.mu.Unlock()

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				t.Tick()
			case <-stop:
				return
			}
		}
	}()
}

func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}
