package session

import (
	"sort"
	"sync"

	"github.com/bep/debounce"
	"github.com/google/uuid"

	"github.com/jsphweid/chordgrid/analysis"
	"github.com/jsphweid/chordgrid/constants"
	"github.com/jsphweid/chordgrid/correct"
	"github.com/jsphweid/chordgrid/grid"
	"github.com/jsphweid/chordgrid/model"
	"github.com/jsphweid/chordgrid/util"
)

// Session owns one recording's grid: the sanitized analysis it was
// built from, the current correction set, and the time index the
// lookup endpoints read. Correction writes rebuild asynchronously
// behind a debounce, so a burst of edits costs one rebuild.
type Session struct {
	ID          string
	RecordingID string

	mu          sync.RWMutex
	res         model.AnalysisResult
	corrections model.CorrectionSet
	g           *grid.Grid
	idx         *grid.TimeIndex

	debounced func(func())
}

// New sanitizes the analysis payload and builds the first grid
// synchronously so the caller can report its dimensions right away.
func New(recordingID string, res model.AnalysisResult) *Session {
	s := &Session{
		ID:          uuid.New().String(),
		RecordingID: recordingID,
		res:         analysis.Sanitize(res),
		debounced:   debounce.New(constants.RebuildDebounce),
	}
	s.rebuild()
	return s
}

func (s *Session) rebuild() {
	s.mu.Lock()
	defer s.mu.Unlock()
	beats := s.res.BeatTimes()
	g := grid.Build(s.res.Chords, beats, grid.OptionsFor(s.res))
	g.Cells = correct.Apply(g.Cells, s.corrections, g.ShiftCount, g.PaddingCount)
	s.g = g
	s.idx = grid.NewTimeIndex(g, beats, grid.BuildAudioMap(g, beats))
}

// SetCorrections stores the new correction set and schedules a
// rebuild. Reads served before the debounce fires still see the
// previous grid.
func (s *Session) SetCorrections(cs model.CorrectionSet) {
	s.mu.Lock()
	s.corrections = cs
	s.mu.Unlock()
	s.debounced(s.rebuild)
}

// Grid returns the current grid. Grids are never mutated after a
// rebuild, so the pointer is safe to read without the lock.
func (s *Session) Grid() *grid.Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g
}

// Rows shapes the current cells into measures and rows for rendering.
func (s *Session) Rows(measuresPerRow int) []model.Row {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if measuresPerRow < 1 {
		measuresPerRow = constants.DefaultMeasuresPerRow
	}
	return grid.GroupRows(grid.GroupMeasures(s.g.Cells, s.g.TimeSignature), measuresPerRow)
}

// Locate maps a playback timestamp to the active cell index, or
// grid.NoneIndex.
func (s *Session) Locate(t float64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx.TimestampToIndex(t)
}

// Cell returns the cell at a visual index along with its effective
// seek timestamp.
func (s *Session) Cell(i int) (model.Cell, float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.idx.Cell(i)
	if !ok {
		return model.Cell{}, model.InvalidTime, false
	}
	t, _ := s.idx.IndexToTimestamp(i)
	return c, t, true
}

// Registry is the in-memory session store behind the HTTP API.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

func (r *Registry) Add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := util.GetKeys(r.sessions)
	sort.Strings(ids)
	return ids
}
