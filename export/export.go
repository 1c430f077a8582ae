package export

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/chordgrid/chord"
	"github.com/jsphweid/chordgrid/grid"
	"github.com/jsphweid/chordgrid/model"
)

const ticksPerBeat = 960

// Create renders a grid as a one-chord-per-beat standard MIDI file.
// Shift and padding cells become rests so every chord keeps the beat
// it occupies on screen. Each sounding beat carries a text marker
// with the original label.
func Create(g *grid.Grid) (*smf.SMF, error) {
	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(ticksPerBeat)

	var meta smf.Track
	meta.Add(0, smf.MetaMeter(uint8(g.TimeSignature), 4))
	meta.Add(0, smf.MetaTempo(g.BPM))
	meta.Close(0)
	if err := sm.Add(meta); err != nil {
		return nil, errors.Wrap(err, "could not add meta track")
	}

	var tr smf.Track
	var delta uint32
	for _, c := range g.Cells {
		notes := cellNotes(c)
		if len(notes) == 0 {
			delta += ticksPerBeat
			continue
		}
		tr.Add(delta, smf.MetaText(c.Chord))
		for _, n := range notes {
			tr.Add(0, midi.NoteOn(0, n, 100))
		}
		// end one tick early and carry it so the next beat lines up
		tr.Add(ticksPerBeat-1, midi.NoteOff(0, notes[0]))
		for _, n := range notes[1:] {
			tr.Add(0, midi.NoteOff(0, n))
		}
		delta = 1
	}
	tr.Close(0)
	if err := sm.Add(tr); err != nil {
		return nil, errors.Wrap(err, "could not add chord track")
	}
	return sm, nil
}

func cellNotes(c model.Cell) []uint8 {
	if c.Type != model.CellModel || chord.IsNoChord(c.Chord) {
		return nil
	}
	return chord.TriadNotes(c.Chord, 4)
}

// WriteGrid renders the grid and writes it to path, creating parent
// directories as needed.
func WriteGrid(g *grid.Grid, path string) error {
	sm, err := Create(g)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return errors.Wrapf(err, "could not create %v", dir)
		}
	}
	return errors.Wrapf(sm.WriteFile(path), "could not write %v", path)
}
