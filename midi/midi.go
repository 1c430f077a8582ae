package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/jsphweid/chordgrid/chord"
	"github.com/jsphweid/chordgrid/constants"
	"github.com/jsphweid/chordgrid/correct"
	"github.com/jsphweid/chordgrid/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

type noteEvent struct {
	ticks int64
	off   bool
	note  uint8
}

// ExtractAnalysis derives an analysis result from a standard MIDI
// file: beats on the quarter-note grid via the tempo map, one chord
// label per beat from the notes sounding at it, bpm from the first
// tempo event and meter from the first time signature. It stands in
// for the external analysis services during local work.
func ExtractAnalysis(s *smf.SMF) (model.AnalysisResult, error) {
	var res model.AnalysisResult

	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return res, errors.New("unsupported time format, expected MetricTicks")
	}

	bpm := float64(constants.DefaultBPM)
	if tcs := s.TempoChanges(); len(tcs) > 0 {
		bpm = tcs[0].BPM
	}

	timeSig := constants.DefaultTimeSignature
	metered := false
	var events []noteEvent
	var lastTick int64
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			var num, denom, cpt, dsqpq uint8
			switch {
			case event.Message.GetMetaTimeSig(&num, &denom, &cpt, &dsqpq):
				if !metered {
					timeSig = int(num)
					metered = true
				}
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, noteEvent{absTicks, false, key})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, noteEvent{absTicks, true, key})
			}
			if absTicks > lastTick {
				lastTick = absTicks
			}
		}
	}
	if len(events) == 0 {
		return res, errors.New("no note events")
	}

	// note offs first on equal ticks so re-struck notes don't vanish
	sort.Slice(events, func(i, j int) bool {
		if events[i].ticks != events[j].ticks {
			return events[i].ticks < events[j].ticks
		}
		return events[i].off && !events[j].off
	})

	tpq := int64(ticks)
	pressed := make(map[uint8]bool)
	ei := 0
	for t, i := int64(0), 0; t <= lastTick; t, i = t+tpq, i+1 {
		for ei < len(events) && events[ei].ticks <= t {
			if events[ei].off {
				delete(pressed, events[ei].note)
			} else {
				pressed[events[ei].note] = true
			}
			ei++
		}
		sec := float64(s.TimeAt(t)) / 1e6
		notes := make([]uint8, 0, len(pressed))
		for n := range pressed {
			notes = append(notes, n)
		}
		res.Beats = append(res.Beats, model.BeatStamp{Time: sec})
		res.Chords = append(res.Chords, model.ChordEvent{
			Chord:     chord.LabelNotes(notes, false),
			BeatIndex: i,
			Time:      sec,
		})
	}

	res.BPM = bpm
	res.TimeSignature = timeSig
	res.PaddingCount = -1
	res.ShiftCount = -1

	labels := make([]string, len(res.Chords))
	for i, ev := range res.Chords {
		labels[i] = ev.Chord
	}
	res.Key = correct.GuessKey(labels)
	return res, nil
}
