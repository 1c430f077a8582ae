package analysis

import (
	"encoding/json"
	"math"
	"os"

	"github.com/jsphweid/chordgrid/chord"
	"github.com/jsphweid/chordgrid/model"
	"github.com/pkg/errors"
)

// LoadFile reads and sanitizes an analysis result from disk.
func LoadFile(path string) (model.AnalysisResult, error) {
	var res model.AnalysisResult
	data, err := os.ReadFile(path)
	if err != nil {
		return res, errors.Wrapf(err, "reading analysis file %v", path)
	}
	if err := json.Unmarshal(data, &res); err != nil {
		return res, errors.Wrapf(err, "parsing analysis file %v", path)
	}
	return Sanitize(res), nil
}

// WriteFile persists an analysis result as indented JSON.
func WriteFile(path string, r model.AnalysisResult) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding analysis result")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing analysis file %v", path)
	}
	return nil
}

// Sanitize scrubs an upstream payload so the grid engine never sees
// hostile numbers: non-finite or negative beat timestamps become
// invalid markers (positions are kept, beatIndex addressing must not
// move), labels are trimmed and no-chord spellings canonicalized, and
// non-finite tempo/count fields collapse to "absent".
func Sanitize(r model.AnalysisResult) model.AnalysisResult {
	beats := make([]model.BeatStamp, len(r.Beats))
	for i, b := range r.Beats {
		t := b.Time
		if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			t = model.InvalidTime
		}
		beats[i] = model.BeatStamp{Time: t}
	}
	r.Beats = beats

	chords := make([]model.ChordEvent, len(r.Chords))
	for i, ev := range r.Chords {
		ev.Chord = chord.Normalize(ev.Chord)
		if math.IsNaN(ev.Time) || math.IsInf(ev.Time, 0) || ev.Time < 0 {
			ev.Time = model.InvalidTime
		}
		if ev.BeatIndex < 0 {
			ev.BeatIndex = -1
		}
		chords[i] = ev
	}
	r.Chords = chords

	if math.IsNaN(r.BPM) || math.IsInf(r.BPM, 0) || r.BPM < 0 {
		r.BPM = 0
	}
	if r.TimeSignature < 0 {
		r.TimeSignature = 0
	}
	if r.PaddingCount < 0 {
		r.PaddingCount = -1
	}
	if r.ShiftCount < 0 {
		r.ShiftCount = -1
	}
	return r
}
