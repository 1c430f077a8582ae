package correct

import (
	"strings"

	"github.com/jsphweid/chordgrid/chord"
	"gopkg.in/music-theory.v0/key"
	"gopkg.in/music-theory.v0/note"
)

var sharpToFlat = map[string]string{
	"C#": "Db",
	"D#": "Eb",
	"F#": "Gb",
	"G#": "Ab",
	"A#": "Bb",
}

var flatToSharp = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
}

// natural tonics on each side of the circle of fifths
var flatSideMajor = map[note.Class]bool{note.F: true}
var flatSideMinor = map[note.Class]bool{note.D: true, note.G: true, note.C: true, note.F: true}
var sharpSideMajor = map[note.Class]bool{note.G: true, note.D: true, note.A: true, note.E: true, note.B: true}
var sharpSideMinor = map[note.Class]bool{note.E: true, note.B: true}

// SubstitutionsForKey derives a per-root table from a key name like
// "Db major" or "F# minor": flat keys respell sharps as flats and
// sharp keys the reverse. key.Of supplies the tonic and mode;
// unrecognized keys (and the accidental-free C major / A minor) yield
// nil, meaning no substitution.
func SubstitutionsForKey(name string) map[string]string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil
	}
	k := key.Of(trimmed)
	if k.Root == note.Nil {
		return nil
	}
	// accidental tonics keep the spelling they were named with
	switch note.AdjSymbolBegin(trimmed[1:]) {
	case note.Flat:
		return sharpToFlat
	case note.Sharp:
		return flatToSharp
	}
	if k.Mode == key.Minor {
		if flatSideMinor[k.Root] {
			return sharpToFlat
		}
		if sharpSideMinor[k.Root] {
			return flatToSharp
		}
		return nil
	}
	if flatSideMajor[k.Root] {
		return sharpToFlat
	}
	if sharpSideMajor[k.Root] {
		return flatToSharp
	}
	return nil
}

// GuessKey picks a tonic from root frequency over the labels, merging
// enharmonic spellings into one pitch class. Crude, but good enough
// to seed enharmonic preference when no key came with the analysis.
func GuessKey(labels []string) string {
	counts := make(map[int]int)
	var order []int
	sharps, flats := 0, 0
	for _, l := range labels {
		root, _ := chord.SplitLabel(chord.Normalize(l))
		pc, ok := chord.PitchClass(root)
		if !ok {
			continue
		}
		if strings.HasSuffix(root, "#") {
			sharps++
		} else if strings.HasSuffix(root, "b") {
			flats++
		}
		if _, seen := counts[pc]; !seen {
			order = append(order, pc)
		}
		counts[pc]++
	}
	if len(order) == 0 {
		return ""
	}
	best := order[0]
	for _, pc := range order[1:] {
		if counts[pc] > counts[best] {
			best = pc
		}
	}
	return chord.NameClass(best, flats > sharps) + " major"
}
