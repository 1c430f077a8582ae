package chord

import "strings"

// NoChord is the canonical no-chord sentinel. The analysis services
// emit several spellings; everything funnels through Normalize.
const NoChord = "N.C."

var noChordSpellings = map[string]bool{
	"":     true,
	"n":    true,
	"nc":   true,
	"n.c":  true,
	"n.c.": true,
	"none": true,
	"x":    true,
}

func IsNoChord(label string) bool {
	return noChordSpellings[strings.ToLower(strings.TrimSpace(label))]
}

// Normalize trims a raw label and canonicalizes no-chord spellings.
func Normalize(label string) string {
	label = strings.TrimSpace(label)
	if IsNoChord(label) {
		return NoChord
	}
	return label
}

// SplitLabel separates the root token from the rest of the label.
// The root is the leading note letter plus an optional '#' or 'b'
// ("C#m7" -> "C#", "m7"). Labels with no recognizable root come back
// with root == "".
func SplitLabel(label string) (string, string) {
	if len(label) == 0 {
		return "", label
	}
	c := label[0]
	if c < 'A' || c > 'G' {
		return "", label
	}
	if len(label) > 1 && (label[1] == '#' || label[1] == 'b') {
		return label[:2], label[2:]
	}
	return label[:1], label[1:]
}

// WithRoot rebuilds a label around a different root spelling.
func WithRoot(label, root string) string {
	_, quality := SplitLabel(label)
	return root + quality
}

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var pitchClasses = map[string]int{
	"C": 0, "B#": 0,
	"C#": 1, "Db": 1,
	"D": 2,
	"D#": 3, "Eb": 3,
	"E": 4, "Fb": 4,
	"F": 5, "E#": 5,
	"F#": 6, "Gb": 6,
	"G": 7,
	"G#": 8, "Ab": 8,
	"A": 9,
	"A#": 10, "Bb": 10,
	"B": 11, "Cb": 11,
}

// PitchClass maps a root token to 0-11.
func PitchClass(root string) (int, bool) {
	pc, ok := pitchClasses[root]
	return pc, ok
}

// NameClass spells a pitch class, with flats or sharps.
func NameClass(pc int, flats bool) string {
	pc = ((pc % 12) + 12) % 12
	if flats {
		return flatNames[pc]
	}
	return sharpNames[pc]
}

// MidiKey turns a root token into a MIDI key number (C4 == 60).
func MidiKey(root string, octave int) (uint8, bool) {
	pc, ok := pitchClasses[root]
	if !ok {
		return 0, false
	}
	n := (octave+1)*12 + pc
	if n < 0 || n > 127 {
		return 0, false
	}
	return uint8(n), true
}

// TriadNotes renders a label as a root-position triad around the
// given octave, the inverse of LabelNotes. Labels with no parseable
// root come back nil.
func TriadNotes(label string, octave int) []uint8 {
	root, quality := SplitLabel(label)
	if root == "" {
		return nil
	}
	key, ok := MidiKey(root, octave)
	if !ok {
		return nil
	}
	third := uint8(4)
	q := strings.ToLower(quality)
	if strings.HasPrefix(q, "m") && !strings.HasPrefix(q, "maj") {
		third = 3
	}
	if key > 127-7 {
		return []uint8{key}
	}
	return []uint8{key, key + third, key + 7}
}

// LabelNotes names the chord formed by a set of sounding MIDI notes.
// The lowest note is taken as the root; a minor third above it adds
// the "m" suffix. Good enough for per-beat labels out of the local
// analyzer.
func LabelNotes(notes []uint8, flats bool) string {
	if len(notes) == 0 {
		return NoChord
	}
	lowest := notes[0]
	for _, n := range notes {
		if n < lowest {
			lowest = n
		}
	}
	root := int(lowest) % 12
	minor := false
	for _, n := range notes {
		if (int(n)-int(lowest))%12 == 3 {
			minor = true
			break
		}
	}
	name := NameClass(root, flats)
	if minor {
		name += "m"
	}
	return name
}
