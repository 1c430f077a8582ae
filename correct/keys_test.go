package correct

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatKeysRespellSharps(t *testing.T) {
	assert := assert.New(t)
	for _, name := range []string{"Db major", "F major", "Bb major", "G minor"} {
		subs := SubstitutionsForKey(name)
		assert.Equal("Db", subs["C#"], name)
		assert.Equal("Bb", subs["A#"], name)
	}
}

func TestSharpKeysRespellFlats(t *testing.T) {
	assert := assert.New(t)
	for _, name := range []string{"E major", "F# major", "B minor", "C# minor"} {
		subs := SubstitutionsForKey(name)
		assert.Equal("C#", subs["Db"], name)
		assert.Equal("F#", subs["Gb"], name)
	}
}

func TestNeutralAndUnknownKeys(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(SubstitutionsForKey("C major"))
	assert.Nil(SubstitutionsForKey("A minor"))
	assert.Nil(SubstitutionsForKey(""))
	assert.Nil(SubstitutionsForKey("not a key"))
}

func TestModeFlipsTheTableSide(t *testing.T) {
	assert := assert.New(t)
	// D major sits on the sharp side, D minor on the flat side
	assert.Equal("F#", SubstitutionsForKey("D major")["Gb"])
	assert.Equal("Db", SubstitutionsForKey("D minor")["C#"])
	assert.Equal("F#", SubstitutionsForKey("E minor")["Gb"])
	assert.Equal("Db", SubstitutionsForKey("F major")["C#"])
}

func TestCompactMinorNames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C#", SubstitutionsForKey("Em")["Db"])
	assert.Equal("Db", SubstitutionsForKey("Gm")["C#"])
}

func TestUnicodeAccidentalKeys(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Eb", SubstitutionsForKey("B♭ major")["D#"])
	assert.Equal("G#", SubstitutionsForKey("F♯ minor")["Ab"])
}

func TestGuessKeyPicksDominantRoot(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("G major", GuessKey([]string{"G", "C", "G", "D7", "G"}))
	assert.Equal("", GuessKey(nil))
	assert.Equal("", GuessKey([]string{"N.C.", ""}))
}

func TestGuessKeyTieGoesToFirstSeen(t *testing.T) {
	assert.Equal(t, "C major", GuessKey([]string{"C", "G", "C", "G"}))
}

func TestGuessKeyMergesEnharmonicSpellings(t *testing.T) {
	assert := assert.New(t)
	// C# and Db are one pitch class, so together they outvote G
	assert.Equal("C# major", GuessKey([]string{"C#", "Db", "G", "G"}))
	// flat spellings in the majority name the tonic flat
	assert.Equal("Db major", GuessKey([]string{"Db", "Db", "C#", "F"}))
}
