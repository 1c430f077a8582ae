package correct

import (
	"github.com/jsphweid/chordgrid/chord"
	"github.com/jsphweid/chordgrid/model"
)

// Resolve maps a grid cell's original label to its displayed label.
// The correction sequence indexes real chord events only, so the
// visual index is first translated back by shiftCount+paddingCount.
// Resolution chain, first match wins:
//  1. direct index match against the original sequence
//  2. first occurrence of the label anywhere in the original sequence
//  3. per-root substitution table
//  4. the label itself
// Total and deterministic: always returns a string, never panics, and
// inconsistent correction data just falls through to the next step.
func Resolve(seq *model.SequenceCorrections, roots map[string]string, original string, visualIndex, shiftCount, paddingCount int) string {
	if chord.IsNoChord(original) {
		return original
	}
	if seq != nil {
		ci := visualIndex - (shiftCount + paddingCount)
		if ci >= 0 && ci < len(seq.Original) && ci < len(seq.Corrected) && seq.Original[ci] == original {
			return seq.Corrected[ci]
		}
		for j, v := range seq.Original {
			if v == original && j < len(seq.Corrected) && seq.Corrected[j] != original {
				return seq.Corrected[j]
			}
		}
	}
	if len(roots) > 0 {
		root, _ := chord.SplitLabel(original)
		if sub, ok := roots[root]; ok && root != "" {
			return chord.WithRoot(original, sub)
		}
	}
	return original
}

// Apply returns a copy of the cells with every label resolved through
// the correction set. When the set carries neither a sequence nor an
// explicit root table but names a key, a root table is derived from
// the key's accidental preference.
func Apply(cells []model.Cell, cs model.CorrectionSet, shiftCount, paddingCount int) []model.Cell {
	roots := cs.Roots
	if len(roots) == 0 && cs.Sequence == nil && cs.PrimaryKey != "" {
		roots = SubstitutionsForKey(cs.PrimaryKey)
	}
	res := append([]model.Cell(nil), cells...)
	for i := range res {
		if res[i].Type != model.CellModel {
			continue
		}
		res[i].Chord = Resolve(cs.Sequence, roots, res[i].Chord, res[i].VisualIndex, shiftCount, paddingCount)
	}
	return res
}
