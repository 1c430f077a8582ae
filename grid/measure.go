package grid

import (
	"github.com/jsphweid/chordgrid/constants"
	"github.com/jsphweid/chordgrid/model"
	"github.com/jsphweid/chordgrid/util"
)

// GroupMeasures chops the flat cell sequence into fixed measures of
// timeSignature cells. A short trailing measure is right-padded with
// empty, unclickable model cells whose visual indexes continue the
// grid's numbering. Pure layout; no timing semantics change here.
func GroupMeasures(cells []model.Cell, timeSignature int) []model.Measure {
	if timeSignature < 1 {
		timeSignature = constants.DefaultTimeSignature
	}
	if timeSignature > constants.MaxTimeSignature {
		timeSignature = constants.MaxTimeSignature
	}
	next := 0
	if len(cells) > 0 {
		next = cells[len(cells)-1].VisualIndex + 1
	}
	var res []model.Measure
	for start := 0; start < len(cells); start += timeSignature {
		end := util.Min(start+timeSignature, len(cells))
		m := model.Measure{
			Number: len(res) + 1,
			Cells:  append([]model.Cell(nil), cells[start:end]...),
		}
		for len(m.Cells) < timeSignature {
			m.Cells = append(m.Cells, model.Cell{
				VisualIndex: next,
				Timestamp:   model.InvalidTime,
				Type:        model.CellModel,
				BeatIndex:   -1,
			})
			next++
		}
		res = append(res, m)
	}
	return res
}

// GroupRows batches measures for layout, measuresPerRow at a time.
// The count is a presentation choice; anything below 1 is coerced.
// Always returns a non-nil slice so an empty grid serializes as [].
func GroupRows(measures []model.Measure, measuresPerRow int) []model.Row {
	if measuresPerRow < 1 {
		measuresPerRow = 1
	}
	res := make([]model.Row, 0)
	for start := 0; start < len(measures); start += measuresPerRow {
		end := util.Min(start+measuresPerRow, len(measures))
		res = append(res, model.Row{Measures: measures[start:end]})
	}
	return res
}
