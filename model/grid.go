package model

// InvalidTime marks a cell with no usable timestamp.
const InvalidTime float64 = -1

type CellType string

const (
	CellShift   CellType = "shift"
	CellPadding CellType = "padding"
	CellModel   CellType = "model"
)

// Cell is one slot of the visual grid. VisualIndex is dense and
// 0-based over the whole grid. Shift cells carry no label and no
// timestamp; padding cells carry synthetic timestamps before the
// first real beat; model cells are the actual chord events.
type Cell struct {
	VisualIndex int      `json:"visualIndex"`
	Chord       string   `json:"chord"`
	Timestamp   float64  `json:"timestamp"`
	Type        CellType `json:"type"`
	BeatIndex   int      `json:"beatIndex"`
	Clickable   bool     `json:"clickable"`
}

type Measure struct {
	Number int    `json:"number"`
	Cells  []Cell `json:"cells"`
}

type Row struct {
	Measures []Measure `json:"measures"`
}
