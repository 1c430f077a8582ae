package model

import "encoding/json"

// BeatStamp is one detected beat. The analysis services emit beat
// arrays either as bare numbers or as {"time": x} objects, so it
// decodes both.
type BeatStamp struct {
	Time float64
}

func (b *BeatStamp) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		b.Time = f
		return nil
	}
	var obj struct {
		Time float64 `json:"time"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	b.Time = obj.Time
	return nil
}

func (b BeatStamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Time)
}

// ChordEvent is one chord emission. BeatIndex references the beat
// array; -1 means the payload carried no index and Time is all we
// have. Time of -1 means unknown.
type ChordEvent struct {
	Chord     string  `json:"chord"`
	BeatIndex int     `json:"beatIndex"`
	Time      float64 `json:"time"`
}

func (e *ChordEvent) UnmarshalJSON(data []byte) error {
	type alias ChordEvent
	a := alias{BeatIndex: -1, Time: -1}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*e = ChordEvent(a)
	return nil
}

// AnalysisResult is the payload produced by the upstream beat/chord
// services (or by the local midi analyzer). PaddingCount and
// ShiftCount are precomputed overrides; -1 means absent.
type AnalysisResult struct {
	Chords        []ChordEvent `json:"chords"`
	Beats         []BeatStamp  `json:"beats"`
	BPM           float64      `json:"bpm"`
	TimeSignature int          `json:"timeSignature"`
	Key           string       `json:"key,omitempty"`
	PaddingCount  int          `json:"paddingCount"`
	ShiftCount    int          `json:"shiftCount"`
}

func (r *AnalysisResult) UnmarshalJSON(data []byte) error {
	type alias AnalysisResult
	a := alias{PaddingCount: -1, ShiftCount: -1}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = AnalysisResult(a)
	return nil
}

func (r AnalysisResult) BeatTimes() []float64 {
	res := make([]float64, len(r.Beats))
	for i, b := range r.Beats {
		res[i] = b.Time
	}
	return res
}
