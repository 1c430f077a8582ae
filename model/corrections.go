package model

import "encoding/json"

// SequenceCorrections is a parallel original/corrected pair indexed
// over real chord events only (the correction service knows nothing
// about shift or padding cells).
type SequenceCorrections struct {
	Original    []string        `json:"originalSequence"`
	Corrected   []string        `json:"correctedSequence"`
	KeyAnalysis json.RawMessage `json:"keyAnalysis,omitempty"`
}

// CorrectionSet is the correction-service payload. Either Sequence or
// Roots (a flat root-to-root spelling table) may be absent.
type CorrectionSet struct {
	PrimaryKey string               `json:"primaryKey"`
	Modulation string               `json:"modulation"`
	Sequence   *SequenceCorrections `json:"sequenceCorrections,omitempty"`
	Roots      map[string]string    `json:"corrections,omitempty"`
}
