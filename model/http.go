package model

type CreateSessionRequest struct {
	RecordingID string         `json:"recordingId"`
	Analysis    AnalysisResult `json:"analysis"`
}

type CreateSessionResponse struct {
	SessionID    string         `json:"sessionId"`
	ShiftCount   int            `json:"shiftCount"`
	PaddingCount int            `json:"paddingCount"`
	CellCount    int            `json:"cellCount"`
	Metadata     *TrackMetadata `json:"metadata,omitempty"`
}

type GridResponse struct {
	Rows []Row `json:"rows"`
}

type SessionsResponse struct {
	SessionIDs []string `json:"sessionIds"`
}

type LocateResponse struct {
	Index int `json:"index"`
}

type CellResponse struct {
	Index     int     `json:"index"`
	Chord     string  `json:"chord"`
	Timestamp float64 `json:"timestamp"`
	Clickable bool    `json:"clickable"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
