package model

type TrackMetadata struct {
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	Release string `json:"release"`
	Year    uint   `json:"year"`
}
