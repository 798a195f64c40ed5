package models

import "encoding/json"

// AnalyzeRequest is the inbound payload for label analysis.
// Coordinates are independent optionals and are echoed back untouched.
type AnalyzeRequest struct {
	PhotoBase64 string   `json:"photoBase64"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// AnalyzeResponse is the outbound payload. LabelData is embedded so its
// fields sit flat next to photo_url and status, matching the client
// contract. RawExtraction carries the complete upstream model payload as
// an opaque blob for audit.
type AnalyzeResponse struct {
	PhotoURL string `json:"photo_url"`
	Status   Status `json:"status"`
	LabelData
	RawExtraction json.RawMessage `json:"raw_extraction"`
	Latitude      *float64        `json:"latitude"`
	Longitude     *float64        `json:"longitude"`
}

// ErrorResponse is the body for every non-200 outcome.
type ErrorResponse struct {
	Error string `json:"error"`
}
