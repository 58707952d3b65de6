package models

// Answer is the final payload produced for a search request. Audio is
// base64-encoded for transport and present only when synthesis succeeded;
// Error is set when only the synthesis step failed.
type Answer struct {
	Text  string `json:"text"`
	Audio string `json:"audio,omitempty"`
	Error string `json:"error,omitempty"`
}
