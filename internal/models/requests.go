package models

// SearchRequest carries the user's natural-language question.
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// OfferRequest is the WebRTC offer payload. The endpoint is a stub; the
// offer is accepted but not forwarded anywhere.
type OfferRequest struct {
	Offer map[string]any `json:"offer" binding:"required"`
}

// IceCandidateRequest is the WebRTC ICE candidate payload for the stub
// signaling endpoint.
type IceCandidateRequest struct {
	Candidate map[string]any `json:"candidate" binding:"required"`
}
