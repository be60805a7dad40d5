package model

// Recommendation is an ephemeral projection of a listing (or of a static
// default candidate) plus a computed score. Produced fresh on every query,
// never stored. Contact fields are always masked here; full disclosure only
// happens through the action lifecycle.
type Recommendation struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle"`
	Tags       []string `json:"tags"`
	Detail     string   `json:"detail,omitempty"`
	ImageURLs  []string `json:"image_urls,omitempty"`
	OwnerName  string   `json:"owner_name,omitempty"`
	OwnerEmail string   `json:"owner_email,omitempty"` // masked
	OwnerPhone string   `json:"owner_phone,omitempty"` // masked
	Score      float64  `json:"score"`
	Live       bool     `json:"live"`
}
