package model

import "time"

// Listing is one posted item/profile on a category board.
type Listing struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle"`
	Tags       []string  `json:"tags"`
	Detail     string    `json:"detail,omitempty"`
	ImageURLs  []string  `json:"image_urls,omitempty"`
	OwnerName  string    `json:"owner_name"`
	OwnerEmail string    `json:"owner_email,omitempty"` // lower-cased, may be empty
	OwnerPhone string    `json:"owner_phone,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Per-listing caps enforced at insert time.
const (
	MaxListingTags   = 4
	MaxListingImages = 5
)

// Clone returns an independent copy; slices are not shared with the original.
func (l *Listing) Clone() Listing {
	out := *l
	out.Tags = append([]string(nil), l.Tags...)
	out.ImageURLs = append([]string(nil), l.ImageURLs...)
	return out
}
