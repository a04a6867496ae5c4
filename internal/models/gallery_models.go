package models

import "time"

// GalleryStatus defines the publication state of a gallery image.
type GalleryStatus string

const (
	GalleryStatusDraft   GalleryStatus = "Draft"
	GalleryStatusPublish GalleryStatus = "Publish"
)

// IsValidGalleryStatus checks if the provided status string is a valid GalleryStatus.
func IsValidGalleryStatus(status string) bool {
	switch GalleryStatus(status) {
	case GalleryStatusDraft, GalleryStatusPublish:
		return true
	default:
		return false
	}
}

// GalleryImage represents an image shown on the public gallery page.
// Only published images are visible to the public site.
type GalleryImage struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description"`
	Status      GalleryStatus `json:"status" binding:"required,oneof=Draft Publish"`
	AltText     string        `json:"alt_text"`
	Tags        string        `json:"tags"`
	Order       int           `json:"order"`
	ImageURL    string        `json:"image_url"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`
}
