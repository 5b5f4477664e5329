package domain

import (
	"time"

	"github.com/google/uuid"
)

// Artist is a performer on the label's roster.
// Slug is assigned once at creation and never rewritten.
// TotalReleases is derived from the releases table on read.
type Artist struct {
	ID               uuid.UUID
	Slug             string
	Name             string
	Image            string
	Genres           []string
	MonthlyListeners int64
	Featured         bool
	TotalReleases    int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ArtistRef is the short form of an artist embedded in releases and events.
type ArtistRef struct {
	ID   uuid.UUID
	Slug string
	Name string
}
