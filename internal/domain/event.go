package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a live show featuring one or more artists.
// TicketURL is empty when tickets are not on sale.
type Event struct {
	ID        uuid.UUID
	Slug      string
	Title     string
	StartsAt  time.Time
	Venue     string
	City      string
	Location  string
	Image     string
	TicketURL string
	Artists   []ArtistRef
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Home is the landing page feed.
type Home struct {
	FeaturedReleases []Release
	FeaturedArtists  []Artist
	UpcomingEvents   []Event
}
