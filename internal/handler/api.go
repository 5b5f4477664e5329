package handler

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Wire types for the JSON payloads described in spec/openapi.yaml.
// Field names and optionality follow the schemas there exactly.

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// Pagination describes the page a list response holds.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// ArtistRef is the short artist form embedded in releases and events.
type ArtistRef struct {
	Id   openapi_types.UUID `json:"id"`
	Slug string             `json:"slug"`
	Name string             `json:"name"`
}

// Artist is the full artist representation.
type Artist struct {
	Id               openapi_types.UUID `json:"id"`
	Slug             string             `json:"slug"`
	Name             string             `json:"name"`
	Image            string             `json:"image"`
	Genres           []string           `json:"genres"`
	MonthlyListeners int64              `json:"monthly_listeners"`
	Featured         bool               `json:"featured"`
	TotalReleases    int                `json:"total_releases"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// CreateArtistRequest is the body of POST /artists.
type CreateArtistRequest struct {
	Name             string   `json:"name"`
	Image            *string  `json:"image,omitempty"`
	Genres           []string `json:"genres,omitempty"`
	MonthlyListeners *int64   `json:"monthly_listeners,omitempty"`
	Featured         *bool    `json:"featured,omitempty"`
}

// ArtistList is the body of GET /artists.
type ArtistList struct {
	Data       []Artist   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Release is the full release representation.
type Release struct {
	Id          openapi_types.UUID `json:"id"`
	Slug        string             `json:"slug"`
	Title       string             `json:"title"`
	Cover       string             `json:"cover"`
	Artist      ArtistRef          `json:"artist"`
	ReleaseDate openapi_types.Date `json:"release_date"`
	Type        string             `json:"type"`
	Genre       string             `json:"genre"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// CreateReleaseRequest is the body of POST /releases.
type CreateReleaseRequest struct {
	Title       string             `json:"title"`
	ArtistSlug  string             `json:"artist_slug"`
	Cover       *string            `json:"cover,omitempty"`
	ReleaseDate openapi_types.Date `json:"release_date"`
	Type        string             `json:"type"`
	Genre       *string            `json:"genre,omitempty"`
}

// ReleaseList is the body of GET /releases.
type ReleaseList struct {
	Data       []Release  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Event is the full event representation.
type Event struct {
	Id        openapi_types.UUID `json:"id"`
	Slug      string             `json:"slug"`
	Title     string             `json:"title"`
	StartsAt  time.Time          `json:"starts_at"`
	Venue     string             `json:"venue"`
	City      string             `json:"city"`
	Location  string             `json:"location"`
	Image     string             `json:"image"`
	TicketUrl *string            `json:"ticket_url,omitempty"`
	Artists   []ArtistRef        `json:"artists"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// CreateEventRequest is the body of POST /events.
type CreateEventRequest struct {
	Title       string    `json:"title"`
	StartsAt    time.Time `json:"starts_at"`
	Venue       string    `json:"venue"`
	City        string    `json:"city"`
	Location    *string   `json:"location,omitempty"`
	Image       *string   `json:"image,omitempty"`
	TicketUrl   *string   `json:"ticket_url,omitempty"`
	ArtistSlugs []string  `json:"artist_slugs,omitempty"`
}

// EventList is the body of GET /events.
type EventList struct {
	Data       []Event    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Home is the body of GET /home.
type Home struct {
	FeaturedReleases []Release `json:"featured_releases"`
	FeaturedArtists  []Artist  `json:"featured_artists"`
	UpcomingEvents   []Event   `json:"upcoming_events"`
}
