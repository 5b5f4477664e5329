package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReleaseType is the format of a release.
type ReleaseType string

const (
	ReleaseTypeEP     ReleaseType = "EP"
	ReleaseTypeAlbum  ReleaseType = "Album"
	ReleaseTypeSingle ReleaseType = "Single"
)

// Release is a record put out by one artist.
// ReleaseDate carries only a calendar date; the time part is always midnight UTC.
type Release struct {
	ID          uuid.UUID
	Slug        string
	Title       string
	Cover       string
	Artist      ArtistRef
	ReleaseDate time.Time
	Type        ReleaseType
	Genre       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
