// Package domain contains the core data types for the label catalog.
// This package has zero external dependencies beyond uuid and is imported
// by every other internal package (slug, repo, service, handler).
package domain

// Category names the persisted collection a slug must be unique within.
// Slugs are unique per category, not globally: an artist and an event may
// both be called "techno-night".
type Category string

const (
	CategoryArtist  Category = "artist"
	CategoryRelease Category = "release"
	CategoryEvent   Category = "event"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryArtist, CategoryRelease, CategoryEvent:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
