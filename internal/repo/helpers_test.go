package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/label-catalog/internal/domain"
	"github.com/pkordes/label-catalog/internal/repo"
	"github.com/pkordes/label-catalog/testutil"
)

// testRepos bundles every repo over one transaction so a test can build an
// artist → release → event hierarchy that is rolled back on cleanup.
type testRepos struct {
	artists  repo.ArtistRepo
	releases repo.ReleaseRepo
	events   repo.EventRepo
	slugs    repo.SlugRepo
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()
	tx := testutil.BeginTx(t)
	return testRepos{
		artists:  repo.NewArtistRepo(tx),
		releases: repo.NewReleaseRepo(tx),
		events:   repo.NewEventRepo(tx),
		slugs:    repo.NewSlugRepo(tx),
	}
}

func artistFixture(slug string) domain.Artist {
	return domain.Artist{
		Slug:             slug,
		Name:             "Artist " + slug,
		Image:            "/images/" + slug + ".jpg",
		Genres:           []string{"Techno", "House"},
		MonthlyListeners: 12000,
	}
}

func releaseFixture(slug string, artist domain.Artist) domain.Release {
	return domain.Release{
		Slug:        slug,
		Title:       "Release " + slug,
		Cover:       "/covers/" + slug + ".jpg",
		Artist:      domain.ArtistRef{Slug: artist.Slug, ID: artist.ID},
		ReleaseDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Type:        domain.ReleaseTypeEP,
		Genre:       "Techno",
	}
}

func eventFixture(slug string, startsAt time.Time, artists ...domain.Artist) domain.Event {
	refs := make([]domain.ArtistRef, len(artists))
	for i, a := range artists {
		refs[i] = domain.ArtistRef{ID: a.ID, Slug: a.Slug, Name: a.Name}
	}
	return domain.Event{
		Slug:     slug,
		Title:    "Event " + slug,
		StartsAt: startsAt,
		Venue:    "Warehouse 9",
		City:     "Berlin",
		Location: "Berlin, DE",
		Image:    "/events/" + slug + ".jpg",
		Artists:  refs,
	}
}

func mustCreateArtist(t *testing.T, r repo.ArtistRepo, slug string) domain.Artist {
	t.Helper()
	a, err := r.Create(context.Background(), artistFixture(slug))
	require.NoError(t, err, "create artist fixture %q", slug)
	return a
}
