package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pkordes/label-catalog/internal/domain"
)

// Home feed sizes, matching the landing page sections.
const (
	homeReleases = 6
	homeArtists  = 4
	homeEvents   = 3
)

// HomeService assembles the landing page feed from the other services.
type HomeService struct {
	artists  *ArtistService
	releases *ReleaseService
	events   *EventService
}

// NewHomeService constructs a HomeService over the catalog services.
func NewHomeService(artists *ArtistService, releases *ReleaseService, events *EventService) *HomeService {
	return &HomeService{artists: artists, releases: releases, events: events}
}

// Home loads the latest releases, featured artists and upcoming events
// concurrently. The first failure cancels the remaining loads.
func (s *HomeService) Home(ctx context.Context) (domain.Home, error) {
	var home domain.Home
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		home.FeaturedReleases, err = s.releases.Latest(ctx, homeReleases)
		return err
	})
	g.Go(func() error {
		var err error
		home.FeaturedArtists, err = s.artists.Featured(ctx, homeArtists)
		return err
	})
	g.Go(func() error {
		var err error
		home.UpcomingEvents, err = s.events.Upcoming(ctx, homeEvents)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.Home{}, fmt.Errorf("service.HomeService.Home: %w", err)
	}
	return home, nil
}
