package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/pkordes/label-catalog/internal/domain"
	"github.com/pkordes/label-catalog/internal/repo"
)

// CreateEventInput is the payload for announcing an event. Every entry of
// ArtistSlugs must name an existing artist; order is kept as billing order.
type CreateEventInput struct {
	Title       string    `json:"title" validate:"required,max=200"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	Venue       string    `json:"venue" validate:"required,max=200"`
	City        string    `json:"city" validate:"required,max=100"`
	Location    string    `json:"location" validate:"max=200"`
	Image       string    `json:"image" validate:"max=2048"`
	TicketURL   string    `json:"ticket_url" validate:"omitempty,url,max=2048"`
	ArtistSlugs []string  `json:"artist_slugs" validate:"max=50,dive,required"`
}

// EventService implements business logic for Event operations.
type EventService struct {
	events  repo.EventRepo
	artists repo.ArtistRepo
	slugs   SlugAssigner
	clock   clockwork.Clock
	cfg     settings
}

// NewEventService constructs an EventService. clock decides what "upcoming" means.
func NewEventService(events repo.EventRepo, artists repo.ArtistRepo, slugs SlugAssigner, clock clockwork.Clock, opts ...Option) *EventService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &EventService{events: events, artists: artists, slugs: slugs, clock: clock, cfg: newSettings(opts)}
}

// Create validates in, resolves every listed artist, assigns a slug from the
// title and persists the event. Returns domain.ErrNotFound naming the first
// artist slug that does not resolve.
func (s *EventService) Create(ctx context.Context, in CreateEventInput) (domain.Event, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Venue = strings.TrimSpace(in.Venue)
	in.City = strings.TrimSpace(in.City)
	in.TicketURL = strings.TrimSpace(in.TicketURL)
	if err := validateInput(in); err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Create: %w", err)
	}

	refs, err := s.resolveArtists(ctx, in.ArtistSlugs)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Create: %w", err)
	}

	created, err := createWithSlug(ctx, s.slugs, s.cfg, domain.CategoryEvent, in.Title,
		func(slug string) (domain.Event, error) {
			return s.events.Create(ctx, domain.Event{
				Slug:      slug,
				Title:     in.Title,
				StartsAt:  in.StartsAt.UTC(),
				Venue:     in.Venue,
				City:      in.City,
				Location:  strings.TrimSpace(in.Location),
				Image:     strings.TrimSpace(in.Image),
				TicketURL: in.TicketURL,
				Artists:   refs,
			})
		})
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Create: %w", err)
	}
	return created, nil
}

// resolveArtists maps slugs to artist refs in the given order. Repeated
// slugs collapse to their first occurrence.
func (s *EventService) resolveArtists(ctx context.Context, slugs []string) ([]domain.ArtistRef, error) {
	if len(slugs) == 0 {
		return []domain.ArtistRef{}, nil
	}

	refs, err := s.artists.RefsBySlugs(ctx, slugs)
	if err != nil {
		return nil, err
	}

	found := make(map[string]bool, len(refs))
	for _, r := range refs {
		found[r.Slug] = true
	}
	for _, slug := range slugs {
		if !found[slug] {
			return nil, notFoundf("artist %q", slug)
		}
	}
	return refs, nil
}

// GetBySlug returns a single event. Returns domain.ErrNotFound if missing.
func (s *EventService) GetBySlug(ctx context.Context, slug string) (domain.Event, error) {
	e, err := s.events.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.GetBySlug: %w", err)
	}
	return e, nil
}

// List returns one page of events ordered by start time and the total count.
func (s *EventService) List(ctx context.Context, p domain.PaginationParams) ([]domain.Event, int64, error) {
	events, total, err := s.events.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.EventService.List: %w", err)
	}
	if events == nil {
		events = []domain.Event{}
	}
	return events, total, nil
}

// Upcoming returns up to limit events that have not started yet, soonest first.
func (s *EventService) Upcoming(ctx context.Context, limit int) ([]domain.Event, error) {
	events, err := s.events.ListUpcoming(ctx, s.clock.Now().UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("service.EventService.Upcoming: %w", err)
	}
	if events == nil {
		events = []domain.Event{}
	}
	return events, nil
}
