package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkordes/label-catalog/internal/domain"
	"github.com/pkordes/label-catalog/internal/repo"
)

// CreateReleaseInput is the payload for adding a release. The artist is
// referenced by slug and must already exist.
type CreateReleaseInput struct {
	Title       string             `json:"title" validate:"required,max=200"`
	ArtistSlug  string             `json:"artist_slug" validate:"required"`
	Cover       string             `json:"cover" validate:"max=2048"`
	ReleaseDate time.Time          `json:"release_date" validate:"required"`
	Type        domain.ReleaseType `json:"type" validate:"required,oneof=EP Album Single"`
	Genre       string             `json:"genre" validate:"max=100"`
}

// ReleaseService implements business logic for Release operations.
type ReleaseService struct {
	releases repo.ReleaseRepo
	artists  repo.ArtistRepo
	slugs    SlugAssigner
	cfg      settings
}

// NewReleaseService constructs a ReleaseService.
func NewReleaseService(releases repo.ReleaseRepo, artists repo.ArtistRepo, slugs SlugAssigner, opts ...Option) *ReleaseService {
	return &ReleaseService{releases: releases, artists: artists, slugs: slugs, cfg: newSettings(opts)}
}

// Create validates in, resolves the artist, assigns a slug from the title
// and persists the release. Returns domain.ErrNotFound if the artist is unknown.
func (s *ReleaseService) Create(ctx context.Context, in CreateReleaseInput) (domain.Release, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.ArtistSlug = strings.TrimSpace(in.ArtistSlug)
	if err := validateInput(in); err != nil {
		return domain.Release{}, fmt.Errorf("service.ReleaseService.Create: %w", err)
	}

	artist, err := s.artists.GetBySlug(ctx, in.ArtistSlug)
	if err != nil {
		return domain.Release{}, fmt.Errorf("service.ReleaseService.Create: artist %q: %w", in.ArtistSlug, err)
	}

	y, m, d := in.ReleaseDate.Date()
	releaseDate := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	created, err := createWithSlug(ctx, s.slugs, s.cfg, domain.CategoryRelease, in.Title,
		func(slug string) (domain.Release, error) {
			return s.releases.Create(ctx, domain.Release{
				Slug:        slug,
				Title:       in.Title,
				Cover:       strings.TrimSpace(in.Cover),
				Artist:      domain.ArtistRef{ID: artist.ID, Slug: artist.Slug, Name: artist.Name},
				ReleaseDate: releaseDate,
				Type:        in.Type,
				Genre:       strings.TrimSpace(in.Genre),
			})
		})
	if err != nil {
		return domain.Release{}, fmt.Errorf("service.ReleaseService.Create: %w", err)
	}
	return created, nil
}

// GetBySlug returns a single release. Returns domain.ErrNotFound if missing.
func (s *ReleaseService) GetBySlug(ctx context.Context, slug string) (domain.Release, error) {
	r, err := s.releases.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Release{}, fmt.Errorf("service.ReleaseService.GetBySlug: %w", err)
	}
	return r, nil
}

// List returns one page of releases, newest first, and the total count.
func (s *ReleaseService) List(ctx context.Context, p domain.PaginationParams) ([]domain.Release, int64, error) {
	releases, total, err := s.releases.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ReleaseService.List: %w", err)
	}
	if releases == nil {
		releases = []domain.Release{}
	}
	return releases, total, nil
}

// Latest returns the limit most recent releases.
func (s *ReleaseService) Latest(ctx context.Context, limit int) ([]domain.Release, error) {
	releases, err := s.releases.ListLatest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service.ReleaseService.Latest: %w", err)
	}
	if releases == nil {
		releases = []domain.Release{}
	}
	return releases, nil
}
