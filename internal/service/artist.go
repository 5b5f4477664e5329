package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/label-catalog/internal/domain"
	"github.com/pkordes/label-catalog/internal/repo"
)

// CreateArtistInput is the payload for adding an artist to the roster.
type CreateArtistInput struct {
	Name             string   `json:"name" validate:"required,max=200"`
	Image            string   `json:"image" validate:"max=2048"`
	Genres           []string `json:"genres" validate:"max=20,dive,required,max=100"`
	MonthlyListeners int64    `json:"monthly_listeners" validate:"gte=0"`
	Featured         bool     `json:"featured"`
}

// ArtistService implements business logic for Artist operations.
type ArtistService struct {
	artists repo.ArtistRepo
	slugs   SlugAssigner
	cfg     settings
}

// NewArtistService constructs an ArtistService.
func NewArtistService(artists repo.ArtistRepo, slugs SlugAssigner, opts ...Option) *ArtistService {
	return &ArtistService{artists: artists, slugs: slugs, cfg: newSettings(opts)}
}

// Create validates in, assigns a slug from the artist name and persists the artist.
func (s *ArtistService) Create(ctx context.Context, in CreateArtistInput) (domain.Artist, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Image = strings.TrimSpace(in.Image)
	if err := validateInput(in); err != nil {
		return domain.Artist{}, fmt.Errorf("service.ArtistService.Create: %w", err)
	}

	genres := make([]string, len(in.Genres))
	for i, g := range in.Genres {
		genres[i] = strings.TrimSpace(g)
	}

	created, err := createWithSlug(ctx, s.slugs, s.cfg, domain.CategoryArtist, in.Name,
		func(slug string) (domain.Artist, error) {
			return s.artists.Create(ctx, domain.Artist{
				Slug:             slug,
				Name:             in.Name,
				Image:            in.Image,
				Genres:           genres,
				MonthlyListeners: in.MonthlyListeners,
				Featured:         in.Featured,
			})
		})
	if err != nil {
		return domain.Artist{}, fmt.Errorf("service.ArtistService.Create: %w", err)
	}
	return created, nil
}

// GetBySlug returns a single artist. Returns domain.ErrNotFound if missing.
func (s *ArtistService) GetBySlug(ctx context.Context, slug string) (domain.Artist, error) {
	a, err := s.artists.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("service.ArtistService.GetBySlug: %w", err)
	}
	return a, nil
}

// List returns one page of artists and the total count.
func (s *ArtistService) List(ctx context.Context, p domain.PaginationParams) ([]domain.Artist, int64, error) {
	artists, total, err := s.artists.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ArtistService.List: %w", err)
	}
	if artists == nil {
		artists = []domain.Artist{}
	}
	return artists, total, nil
}

// Featured returns up to limit artists flagged as featured.
func (s *ArtistService) Featured(ctx context.Context, limit int) ([]domain.Artist, error) {
	artists, err := s.artists.ListFeatured(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service.ArtistService.Featured: %w", err)
	}
	if artists == nil {
		artists = []domain.Artist{}
	}
	return artists, nil
}
