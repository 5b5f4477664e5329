package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/label-catalog/internal/domain"
)

// ArtistRepo defines the persistence operations for Artists.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type ArtistRepo interface {
	// Create inserts a new artist and returns the persisted record.
	// Returns domain.ErrConflict if the slug is already taken.
	Create(ctx context.Context, artist domain.Artist) (domain.Artist, error)

	// GetBySlug retrieves a single artist by slug.
	// Returns domain.ErrNotFound if no artist holds that slug.
	GetBySlug(ctx context.Context, slug string) (domain.Artist, error)

	// ListPaged returns one page of artists, newest first, and the total count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Artist, int64, error)

	// ListFeatured returns up to limit featured artists, newest first.
	ListFeatured(ctx context.Context, limit int) ([]domain.Artist, error)

	// RefsBySlugs resolves slugs to artist references in the order given.
	// Slugs that match no artist are left out of the result.
	RefsBySlugs(ctx context.Context, slugs []string) ([]domain.ArtistRef, error)
}

// pgArtistRepo is the Postgres implementation of ArtistRepo.
type pgArtistRepo struct {
	db db
}

// NewArtistRepo constructs an ArtistRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewArtistRepo(db db) ArtistRepo {
	return &pgArtistRepo{db: db}
}

// artistColumns selects every Artist field; total_releases is derived.
const artistColumns = `
	a.id, a.slug, a.name, a.image, a.genres, a.monthly_listeners, a.featured,
	(SELECT count(*) FROM releases r WHERE r.artist_id = a.id) AS total_releases,
	a.created_at, a.updated_at`

// Create inserts a new artist row and returns the full persisted record.
// A fresh artist has no releases, so total_releases is a literal zero.
func (r *pgArtistRepo) Create(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	const q = `
		INSERT INTO artists (slug, name, image, genres, monthly_listeners, featured)
		VALUES (@slug, @name, @image, @genres, @monthly_listeners, @featured)
		RETURNING id, slug, name, image, genres, monthly_listeners, featured,
		          0::bigint, created_at, updated_at`

	genres := artist.Genres
	if genres == nil {
		genres = []string{} // NULL would violate NOT NULL
	}

	args := pgx.NamedArgs{
		"slug":              artist.Slug,
		"name":              artist.Name,
		"image":             artist.Image,
		"genres":            genres,
		"monthly_listeners": artist.MonthlyListeners,
		"featured":          artist.Featured,
	}

	result, err := scanArtist(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if pgCode(err) == codeUniqueViolation {
			return domain.Artist{}, fmt.Errorf("repo.ArtistRepo.Create: slug %q: %w", artist.Slug, domain.ErrConflict)
		}
		return domain.Artist{}, fmt.Errorf("repo.ArtistRepo.Create: %w", err)
	}
	return result, nil
}

// GetBySlug retrieves an artist by its unique slug.
func (r *pgArtistRepo) GetBySlug(ctx context.Context, slug string) (domain.Artist, error) {
	q := `SELECT ` + artistColumns + `
		FROM artists a
		WHERE a.slug = @slug`

	result, err := scanArtist(r.db.QueryRow(ctx, q, pgx.NamedArgs{"slug": slug}))
	if err != nil {
		return domain.Artist{}, fmt.Errorf("repo.ArtistRepo.GetBySlug: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of artists ordered by created_at descending.
func (r *pgArtistRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Artist, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM artists`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ArtistRepo.ListPaged: count: %w", err)
	}

	q := `SELECT ` + artistColumns + `
		FROM artists a
		ORDER BY a.created_at DESC, a.slug
		LIMIT @limit OFFSET @offset`

	artists, err := r.queryArtists(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ArtistRepo.ListPaged: %w", err)
	}
	return artists, total, nil
}

// ListFeatured returns up to limit artists with featured = true.
func (r *pgArtistRepo) ListFeatured(ctx context.Context, limit int) ([]domain.Artist, error) {
	q := `SELECT ` + artistColumns + `
		FROM artists a
		WHERE a.featured
		ORDER BY a.created_at DESC, a.slug
		LIMIT @limit`

	artists, err := r.queryArtists(ctx, q, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("repo.ArtistRepo.ListFeatured: %w", err)
	}
	return artists, nil
}

// RefsBySlugs resolves slugs with a single ANY() lookup, then restores the
// caller's order. Duplicate slugs yield one reference.
func (r *pgArtistRepo) RefsBySlugs(ctx context.Context, slugs []string) ([]domain.ArtistRef, error) {
	const q = `
		SELECT id, slug, name
		FROM artists
		WHERE slug = ANY(@slugs)`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"slugs": slugs})
	if err != nil {
		return nil, fmt.Errorf("repo.ArtistRepo.RefsBySlugs: %w", err)
	}
	defer rows.Close()

	bySlug := make(map[string]domain.ArtistRef, len(slugs))
	for rows.Next() {
		ref, err := scanArtistRef(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ArtistRepo.RefsBySlugs: scan: %w", err)
		}
		bySlug[ref.Slug] = ref
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ArtistRepo.RefsBySlugs: rows: %w", err)
	}

	refs := make([]domain.ArtistRef, 0, len(bySlug))
	for _, s := range slugs {
		if ref, ok := bySlug[s]; ok {
			refs = append(refs, ref)
			delete(bySlug, s)
		}
	}
	return refs, nil
}

func (r *pgArtistRepo) queryArtists(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Artist, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artists := []domain.Artist{}
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return artists, nil
}

// scanArtist maps a single database row into a domain.Artist.
func scanArtist(s scanner) (domain.Artist, error) {
	var (
		a             domain.Artist
		id            pgtype.UUID
		totalReleases int64
	)
	err := s.Scan(&id, &a.Slug, &a.Name, &a.Image, &a.Genres, &a.MonthlyListeners,
		&a.Featured, &totalReleases, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Artist{}, domain.ErrNotFound
		}
		return domain.Artist{}, err
	}
	a.ID = uuid.UUID(id.Bytes)
	a.TotalReleases = int(totalReleases)
	return a, nil
}

// scanArtistRef maps an (id, slug, name) row into a domain.ArtistRef.
func scanArtistRef(s scanner) (domain.ArtistRef, error) {
	var (
		ref domain.ArtistRef
		id  pgtype.UUID
	)
	if err := s.Scan(&id, &ref.Slug, &ref.Name); err != nil {
		return domain.ArtistRef{}, err
	}
	ref.ID = uuid.UUID(id.Bytes)
	return ref, nil
}
