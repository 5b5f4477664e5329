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

// ReleaseRepo defines the persistence operations for Releases.
// Every release row is returned joined with its artist's id, slug and name.
type ReleaseRepo interface {
	// Create inserts a new release for release.Artist.ID.
	// Returns domain.ErrConflict if the slug is taken and domain.ErrNotFound
	// if the artist no longer exists.
	Create(ctx context.Context, release domain.Release) (domain.Release, error)

	// GetBySlug retrieves a single release by slug.
	// Returns domain.ErrNotFound if no release holds that slug.
	GetBySlug(ctx context.Context, slug string) (domain.Release, error)

	// ListPaged returns one page of releases, most recent release_date first,
	// and the total count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Release, int64, error)

	// ListLatest returns up to limit releases, most recent release_date first.
	ListLatest(ctx context.Context, limit int) ([]domain.Release, error)
}

// pgReleaseRepo is the Postgres implementation of ReleaseRepo.
type pgReleaseRepo struct {
	db db
}

// NewReleaseRepo constructs a ReleaseRepo backed by the provided db connection.
func NewReleaseRepo(db db) ReleaseRepo {
	return &pgReleaseRepo{db: db}
}

const releaseColumns = `
	rl.id, rl.slug, rl.title, rl.cover, a.id, a.slug, a.name,
	rl.release_date, rl.type, rl.genre, rl.created_at, rl.updated_at`

// Create inserts the release and joins the artist in the same statement so
// the returned record carries the artist reference.
func (r *pgReleaseRepo) Create(ctx context.Context, release domain.Release) (domain.Release, error) {
	q := `
		WITH rl AS (
			INSERT INTO releases (slug, title, cover, artist_id, release_date, type, genre)
			VALUES (@slug, @title, @cover, @artist_id, @release_date, @type, @genre)
			RETURNING *
		)
		SELECT ` + releaseColumns + `
		FROM rl
		JOIN artists a ON a.id = rl.artist_id`

	args := pgx.NamedArgs{
		"slug":         release.Slug,
		"title":        release.Title,
		"cover":        release.Cover,
		"artist_id":    release.Artist.ID,
		"release_date": release.ReleaseDate,
		"type":         string(release.Type),
		"genre":        release.Genre,
	}

	result, err := scanRelease(r.db.QueryRow(ctx, q, args))
	if err != nil {
		switch pgCode(err) {
		case codeUniqueViolation:
			return domain.Release{}, fmt.Errorf("repo.ReleaseRepo.Create: slug %q: %w", release.Slug, domain.ErrConflict)
		case codeForeignKeyViolation:
			return domain.Release{}, fmt.Errorf("repo.ReleaseRepo.Create: artist: %w", domain.ErrNotFound)
		}
		return domain.Release{}, fmt.Errorf("repo.ReleaseRepo.Create: %w", err)
	}
	return result, nil
}

// GetBySlug retrieves a release by its unique slug.
func (r *pgReleaseRepo) GetBySlug(ctx context.Context, slug string) (domain.Release, error) {
	q := `SELECT ` + releaseColumns + `
		FROM releases rl
		JOIN artists a ON a.id = rl.artist_id
		WHERE rl.slug = @slug`

	result, err := scanRelease(r.db.QueryRow(ctx, q, pgx.NamedArgs{"slug": slug}))
	if err != nil {
		return domain.Release{}, fmt.Errorf("repo.ReleaseRepo.GetBySlug: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of releases ordered by release_date descending.
func (r *pgReleaseRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Release, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM releases`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ReleaseRepo.ListPaged: count: %w", err)
	}

	q := `SELECT ` + releaseColumns + `
		FROM releases rl
		JOIN artists a ON a.id = rl.artist_id
		ORDER BY rl.release_date DESC, rl.slug
		LIMIT @limit OFFSET @offset`

	releases, err := r.queryReleases(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ReleaseRepo.ListPaged: %w", err)
	}
	return releases, total, nil
}

// ListLatest returns the newest releases by release_date.
func (r *pgReleaseRepo) ListLatest(ctx context.Context, limit int) ([]domain.Release, error) {
	q := `SELECT ` + releaseColumns + `
		FROM releases rl
		JOIN artists a ON a.id = rl.artist_id
		ORDER BY rl.release_date DESC, rl.slug
		LIMIT @limit`

	releases, err := r.queryReleases(ctx, q, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("repo.ReleaseRepo.ListLatest: %w", err)
	}
	return releases, nil
}

func (r *pgReleaseRepo) queryReleases(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Release, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	releases := []domain.Release{}
	for rows.Next() {
		rl, err := scanRelease(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		releases = append(releases, rl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return releases, nil
}

// scanRelease maps a single database row into a domain.Release.
// It handles the UUID and date conversions.
func scanRelease(s scanner) (domain.Release, error) {
	var (
		rl          domain.Release
		id          pgtype.UUID
		artistID    pgtype.UUID
		releaseDate pgtype.Date
		releaseType string
	)
	err := s.Scan(&id, &rl.Slug, &rl.Title, &rl.Cover, &artistID, &rl.Artist.Slug, &rl.Artist.Name,
		&releaseDate, &releaseType, &rl.Genre, &rl.CreatedAt, &rl.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Release{}, domain.ErrNotFound
		}
		return domain.Release{}, err
	}
	rl.ID = uuid.UUID(id.Bytes)
	rl.Artist.ID = uuid.UUID(artistID.Bytes)
	rl.ReleaseDate = releaseDate.Time
	rl.Type = domain.ReleaseType(releaseType)
	return rl, nil
}
