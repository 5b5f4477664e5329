package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/label-catalog/internal/domain"
)

// SlugRepo answers slug existence queries for every catalog category.
// It satisfies slug.Checker.
type SlugRepo interface {
	// ExistsBySlug reports whether an entity of category already holds slug.
	// Returns domain.ErrValidation for an unknown category.
	ExistsBySlug(ctx context.Context, category domain.Category, slug string) (bool, error)
}

// slugTables maps each category to the table whose UNIQUE (slug) constraint
// scopes it. Table names are never taken from input.
var slugTables = map[domain.Category]string{
	domain.CategoryArtist:  "artists",
	domain.CategoryRelease: "releases",
	domain.CategoryEvent:   "events",
}

type pgSlugRepo struct {
	db db
}

// NewSlugRepo constructs a SlugRepo backed by the provided db connection.
func NewSlugRepo(db db) SlugRepo {
	return &pgSlugRepo{db: db}
}

func (r *pgSlugRepo) ExistsBySlug(ctx context.Context, category domain.Category, slug string) (bool, error) {
	table, ok := slugTables[category]
	if !ok {
		return false, fmt.Errorf("repo.SlugRepo.ExistsBySlug: %w: unknown category %q", domain.ErrValidation, category)
	}

	q := `SELECT EXISTS (SELECT 1 FROM ` + table + ` WHERE slug = @slug)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"slug": slug}).Scan(&exists); err != nil {
		return false, fmt.Errorf("repo.SlugRepo.ExistsBySlug: %w", err)
	}
	return exists, nil
}
