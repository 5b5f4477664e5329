// Package service contains the business logic for the label catalog API.
// Services validate inputs, assign slugs, and orchestrate repo calls.
// No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pkordes/label-catalog/internal/domain"
)

// DefaultConflictRetries is how many times a create is retried after the
// database rejects a freshly assigned slug as a duplicate.
const DefaultConflictRetries = 3

// SlugAssigner proposes a slug for a display name that is free within category.
// *slug.Assigner satisfies it.
type SlugAssigner interface {
	Assign(ctx context.Context, name string, category domain.Category) (string, error)
}

// Option configures the slug-creating services.
type Option func(*settings)

type settings struct {
	retries int
	log     *slog.Logger
}

// WithConflictRetries sets how many times a create re-runs slug assignment
// after a unique violation. Negative values are treated as 0.
func WithConflictRetries(n int) Option {
	return func(s *settings) {
		s.retries = max(n, 0)
	}
}

// WithLogger sets the logger used to report slug conflict retries.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.log = l
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{retries: DefaultConflictRetries, log: slog.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// createWithSlug assigns a slug for name and hands it to insert.
//
// The assigner only reads, so a concurrent writer can take the same slug
// between the existence check and the insert. The UNIQUE (slug) constraint
// turns that into domain.ErrConflict, and assignment runs again, which
// now sees the taken slug and moves to the next suffix.
func createWithSlug[T any](
	ctx context.Context,
	assigner SlugAssigner,
	cfg settings,
	category domain.Category,
	name string,
	insert func(slug string) (T, error),
) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		s, err := assigner.Assign(ctx, name, category)
		if err != nil {
			return zero, err
		}

		created, err := insert(s)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, domain.ErrConflict) || attempt >= cfg.retries {
			return zero, err
		}

		cfg.log.WarnContext(ctx, "slug taken by concurrent insert, reassigning",
			"category", category.String(),
			"slug", s,
			"attempt", attempt+1,
		)
	}
}

// notFoundf returns an error wrapping domain.ErrNotFound whose detail
// reads like `artist "nova" not found`.
func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s not found", domain.ErrNotFound, fmt.Sprintf(format, args...))
}
