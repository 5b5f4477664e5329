// Package slug derives URL-safe identifiers from display names and makes
// them unique within a catalog category.
//
// Normalize is a pure function. Assigner adds the uniqueness search: it asks
// a Checker whether a candidate is taken and, on collision, appends an
// increasing numeric suffix ("binary-beats", "binary-beats-1", ...).
//
// The assigner only reads. Two concurrent calls for the same name can both
// see a candidate as free; the storage layer must reject the second insert
// with a uniqueness violation and the caller must assign again.
package slug

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pkordes/label-catalog/internal/domain"
)

// DefaultMaxAttempts bounds the collision search of an Assigner built
// without WithMaxAttempts.
const DefaultMaxAttempts = 1000

var (
	// disallowed matches anything that is not an ASCII word character,
	// a space, or a hyphen. Applied after lowercasing. The hyphen must
	// stay in the class for Normalize to be idempotent.
	disallowed = regexp.MustCompile(`[^a-z0-9_ -]+`)
	spaceRun   = regexp.MustCompile(` +`)
	wordChar   = regexp.MustCompile(`[a-z0-9_]`)
)

// ErrEmpty is returned when a display name has no characters that survive
// normalization. It wraps domain.ErrValidation.
var ErrEmpty = fmt.Errorf("%w: name has no characters usable in a slug", domain.ErrValidation)

// ErrExhausted is returned when every candidate up to the attempt cap is
// already taken. It wraps domain.ErrConflict.
var ErrExhausted = fmt.Errorf("%w: no free slug within attempt limit", domain.ErrConflict)

// Normalize lowercases text, strips every character other than [a-z0-9_],
// space and hyphen, then turns each run of spaces into a single hyphen.
//
//	"Binary Beats"        → "binary-beats"
//	"Sally's Synth-Wave!" → "sallys-synth-wave"
//
// Existing hyphens are kept on purpose. With a plain [^a-z0-9_ ] class a
// second pass would turn "binary-beats" into "binarybeats", breaking
// Normalize(Normalize(s)) == Normalize(s). Keep the hyphen in disallowed. The result may be empty; Normalize never substitutes a
// fallback.
func Normalize(text string) string {
	// A Caser is stateful, so one is built per call rather than shared.
	s := cases.Lower(language.Und).String(text)
	s = disallowed.ReplaceAllString(s, "")
	return spaceRun.ReplaceAllString(s, "-")
}

// Checker reports whether an entity of the given category already holds slug.
// Implementations must be read-only.
type Checker interface {
	ExistsBySlug(ctx context.Context, category domain.Category, slug string) (bool, error)
}

// CheckerFunc adapts a plain function to the Checker interface.
type CheckerFunc func(ctx context.Context, category domain.Category, slug string) (bool, error)

// ExistsBySlug calls f.
func (f CheckerFunc) ExistsBySlug(ctx context.Context, category domain.Category, slug string) (bool, error) {
	return f(ctx, category, slug)
}

// Option configures an Assigner.
type Option func(*Assigner)

// WithMaxAttempts caps the number of existence checks per Assign call.
// Zero or a negative value removes the cap.
func WithMaxAttempts(n int) Option {
	return func(a *Assigner) {
		a.maxAttempts = n
	}
}

// Assigner proposes slugs that are unused within a category.
// It is safe for concurrent use; all state lives in a single Assign call.
type Assigner struct {
	checker     Checker
	maxAttempts int
}

// NewAssigner constructs an Assigner that consults checker for collisions.
func NewAssigner(checker Checker, opts ...Option) *Assigner {
	a := &Assigner{checker: checker, maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assign returns a slug derived from name that was unused in category at the
// moment of the last existence check. The unsuffixed form is always tried
// first, then "-1", "-2", ... in order. Checks run one at a time.
//
// Errors:
//   - ErrEmpty if name normalizes to nothing usable.
//   - ErrExhausted if the attempt cap is reached.
//   - ctx.Err() if ctx is done before a check.
//   - any Checker error, wrapped but otherwise unchanged.
func (a *Assigner) Assign(ctx context.Context, name string, category domain.Category) (string, error) {
	if !category.Valid() {
		return "", fmt.Errorf("slug.Assigner.Assign: %w: unknown category %q", domain.ErrValidation, category)
	}

	base := Normalize(name)
	if !wordChar.MatchString(base) {
		return "", fmt.Errorf("slug.Assigner.Assign: %w", ErrEmpty)
	}

	candidate := base
	for counter := 0; ; counter++ {
		if a.maxAttempts > 0 && counter >= a.maxAttempts {
			return "", fmt.Errorf("slug.Assigner.Assign: %q after %d attempts: %w", base, counter, ErrExhausted)
		}
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("slug.Assigner.Assign: %w", err)
		}

		if counter > 0 {
			candidate = base + "-" + strconv.Itoa(counter)
		}

		taken, err := a.checker.ExistsBySlug(ctx, category, candidate)
		if err != nil {
			return "", fmt.Errorf("slug.Assigner.Assign: check %s %q: %w", category, candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}
}
