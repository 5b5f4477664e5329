package slug_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/label-catalog/internal/domain"
	"github.com/pkordes/label-catalog/internal/slug"
)

// ---- in-memory Checker -----------------------------------------------------

// memChecker is an in-memory stand-in for the persistence layer.
// checked records every candidate in the order it was asked about.
type memChecker struct {
	taken   map[domain.Category]map[string]bool
	checked []string
}

func newMemChecker() *memChecker {
	return &memChecker{taken: map[domain.Category]map[string]bool{}}
}

func (m *memChecker) add(c domain.Category, slugs ...string) *memChecker {
	if m.taken[c] == nil {
		m.taken[c] = map[string]bool{}
	}
	for _, s := range slugs {
		m.taken[c][s] = true
	}
	return m
}

func (m *memChecker) ExistsBySlug(_ context.Context, c domain.Category, s string) (bool, error) {
	m.checked = append(m.checked, s)
	return m.taken[c][s], nil
}

var _ slug.Checker = (*memChecker)(nil)

// ---- Normalize -------------------------------------------------------------

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Binary Beats", "binary-beats"},
		{"punctuation stripped", "Sally's Synth-Wave!", "sallys-synth-wave"},
		{"space runs collapse", "Techno   Night", "techno-night"},
		{"underscore kept", "dj_shadow", "dj_shadow"},
		{"digits kept", "Area 51", "area-51"},
		{"non-ascii letters stripped", "Beyoncé Live", "beyonc-live"},
		{"tabs are not spaces", "a\tb", "ab"},
		{"leading and trailing spaces", " Intro ", "-intro-"},
		{"hyphen next to space", "Rock - Roll", "rock---roll"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.Normalize(tc.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, in := range []string{"Binary Beats", "Sally's Synth-Wave!", " a  b ", "Rock - Roll"} {
		once := slug.Normalize(in)
		assert.Equal(t, once, slug.Normalize(once), "input %q", in)
	}
}

func TestNormalize_KeepsHyphens(t *testing.T) {
	assert.Equal(t, "binary-beats", slug.Normalize("binary-beats"))
	assert.Equal(t, "rock---roll", slug.Normalize("Rock - Roll"))
}

// ---- Assign ----------------------------------------------------------------

func TestAssign_FreeSlug(t *testing.T) {
	checker := newMemChecker()
	a := slug.NewAssigner(checker)

	got, err := a.Assign(context.Background(), "Binary Beats", domain.CategoryArtist)

	require.NoError(t, err)
	assert.Equal(t, "binary-beats", got)
	assert.Equal(t, []string{"binary-beats"}, checker.checked)
}

func TestAssign_FirstCollision(t *testing.T) {
	checker := newMemChecker().add(domain.CategoryArtist, "binary-beats")
	a := slug.NewAssigner(checker)

	got, err := a.Assign(context.Background(), "Binary Beats", domain.CategoryArtist)

	require.NoError(t, err)
	assert.Equal(t, "binary-beats-1", got)
}

func TestAssign_SecondCollision(t *testing.T) {
	checker := newMemChecker().add(domain.CategoryArtist, "binary-beats", "binary-beats-1")
	a := slug.NewAssigner(checker)

	got, err := a.Assign(context.Background(), "Binary Beats", domain.CategoryArtist)

	require.NoError(t, err)
	assert.Equal(t, "binary-beats-2", got)
	// Base first, then suffixes in increasing order, one at a time.
	assert.Equal(t, []string{"binary-beats", "binary-beats-1", "binary-beats-2"}, checker.checked)
}

func TestAssign_CategoryIsolation(t *testing.T) {
	checker := newMemChecker().add(domain.CategoryEvent, "techno-night")
	a := slug.NewAssigner(checker)

	got, err := a.Assign(context.Background(), "Techno Night", domain.CategoryArtist)

	require.NoError(t, err)
	assert.Equal(t, "techno-night", got)
}

func TestAssign_SpecialCharacters(t *testing.T) {
	a := slug.NewAssigner(newMemChecker())

	got, err := a.Assign(context.Background(), "Sally's Synth-Wave!", domain.CategoryArtist)

	require.NoError(t, err)
	assert.Equal(t, "sallys-synth-wave", got)
}

func TestAssign_EmptyInput(t *testing.T) {
	checker := newMemChecker()
	a := slug.NewAssigner(checker)

	for _, name := range []string{"", "!!!", "!!! ---", "   "} {
		_, err := a.Assign(context.Background(), name, domain.CategoryArtist)

		assert.ErrorIs(t, err, slug.ErrEmpty, "name %q", name)
		assert.ErrorIs(t, err, domain.ErrValidation, "name %q", name)
	}
	assert.Empty(t, checker.checked, "no query should be made for an empty slug")
}

func TestAssign_UnknownCategory(t *testing.T) {
	a := slug.NewAssigner(newMemChecker())

	_, err := a.Assign(context.Background(), "Binary Beats", domain.Category("venue"))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAssign_CheckerErrorPropagates(t *testing.T) {
	dbErr := errors.New("connection refused")
	calls := 0
	a := slug.NewAssigner(slug.CheckerFunc(func(_ context.Context, _ domain.Category, _ string) (bool, error) {
		calls++
		if calls == 2 {
			return false, dbErr
		}
		return true, nil
	}))

	got, err := a.Assign(context.Background(), "Binary Beats", domain.CategoryArtist)

	assert.ErrorIs(t, err, dbErr)
	assert.Empty(t, got)
	assert.Equal(t, 2, calls, "the loop must stop at the first failure")
}

func TestAssign_Exhausted(t *testing.T) {
	checker := newMemChecker().add(domain.CategoryRelease, "digital-pulse", "digital-pulse-1", "digital-pulse-2")
	a := slug.NewAssigner(checker, slug.WithMaxAttempts(3))

	_, err := a.Assign(context.Background(), "Digital Pulse", domain.CategoryRelease)

	assert.ErrorIs(t, err, slug.ErrExhausted)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, checker.checked, 3)
}

func TestAssign_UnboundedWhenCapDisabled(t *testing.T) {
	checker := newMemChecker()
	taken := []string{"x"}
	for i := 1; i < 1500; i++ {
		taken = append(taken, "x-"+strconv.Itoa(i))
	}
	checker.add(domain.CategoryArtist, taken...)
	a := slug.NewAssigner(checker, slug.WithMaxAttempts(0))

	got, err := a.Assign(context.Background(), "X", domain.CategoryArtist)

	require.NoError(t, err)
	assert.Equal(t, "x-1500", got)
}

func TestAssign_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	a := slug.NewAssigner(slug.CheckerFunc(func(_ context.Context, _ domain.Category, _ string) (bool, error) {
		cancel()
		return true, nil
	}))

	_, err := a.Assign(ctx, "Binary Beats", domain.CategoryArtist)

	assert.ErrorIs(t, err, context.Canceled)
}
