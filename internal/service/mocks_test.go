package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/pkordes/label-catalog/internal/domain"
	"github.com/pkordes/label-catalog/internal/repo"
	"github.com/pkordes/label-catalog/internal/service"
)

// Hand-written test doubles: each method is a function field, set only the
// ones a test needs. Calling an unset one panics, which fails the test loudly.

type mockArtistRepo struct {
	create       func(ctx context.Context, a domain.Artist) (domain.Artist, error)
	getBySlug    func(ctx context.Context, slug string) (domain.Artist, error)
	listPaged    func(ctx context.Context, p domain.PaginationParams) ([]domain.Artist, int64, error)
	listFeatured func(ctx context.Context, limit int) ([]domain.Artist, error)
	refsBySlugs  func(ctx context.Context, slugs []string) ([]domain.ArtistRef, error)
}

func (m *mockArtistRepo) Create(ctx context.Context, a domain.Artist) (domain.Artist, error) {
	return m.create(ctx, a)
}
func (m *mockArtistRepo) GetBySlug(ctx context.Context, slug string) (domain.Artist, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockArtistRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Artist, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockArtistRepo) ListFeatured(ctx context.Context, limit int) ([]domain.Artist, error) {
	return m.listFeatured(ctx, limit)
}
func (m *mockArtistRepo) RefsBySlugs(ctx context.Context, slugs []string) ([]domain.ArtistRef, error) {
	return m.refsBySlugs(ctx, slugs)
}

type mockReleaseRepo struct {
	create     func(ctx context.Context, r domain.Release) (domain.Release, error)
	getBySlug  func(ctx context.Context, slug string) (domain.Release, error)
	listPaged  func(ctx context.Context, p domain.PaginationParams) ([]domain.Release, int64, error)
	listLatest func(ctx context.Context, limit int) ([]domain.Release, error)
}

func (m *mockReleaseRepo) Create(ctx context.Context, r domain.Release) (domain.Release, error) {
	return m.create(ctx, r)
}
func (m *mockReleaseRepo) GetBySlug(ctx context.Context, slug string) (domain.Release, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockReleaseRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Release, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockReleaseRepo) ListLatest(ctx context.Context, limit int) ([]domain.Release, error) {
	return m.listLatest(ctx, limit)
}

type mockEventRepo struct {
	create       func(ctx context.Context, e domain.Event) (domain.Event, error)
	getBySlug    func(ctx context.Context, slug string) (domain.Event, error)
	listPaged    func(ctx context.Context, p domain.PaginationParams) ([]domain.Event, int64, error)
	listUpcoming func(ctx context.Context, from time.Time, limit int) ([]domain.Event, error)
}

func (m *mockEventRepo) Create(ctx context.Context, e domain.Event) (domain.Event, error) {
	return m.create(ctx, e)
}
func (m *mockEventRepo) GetBySlug(ctx context.Context, slug string) (domain.Event, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockEventRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Event, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockEventRepo) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]domain.Event, error) {
	return m.listUpcoming(ctx, from, limit)
}

// compile-time checks
var (
	_ repo.ArtistRepo  = (*mockArtistRepo)(nil)
	_ repo.ReleaseRepo = (*mockReleaseRepo)(nil)
	_ repo.EventRepo   = (*mockEventRepo)(nil)
)

// fakeAssigner hands out the queued slugs in order and records each call.
type fakeAssigner struct {
	mu     sync.Mutex
	slugs  []string
	err    error
	calls  int
	gotCat []domain.Category
}

func (f *fakeAssigner) Assign(_ context.Context, _ string, category domain.Category) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotCat = append(f.gotCat, category)
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	s := f.slugs[0]
	if len(f.slugs) > 1 {
		f.slugs = f.slugs[1:]
	}
	return s, nil
}

var _ service.SlugAssigner = (*fakeAssigner)(nil)
