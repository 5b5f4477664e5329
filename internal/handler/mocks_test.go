package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/label-catalog/internal/domain"
	"github.com/pkordes/label-catalog/internal/handler"
	"github.com/pkordes/label-catalog/internal/service"
)

// Test doubles for the handler servicer interfaces.
// Set only the method fields your test needs.

type mockArtistServicer struct {
	create    func(ctx context.Context, in service.CreateArtistInput) (domain.Artist, error)
	getBySlug func(ctx context.Context, slug string) (domain.Artist, error)
	list      func(ctx context.Context, p domain.PaginationParams) ([]domain.Artist, int64, error)
}

func (m *mockArtistServicer) Create(ctx context.Context, in service.CreateArtistInput) (domain.Artist, error) {
	return m.create(ctx, in)
}
func (m *mockArtistServicer) GetBySlug(ctx context.Context, slug string) (domain.Artist, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockArtistServicer) List(ctx context.Context, p domain.PaginationParams) ([]domain.Artist, int64, error) {
	return m.list(ctx, p)
}

type mockReleaseServicer struct {
	create    func(ctx context.Context, in service.CreateReleaseInput) (domain.Release, error)
	getBySlug func(ctx context.Context, slug string) (domain.Release, error)
	list      func(ctx context.Context, p domain.PaginationParams) ([]domain.Release, int64, error)
}

func (m *mockReleaseServicer) Create(ctx context.Context, in service.CreateReleaseInput) (domain.Release, error) {
	return m.create(ctx, in)
}
func (m *mockReleaseServicer) GetBySlug(ctx context.Context, slug string) (domain.Release, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockReleaseServicer) List(ctx context.Context, p domain.PaginationParams) ([]domain.Release, int64, error) {
	return m.list(ctx, p)
}

type mockEventServicer struct {
	create    func(ctx context.Context, in service.CreateEventInput) (domain.Event, error)
	getBySlug func(ctx context.Context, slug string) (domain.Event, error)
	list      func(ctx context.Context, p domain.PaginationParams) ([]domain.Event, int64, error)
}

func (m *mockEventServicer) Create(ctx context.Context, in service.CreateEventInput) (domain.Event, error) {
	return m.create(ctx, in)
}
func (m *mockEventServicer) GetBySlug(ctx context.Context, slug string) (domain.Event, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockEventServicer) List(ctx context.Context, p domain.PaginationParams) ([]domain.Event, int64, error) {
	return m.list(ctx, p)
}

type mockHomeServicer struct {
	home func(ctx context.Context) (domain.Home, error)
}

func (m *mockHomeServicer) Home(ctx context.Context) (domain.Home, error) {
	return m.home(ctx)
}

// compile-time checks
var (
	_ handler.ArtistServicer  = (*mockArtistServicer)(nil)
	_ handler.ReleaseServicer = (*mockReleaseServicer)(nil)
	_ handler.EventServicer   = (*mockEventServicer)(nil)
	_ handler.HomeServicer    = (*mockHomeServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// serve runs one request through the full router, as main.go wires it.
func serve(t *testing.T, srv *handler.Server, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(b)
	}

	var req *http.Request
	if reader != nil {
		req = httptest.NewRequest(method, target, reader)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}
