// Package handler implements the HTTP handlers for the label catalog API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, artist.go, etc.) but share the same Server struct so they
// can access its dependencies. Routes wires them onto a chi router.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/label-catalog/internal/domain"
	"github.com/pkordes/label-catalog/internal/service"
)

// ArtistServicer defines the business operations the artist handlers depend on.
// Defining the interface here, in the consumer package, lets handler tests
// inject a mock without touching the database or service layer.
type ArtistServicer interface {
	Create(ctx context.Context, in service.CreateArtistInput) (domain.Artist, error)
	GetBySlug(ctx context.Context, slug string) (domain.Artist, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Artist, int64, error)
}

// ReleaseServicer defines the business operations the release handlers depend on.
type ReleaseServicer interface {
	Create(ctx context.Context, in service.CreateReleaseInput) (domain.Release, error)
	GetBySlug(ctx context.Context, slug string) (domain.Release, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Release, int64, error)
}

// EventServicer defines the business operations the event handlers depend on.
type EventServicer interface {
	Create(ctx context.Context, in service.CreateEventInput) (domain.Event, error)
	GetBySlug(ctx context.Context, slug string) (domain.Event, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Event, int64, error)
}

// HomeServicer loads the landing page feed.
type HomeServicer interface {
	Home(ctx context.Context) (domain.Home, error)
}

// Server holds the dependencies of every handler.
type Server struct {
	artists  ArtistServicer
	releases ReleaseServicer
	events   EventServicer
	home     HomeServicer
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// Any servicer may be nil when a test only exercises other routes.
func NewServer(artists ArtistServicer, releases ReleaseServicer, events EventServicer, home HomeServicer) *Server {
	return &Server{
		artists:  artists,
		releases: releases,
		events:   events,
		home:     home,
		log:      slog.Default(),
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}

// WithLogger sets the logger used to report internal errors and returns s.
func (s *Server) WithLogger(l *slog.Logger) *Server {
	if l != nil {
		s.log = l
	}
	return s
}

// Routes returns a chi router serving every API endpoint.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/home", s.GetHome)

	r.Route("/artists", func(r chi.Router) {
		r.Post("/", s.CreateArtist)
		r.Get("/", s.ListArtists)
		r.Get("/{slug}", s.GetArtist)
	})
	r.Route("/releases", func(r chi.Router) {
		r.Post("/", s.CreateRelease)
		r.Get("/", s.ListReleases)
		r.Get("/{slug}", s.GetRelease)
	})
	r.Route("/events", func(r chi.Router) {
		r.Post("/", s.CreateEvent)
		r.Get("/", s.ListEvents)
		r.Get("/{slug}", s.GetEvent)
	})

	return r
}

// Handler is shorthand for Routes as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.Routes()
}
