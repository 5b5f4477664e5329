package handler

import (
	"net/http"

	"github.com/pkordes/label-catalog/internal/domain"
	"github.com/pkordes/label-catalog/internal/service"
)

// CreateArtist handles POST /artists.
func (s *Server) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var body CreateArtistRequest
	if err := decodeBody(r, &body); err != nil {
		writeBodyError(w, err)
		return
	}

	created, err := s.artists.Create(r.Context(), requestToArtistInput(body))
	if err != nil {
		s.writeError(w, r, err, "artist not found")
		return
	}

	writeJSON(w, http.StatusCreated, artistToResponse(created))
}

// ListArtists handles GET /artists.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListArtists(w http.ResponseWriter, r *http.Request) {
	params, err := paginationParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	artists, total, err := s.artists.List(r.Context(), params)
	if err != nil {
		s.writeError(w, r, err, "artist not found")
		return
	}

	data := make([]Artist, len(artists))
	for i, a := range artists {
		data[i] = artistToResponse(a)
	}
	writeJSON(w, http.StatusOK, ArtistList{Data: data, Pagination: paginationResponse(params, total)})
}

// GetArtist handles GET /artists/{slug}.
func (s *Server) GetArtist(w http.ResponseWriter, r *http.Request) {
	slug, err := slugParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	artist, err := s.artists.GetBySlug(r.Context(), slug)
	if err != nil {
		s.writeError(w, r, err, "artist not found")
		return
	}

	writeJSON(w, http.StatusOK, artistToResponse(artist))
}

// --- mapping helpers --------------------------------------------------------

func requestToArtistInput(body CreateArtistRequest) service.CreateArtistInput {
	in := service.CreateArtistInput{
		Name:   body.Name,
		Genres: body.Genres,
	}
	if body.Image != nil {
		in.Image = *body.Image
	}
	if body.MonthlyListeners != nil {
		in.MonthlyListeners = *body.MonthlyListeners
	}
	if body.Featured != nil {
		in.Featured = *body.Featured
	}
	return in
}

// artistToResponse converts a domain.Artist into its wire form.
// Genres is never null on the wire.
func artistToResponse(a domain.Artist) Artist {
	genres := a.Genres
	if genres == nil {
		genres = []string{}
	}
	return Artist{
		Id:               a.ID,
		Slug:             a.Slug,
		Name:             a.Name,
		Image:            a.Image,
		Genres:           genres,
		MonthlyListeners: a.MonthlyListeners,
		Featured:         a.Featured,
		TotalReleases:    a.TotalReleases,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}
