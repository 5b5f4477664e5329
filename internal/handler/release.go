package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/label-catalog/internal/domain"
	"github.com/pkordes/label-catalog/internal/service"
)

// CreateRelease handles POST /releases.
// A 404 means the referenced artist does not exist.
func (s *Server) CreateRelease(w http.ResponseWriter, r *http.Request) {
	var body CreateReleaseRequest
	if err := decodeBody(r, &body); err != nil {
		writeBodyError(w, err)
		return
	}

	created, err := s.releases.Create(r.Context(), requestToReleaseInput(body))
	if err != nil {
		s.writeError(w, r, err, "artist not found")
		return
	}

	writeJSON(w, http.StatusCreated, releaseToResponse(created))
}

// ListReleases handles GET /releases, newest first.
func (s *Server) ListReleases(w http.ResponseWriter, r *http.Request) {
	params, err := paginationParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	releases, total, err := s.releases.List(r.Context(), params)
	if err != nil {
		s.writeError(w, r, err, "release not found")
		return
	}

	data := make([]Release, len(releases))
	for i, rel := range releases {
		data[i] = releaseToResponse(rel)
	}
	writeJSON(w, http.StatusOK, ReleaseList{Data: data, Pagination: paginationResponse(params, total)})
}

// GetRelease handles GET /releases/{slug}.
func (s *Server) GetRelease(w http.ResponseWriter, r *http.Request) {
	slug, err := slugParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	release, err := s.releases.GetBySlug(r.Context(), slug)
	if err != nil {
		s.writeError(w, r, err, "release not found")
		return
	}

	writeJSON(w, http.StatusOK, releaseToResponse(release))
}

// --- mapping helpers --------------------------------------------------------

func requestToReleaseInput(body CreateReleaseRequest) service.CreateReleaseInput {
	in := service.CreateReleaseInput{
		Title:       body.Title,
		ArtistSlug:  body.ArtistSlug,
		ReleaseDate: body.ReleaseDate.Time,
		Type:        domain.ReleaseType(body.Type),
	}
	if body.Cover != nil {
		in.Cover = *body.Cover
	}
	if body.Genre != nil {
		in.Genre = *body.Genre
	}
	return in
}

// releaseToResponse converts a domain.Release into its wire form.
func releaseToResponse(rel domain.Release) Release {
	return Release{
		Id:          rel.ID,
		Slug:        rel.Slug,
		Title:       rel.Title,
		Cover:       rel.Cover,
		Artist:      artistRefToResponse(rel.Artist),
		ReleaseDate: openapi_types.Date{Time: rel.ReleaseDate},
		Type:        string(rel.Type),
		Genre:       rel.Genre,
		CreatedAt:   rel.CreatedAt,
		UpdatedAt:   rel.UpdatedAt,
	}
}
