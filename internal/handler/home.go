package handler

import "net/http"

// GetHome handles GET /home: latest releases, featured artists and
// upcoming events in one payload.
func (s *Server) GetHome(w http.ResponseWriter, r *http.Request) {
	home, err := s.home.Home(r.Context())
	if err != nil {
		s.writeError(w, r, err, "not found")
		return
	}

	resp := Home{
		FeaturedReleases: make([]Release, len(home.FeaturedReleases)),
		FeaturedArtists:  make([]Artist, len(home.FeaturedArtists)),
		UpcomingEvents:   make([]Event, len(home.UpcomingEvents)),
	}
	for i, rel := range home.FeaturedReleases {
		resp.FeaturedReleases[i] = releaseToResponse(rel)
	}
	for i, a := range home.FeaturedArtists {
		resp.FeaturedArtists[i] = artistToResponse(a)
	}
	for i, e := range home.UpcomingEvents {
		resp.UpcomingEvents[i] = eventToResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}
