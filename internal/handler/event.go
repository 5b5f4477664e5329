package handler

import (
	"net/http"

	"github.com/pkordes/label-catalog/internal/domain"
	"github.com/pkordes/label-catalog/internal/service"
)

// CreateEvent handles POST /events.
// A 404 names the first artist slug that does not resolve.
func (s *Server) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var body CreateEventRequest
	if err := decodeBody(r, &body); err != nil {
		writeBodyError(w, err)
		return
	}

	created, err := s.events.Create(r.Context(), requestToEventInput(body))
	if err != nil {
		s.writeError(w, r, err, "artist not found")
		return
	}

	writeJSON(w, http.StatusCreated, eventToResponse(created))
}

// ListEvents handles GET /events, soonest first.
func (s *Server) ListEvents(w http.ResponseWriter, r *http.Request) {
	params, err := paginationParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	events, total, err := s.events.List(r.Context(), params)
	if err != nil {
		s.writeError(w, r, err, "event not found")
		return
	}

	data := make([]Event, len(events))
	for i, e := range events {
		data[i] = eventToResponse(e)
	}
	writeJSON(w, http.StatusOK, EventList{Data: data, Pagination: paginationResponse(params, total)})
}

// GetEvent handles GET /events/{slug}.
func (s *Server) GetEvent(w http.ResponseWriter, r *http.Request) {
	slug, err := slugParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	event, err := s.events.GetBySlug(r.Context(), slug)
	if err != nil {
		s.writeError(w, r, err, "event not found")
		return
	}

	writeJSON(w, http.StatusOK, eventToResponse(event))
}

// --- mapping helpers --------------------------------------------------------

func requestToEventInput(body CreateEventRequest) service.CreateEventInput {
	in := service.CreateEventInput{
		Title:       body.Title,
		StartsAt:    body.StartsAt,
		Venue:       body.Venue,
		City:        body.City,
		ArtistSlugs: body.ArtistSlugs,
	}
	if body.Location != nil {
		in.Location = *body.Location
	}
	if body.Image != nil {
		in.Image = *body.Image
	}
	if body.TicketUrl != nil {
		in.TicketURL = *body.TicketUrl
	}
	return in
}

// eventToResponse converts a domain.Event into its wire form.
// ticket_url is omitted when empty.
func eventToResponse(e domain.Event) Event {
	artists := make([]ArtistRef, len(e.Artists))
	for i, a := range e.Artists {
		artists[i] = artistRefToResponse(a)
	}
	resp := Event{
		Id:        e.ID,
		Slug:      e.Slug,
		Title:     e.Title,
		StartsAt:  e.StartsAt,
		Venue:     e.Venue,
		City:      e.City,
		Location:  e.Location,
		Image:     e.Image,
		Artists:   artists,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.TicketURL != "" {
		ticket := e.TicketURL
		resp.TicketUrl = &ticket
	}
	return resp
}
