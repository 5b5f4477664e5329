package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/label-catalog/internal/domain"
)

// EventRepo defines the persistence operations for Events and the
// event_artists join table. Artist order on an event is preserved.
type EventRepo interface {
	// Create inserts an event and links event.Artists (by ID) in one statement.
	// Returns domain.ErrConflict if the slug is taken and domain.ErrNotFound
	// if a linked artist no longer exists.
	Create(ctx context.Context, event domain.Event) (domain.Event, error)

	// GetBySlug retrieves a single event with its artists.
	// Returns domain.ErrNotFound if no event holds that slug.
	GetBySlug(ctx context.Context, slug string) (domain.Event, error)

	// ListPaged returns one page of events ordered by starts_at ascending,
	// and the total count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Event, int64, error)

	// ListUpcoming returns up to limit events starting at or after from,
	// soonest first.
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]domain.Event, error)
}

// pgEventRepo is the Postgres implementation of EventRepo.
type pgEventRepo struct {
	db db
}

// NewEventRepo constructs an EventRepo backed by the provided db connection.
func NewEventRepo(db db) EventRepo {
	return &pgEventRepo{db: db}
}

const eventColumns = `
	e.id, e.slug, e.title, e.starts_at, e.venue, e.city, e.location,
	e.image, e.ticket_url, e.created_at, e.updated_at`

// Create writes the event row and its event_artists links in a single
// statement, so a failure leaves nothing behind without needing a transaction.
func (r *pgEventRepo) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	q := `
		WITH e AS (
			INSERT INTO events (slug, title, starts_at, venue, city, location, image, ticket_url)
			VALUES (@slug, @title, @starts_at, @venue, @city, @location, @image, @ticket_url)
			RETURNING *
		), linked AS (
			INSERT INTO event_artists (event_id, artist_id, position)
			SELECT e.id, l.artist_id, l.position
			FROM e, unnest(@artist_ids::uuid[]) WITH ORDINALITY AS l(artist_id, position)
		)
		SELECT ` + eventColumns + ` FROM e`

	artistIDs := make([]uuid.UUID, len(event.Artists))
	for i, a := range event.Artists {
		artistIDs[i] = a.ID
	}

	args := pgx.NamedArgs{
		"slug":       event.Slug,
		"title":      event.Title,
		"starts_at":  event.StartsAt,
		"venue":      event.Venue,
		"city":       event.City,
		"location":   event.Location,
		"image":      event.Image,
		"ticket_url": event.TicketURL,
		"artist_ids": artistIDs,
	}

	result, err := scanEvent(r.db.QueryRow(ctx, q, args))
	if err != nil {
		switch pgCode(err) {
		case codeUniqueViolation:
			return domain.Event{}, fmt.Errorf("repo.EventRepo.Create: slug %q: %w", event.Slug, domain.ErrConflict)
		case codeForeignKeyViolation:
			return domain.Event{}, fmt.Errorf("repo.EventRepo.Create: artist: %w", domain.ErrNotFound)
		}
		return domain.Event{}, fmt.Errorf("repo.EventRepo.Create: %w", err)
	}

	result.Artists = append([]domain.ArtistRef{}, event.Artists...)
	return result, nil
}

// GetBySlug retrieves an event by slug, then loads its artists.
func (r *pgEventRepo) GetBySlug(ctx context.Context, slug string) (domain.Event, error) {
	q := `SELECT ` + eventColumns + `
		FROM events e
		WHERE e.slug = @slug`

	result, err := scanEvent(r.db.QueryRow(ctx, q, pgx.NamedArgs{"slug": slug}))
	if err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.GetBySlug: %w", err)
	}

	events := []domain.Event{result}
	if err := r.attachArtists(ctx, events); err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.GetBySlug: %w", err)
	}
	return events[0], nil
}

// ListPaged returns one page of events ordered by starts_at ascending.
func (r *pgEventRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Event, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM events`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.EventRepo.ListPaged: count: %w", err)
	}

	q := `SELECT ` + eventColumns + `
		FROM events e
		ORDER BY e.starts_at, e.slug
		LIMIT @limit OFFSET @offset`

	events, err := r.queryEvents(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.EventRepo.ListPaged: %w", err)
	}
	return events, total, nil
}

// ListUpcoming returns events with starts_at >= from, soonest first.
func (r *pgEventRepo) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]domain.Event, error) {
	q := `SELECT ` + eventColumns + `
		FROM events e
		WHERE e.starts_at >= @from
		ORDER BY e.starts_at, e.slug
		LIMIT @limit`

	events, err := r.queryEvents(ctx, q, pgx.NamedArgs{"from": from, "limit": limit})
	if err != nil {
		return nil, fmt.Errorf("repo.EventRepo.ListUpcoming: %w", err)
	}
	return events, nil
}

// queryEvents runs q, scans every event, then attaches artists with one
// extra query for the whole page.
func (r *pgEventRepo) queryEvents(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Event, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}

	events := []domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan: %w", err)
		}
		events = append(events, e)
	}
	// Close before the next query: a pgx.Tx cannot run two queries at once.
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if err := r.attachArtists(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}

// attachArtists fills Artists on every event in place.
func (r *pgEventRepo) attachArtists(ctx context.Context, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(events))
	index := make(map[uuid.UUID]int, len(events))
	for i, e := range events {
		ids[i] = e.ID
		index[e.ID] = i
		events[i].Artists = []domain.ArtistRef{}
	}

	const q = `
		SELECT ea.event_id, a.id, a.slug, a.name
		FROM event_artists ea
		JOIN artists a ON a.id = ea.artist_id
		WHERE ea.event_id = ANY(@ids)
		ORDER BY ea.event_id, ea.position`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return fmt.Errorf("artists: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			eventID  pgtype.UUID
			artistID pgtype.UUID
			ref      domain.ArtistRef
		)
		if err := rows.Scan(&eventID, &artistID, &ref.Slug, &ref.Name); err != nil {
			return fmt.Errorf("artists: scan: %w", err)
		}
		ref.ID = uuid.UUID(artistID.Bytes)
		i := index[uuid.UUID(eventID.Bytes)]
		events[i].Artists = append(events[i].Artists, ref)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("artists: rows: %w", err)
	}
	return nil
}

// scanEvent maps a single database row into a domain.Event without artists.
func scanEvent(s scanner) (domain.Event, error) {
	var (
		e  domain.Event
		id pgtype.UUID
	)
	err := s.Scan(&id, &e.Slug, &e.Title, &e.StartsAt, &e.Venue, &e.City, &e.Location,
		&e.Image, &e.TicketURL, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Event{}, domain.ErrNotFound
		}
		return domain.Event{}, err
	}
	e.ID = uuid.UUID(id.Bytes)
	return e, nil
}
