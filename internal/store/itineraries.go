// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pdiddy/itinerary-engine/pkg/types"
)

// ErrNotFound is returned when a requested itinerary does not exist.
var ErrNotFound = errors.New("itinerary not found")

// SaveItinerary stores it and returns the stored record. ID, Destination,
// Status, date range, and CreatedAt are filled in when zero: the
// destination from the query and the dates from the content.
func (s *Store) SaveItinerary(ctx context.Context, it types.SavedItinerary) (types.SavedItinerary, error) {
	if it.UserID == "" {
		return it, errors.New("user id is required")
	}
	if it.Content == "" {
		return it, errors.New("itinerary content is empty")
	}

	now := s.now()
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if it.Destination == "" {
		it.Destination = ExtractDestination(it.Query)
	}
	if it.Status == "" {
		it.Status = types.StatusActive
	}
	if it.StartDate.IsZero() || it.EndDate.IsZero() {
		it.StartDate, it.EndDate = EstimateDateRange(it.Content, now)
	}
	if it.CreatedAt.IsZero() {
		it.CreatedAt = now.UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO itineraries (id, user_id, destination, status, start_date, end_date,
			query, changes, plan_id, alternative, content, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.UserID, it.Destination, string(it.Status),
		it.StartDate.Format(dateLayout), it.EndDate.Format(dateLayout),
		it.Query, it.Changes, it.PlanID, it.Alternative, it.Content,
		formatTimestamp(it.CreatedAt),
	)
	if err != nil {
		return it, fmt.Errorf("inserting itinerary: %w", err)
	}
	return it, nil
}

const itineraryColumns = `id, user_id, destination, status, start_date, end_date,
	query, changes, plan_id, alternative, content, created_at`

// GetItinerary returns the itinerary with the given ID or ErrNotFound.
func (s *Store) GetItinerary(ctx context.Context, id string) (types.SavedItinerary, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+itineraryColumns+` FROM itineraries WHERE id = ?`, id)
	it, err := scanItinerary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.SavedItinerary{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return it, err
}

// ListItineraries returns saved itineraries newest first. An empty userID
// lists every user's itineraries.
func (s *Store) ListItineraries(ctx context.Context, userID string) ([]types.SavedItinerary, error) {
	query := `SELECT ` + itineraryColumns + ` FROM itineraries`
	var args []any
	if userID != "" {
		query += ` WHERE user_id = ?`
		args = append(args, userID)
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying itineraries: %w", err)
	}
	defer rows.Close()

	var out []types.SavedItinerary
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// SetStatus changes an itinerary's status.
func (s *Store) SetStatus(ctx context.Context, id string, status types.ItineraryStatus) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE itineraries SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItinerary(row rowScanner) (types.SavedItinerary, error) {
	var (
		it                     types.SavedItinerary
		status, start, end     string
		createdAt              string
		query, changes, planID sql.NullString
		alternative            sql.NullInt64
	)
	err := row.Scan(&it.ID, &it.UserID, &it.Destination, &status, &start, &end,
		&query, &changes, &planID, &alternative, &it.Content, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return it, err
		}
		return it, fmt.Errorf("scanning itinerary: %w", err)
	}

	it.Status = types.ItineraryStatus(status)
	it.StartDate = parseDate(start)
	it.EndDate = parseDate(end)
	it.Query = query.String
	it.Changes = changes.String
	it.PlanID = planID.String
	it.Alternative = int(alternative.Int64)
	it.CreatedAt = parseTimestamp(createdAt)
	return it, nil
}
