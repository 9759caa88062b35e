// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pdiddy/itinerary-engine/pkg/types"
)

// RecordSubmission stores one row per event result for itineraryID, in a
// single transaction.
func (s *Store) RecordSubmission(ctx context.Context, itineraryID string, results []types.EventResult) error {
	if _, err := s.GetItinerary(ctx, itineraryID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO submissions (itinerary_id, event_id, summary, start, error, submitted_at)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	submittedAt := formatTimestamp(s.now())
	for _, r := range results {
		errText := ""
		if r.Err != nil {
			errText = r.Err.Error()
		}
		_, err := stmt.ExecContext(ctx,
			itineraryID, r.EventID, r.Spec.Summary, formatTimestamp(r.Spec.Start),
			errText, submittedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting submission %q: %w", r.Spec.Summary, err)
		}
	}

	return tx.Commit()
}

// Submissions returns the recorded events for itineraryID in insertion order.
func (s *Store) Submissions(ctx context.Context, itineraryID string) ([]types.SubmissionRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT event_id, summary, start, error, submitted_at
		 FROM submissions WHERE itinerary_id = ? ORDER BY rowid`, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("querying submissions: %w", err)
	}
	defer rows.Close()

	var out []types.SubmissionRecord
	for rows.Next() {
		var (
			rec            types.SubmissionRecord
			eventID, errS  sql.NullString
			start, atStamp string
		)
		if err := rows.Scan(&eventID, &rec.Summary, &start, &errS, &atStamp); err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		rec.ItineraryID = itineraryID
		rec.EventID = eventID.String
		rec.Error = errS.String
		rec.Start = parseTimestamp(start)
		rec.SubmittedAt = parseTimestamp(atStamp)
		out = append(out, rec)
	}
	return out, rows.Err()
}
