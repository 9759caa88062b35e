// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pdiddy/itinerary-engine/pkg/types"
)

// SavePreferences creates or replaces the preferences for userID.
func (s *Store) SavePreferences(ctx context.Context, userID string, p types.Preferences) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	extraJSON, err := json.Marshal(p.Extra)
	if err != nil {
		return fmt.Errorf("marshaling extra preferences: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO preferences (user_id, budget, travel_style, extra, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
			budget=excluded.budget, travel_style=excluded.travel_style,
			extra=excluded.extra, updated_at=excluded.updated_at`,
		userID, p.Budget, p.TravelStyle, string(extraJSON), formatTimestamp(s.now()),
	)
	if err != nil {
		return fmt.Errorf("upserting preferences: %w", err)
	}
	return nil
}

// GetPreferences returns the stored preferences for userID. The boolean is
// false when none have been saved.
func (s *Store) GetPreferences(ctx context.Context, userID string) (types.Preferences, bool, error) {
	var (
		p         types.Preferences
		budget    sql.NullString
		style     sql.NullString
		extraJSON sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT budget, travel_style, extra FROM preferences WHERE user_id = ?`, userID,
	).Scan(&budget, &style, &extraJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Preferences{}, false, nil
	}
	if err != nil {
		return types.Preferences{}, false, fmt.Errorf("querying preferences: %w", err)
	}

	p.Budget = budget.String
	p.TravelStyle = style.String
	if extraJSON.Valid && extraJSON.String != "" && extraJSON.String != "null" {
		if err := json.Unmarshal([]byte(extraJSON.String), &p.Extra); err != nil {
			return types.Preferences{}, false, fmt.Errorf("decoding extra preferences: %w", err)
		}
	}
	return p, true, nil
}
