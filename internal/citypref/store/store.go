package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/nomadmatch/internal/citypref"
)

// Schema creates the table backing Store. It is safe to run on every start.
const Schema = `
	CREATE TABLE IF NOT EXISTS city_preferences (
		user_id    UUID        NOT NULL,
		city_name  TEXT        NOT NULL,
		action     TEXT        NOT NULL CHECK (action IN ('like', 'dislike')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (user_id, city_name)
	)
`

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("creating city_preferences: %w", err)
	}

	return nil
}

func (s *Store) Upsert(ctx context.Context, p *citypref.Preference) error {
	query := `
		INSERT INTO city_preferences (user_id, city_name, action, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, city_name)
		DO UPDATE SET action = EXCLUDED.action, created_at = NOW()
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query, p.UserID, p.CityName, p.Action).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("upserting city preference: %w", err)
	}

	return nil
}

func (s *Store) List(ctx context.Context, userID uuid.UUID) ([]*citypref.Preference, error) {
	query := `
		SELECT user_id, city_name, action, created_at
		FROM city_preferences
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying city preferences: %w", err)
	}
	defer rows.Close()

	var prefs []*citypref.Preference

	for rows.Next() {
		var (
			p      citypref.Preference
			action string
		)

		if err := rows.Scan(&p.UserID, &p.CityName, &action, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning city preference: %w", err)
		}

		p.Action = citypref.Action(action)
		prefs = append(prefs, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating city preferences: %w", err)
	}

	return prefs, nil
}

func (s *Store) Delete(ctx context.Context, userID uuid.UUID, cityName string) (bool, error) {
	query := `DELETE FROM city_preferences WHERE user_id = $1 AND city_name = $2`

	res, err := s.db.ExecContext(ctx, query, userID, cityName)
	if err != nil {
		return false, fmt.Errorf("deleting city preference: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking deleted rows: %w", err)
	}

	return n > 0, nil
}

func (s *Store) ListCities(ctx context.Context, userID uuid.UUID, action citypref.Action) ([]string, error) {
	query := `
		SELECT city_name
		FROM city_preferences
		WHERE user_id = $1 AND action = $2
		ORDER BY city_name
	`

	rows, err := s.db.QueryContext(ctx, query, userID, action)
	if err != nil {
		return nil, fmt.Errorf("querying %s cities: %w", action, err)
	}
	defer rows.Close()

	var cities []string

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning city name: %w", err)
		}

		cities = append(cities, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s cities: %w", action, err)
	}

	return cities, nil
}
