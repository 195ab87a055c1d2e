package court

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

type store struct {
	db *sql.DB
}

// New creates a Repository backed by the courts table.
func New(db *sql.DB) Repository {
	return &store{db: db}
}

const courtColumns = "id, name, arena_id, arena_name, sport, latitude, longitude"

func (s *store) Get(ctx context.Context, id string) (Court, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+courtColumns+" FROM courts WHERE id = ?", id)
	c, err := scanCourt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Court{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Court{}, fmt.Errorf("failed to read court %s: %w", id, err)
	}
	return c, nil
}

func (s *store) List(ctx context.Context) ([]Court, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+courtColumns+" FROM courts ORDER BY arena_name, name")
	if err != nil {
		log.Error("Failed to query courts", "error", err)
		return nil, err
	}
	defer rows.Close()

	courts := []Court{}
	for rows.Next() {
		c, err := scanCourt(rows)
		if err != nil {
			log.Error("Failed to scan court row", "error", err)
			continue
		}
		courts = append(courts, c)
	}
	return courts, rows.Err()
}

func (s *store) Upsert(ctx context.Context, c Court) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO courts (`+courtColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			arena_id = excluded.arena_id,
			arena_name = excluded.arena_name,
			sport = excluded.sport,
			latitude = excluded.latitude,
			longitude = excluded.longitude;
	`, c.ID, c.Name, c.ArenaID, c.ArenaName, c.Sport, c.Latitude, c.Longitude)
	if err != nil {
		return fmt.Errorf("failed to upsert court %s: %w", c.ID, err)
	}
	return nil
}

func scanCourt(scanner interface{ Scan(...any) error }) (Court, error) {
	var c Court
	err := scanner.Scan(&c.ID, &c.Name, &c.ArenaID, &c.ArenaName, &c.Sport, &c.Latitude, &c.Longitude)
	return c, err
}
