package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// sqlStore persists templates in the schedules table as JSON text.
type sqlStore struct {
	db *sql.DB
	mu sync.Mutex
}

// New creates a Store backed by the given database.
func New(db *sql.DB) Store {
	return &sqlStore{db: db}
}

func (s *sqlStore) Get(ctx context.Context, courtID string) (WeeklyTemplate, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT template_json FROM schedules WHERE court_id = ?", courtID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return WeeklyTemplate{}, false, nil
	}
	if err != nil {
		return WeeklyTemplate{}, false, fmt.Errorf("failed to read schedule for court %s: %w", courtID, err)
	}

	var tpl WeeklyTemplate
	if err := json.Unmarshal([]byte(raw), &tpl); err != nil {
		return WeeklyTemplate{}, false, fmt.Errorf("failed to decode schedule for court %s: %w", courtID, err)
	}
	return tpl, true, nil
}

func (s *sqlStore) Set(ctx context.Context, courtID string, tpl WeeklyTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setLocked(ctx, courtID, tpl)
}

func (s *sqlStore) setLocked(ctx context.Context, courtID string, tpl WeeklyTemplate) error {
	raw, err := json.Marshal(tpl)
	if err != nil {
		return fmt.Errorf("failed to encode schedule for court %s: %w", courtID, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO schedules (court_id, template_json, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(court_id) DO UPDATE SET
			template_json = excluded.template_json,
			updated_at = excluded.updated_at;
	`, courtID, string(raw), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to save schedule for court %s: %w", courtID, err)
	}
	log.Info("Saved weekly template", "courtID", courtID, "slot_minutes", tpl.SlotMinutes)
	return nil
}

func (s *sqlStore) EnsureDefault(ctx context.Context, courtID string) (WeeklyTemplate, error) {
	// Held across read and insert so two first views cannot both create a default.
	s.mu.Lock()
	defer s.mu.Unlock()

	tpl, ok, err := s.Get(ctx, courtID)
	if err != nil {
		return WeeklyTemplate{}, err
	}
	if ok {
		return tpl, nil
	}

	tpl = Default()
	if err := s.setLocked(ctx, courtID, tpl); err != nil {
		return WeeklyTemplate{}, err
	}
	log.Info("Created default weekly template", "courtID", courtID)
	return tpl, nil
}
