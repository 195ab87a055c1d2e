package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/arena-agenda/internal/court"
	"github.com/mauv0809/arena-agenda/internal/schedule"
	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML layout read by the seeder.
type SeedFile struct {
	Courts []SeedCourt `yaml:"courts"`
}

// SeedCourt is a court with an optional weekly template. Courts without a
// template get the default the first time they are viewed.
type SeedCourt struct {
	court.Court `yaml:",inline"`
	Schedule    *schedule.WeeklyTemplate `yaml:"schedule"`
}

type seedResult struct {
	Courts    int
	Schedules int
}

func loadSeedFile(path string) (SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SeedFile{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	var file SeedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return SeedFile{}, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return file, nil
}

// seed upserts every court and replaces the templates the file carries.
// Templates are validated before anything is written.
func seed(ctx context.Context, db *sql.DB, file SeedFile) (seedResult, error) {
	for i, c := range file.Courts {
		if c.Schedule == nil {
			continue
		}
		if err := schedule.Validate(*c.Schedule); err != nil {
			return seedResult{}, fmt.Errorf("court %d (%s): %w", i, c.Name, err)
		}
	}

	courts := court.New(db)
	schedules := schedule.New(db)
	var result seedResult
	for _, c := range file.Courts {
		if strings.TrimSpace(c.ID) == "" {
			c.ID = uuid.NewString()
			log.Info("Generated id for court", "name", c.Name, "id", c.ID)
		}
		if err := courts.Upsert(ctx, c.Court); err != nil {
			return result, err
		}
		result.Courts++
		if c.Schedule != nil {
			if err := schedules.Set(ctx, c.ID, *c.Schedule); err != nil {
				return result, err
			}
			result.Schedules++
		}
		log.Debug("Seeded court", "id", c.ID, "name", c.Name, "schedule", c.Schedule != nil)
	}
	return result, nil
}
