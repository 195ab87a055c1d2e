package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName    string
	Port      string
	Turso     TursoConfig
	Matches   MatchSourceConfig
	Location  *time.Location
	ProjectID string
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// MatchSourceConfig selects where authoritative match reservations come from.
type MatchSourceConfig struct {
	Source            string // "backend" or "playtomic"
	BaseURL           string
	Token             string
	PlaytomicTenantID string
}

const (
	MatchSourceBackend   = "backend"
	MatchSourcePlaytomic = "playtomic"

	defaultTimeZone = "America/Sao_Paulo"
)
