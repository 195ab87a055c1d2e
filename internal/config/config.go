package config

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	cfg := Config{
		DBName: getEnv("DB_NAME"),
		Port:   getEnv("PORT"),
		Turso: TursoConfig{
			PrimaryURL: os.Getenv("TURSO_PRIMARY_URL"),
			AuthToken:  os.Getenv("TURSO_AUTH_TOKEN"),
		},
		Matches: MatchSourceConfig{
			Source:            getEnvDefault("MATCH_SOURCE", MatchSourceBackend),
			BaseURL:           os.Getenv("MATCH_API_URL"),
			Token:             os.Getenv("MATCH_API_TOKEN"),
			PlaytomicTenantID: os.Getenv("PLAYTOMIC_TENANT_ID"),
		},
		Location:  LoadLocation(getEnvDefault("TIME_ZONE", defaultTimeZone)),
		ProjectID: os.Getenv("GCP_PROJECT"),
	}

	switch cfg.Matches.Source {
	case MatchSourceBackend:
		if cfg.Matches.BaseURL == "" {
			log.Fatal("MATCH_API_URL is required when MATCH_SOURCE=backend")
		}
	case MatchSourcePlaytomic:
		if cfg.Matches.PlaytomicTenantID == "" {
			log.Fatal("PLAYTOMIC_TENANT_ID is required when MATCH_SOURCE=playtomic")
		}
	default:
		log.Fatalf("Unknown MATCH_SOURCE %q", cfg.Matches.Source)
	}
	return cfg
}

// LoadLocation resolves an IANA zone name, falling back to the process local zone.
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn("Unknown time zone, using local time", "time_zone", name, "error", err)
		return time.Local
	}
	return loc
}

func getEnvDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
