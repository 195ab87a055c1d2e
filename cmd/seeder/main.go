package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/arena-agenda/internal/database"
	"github.com/spf13/cobra"
)

var seedFile string

var rootCmd = &cobra.Command{
	Use:   "arena-seeder",
	Short: "Load courts and weekly schedules from a YAML file into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info("Starting database seeder...")
		cfg := loadConfig()

		file, err := loadSeedFile(seedFile)
		if err != nil {
			return err
		}

		db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer teardown()

		result, err := seed(context.Background(), db, file)
		if err != nil {
			return err
		}
		log.Info("Seeding finished", "courts", result.Courts, "schedules", result.Schedules)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&seedFile, "file", "f", "seed.yaml", "YAML file with courts and schedules")
}

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	if value, ok := os.LookupEnv("DB_NAME"); ok {
		config["DB_NAME"] = value
	} else {
		log.Fatalf("Error: Required environment variable %s is not set.", "DB_NAME")
	}
	config["TURSO_PRIMARY_URL"] = os.Getenv("TURSO_PRIMARY_URL")
	config["TURSO_AUTH_TOKEN"] = os.Getenv("TURSO_AUTH_TOKEN")
	return config
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal("Seeder failed", "error", err)
	}
}
