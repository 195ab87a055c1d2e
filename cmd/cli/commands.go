package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

var (
	lat, lng     string
	limit        int
	date         string
	day          string
	session      string
	cached       bool
	dryRun       bool
	templateFile string
)

func init() {
	courtsCmd.Flags().StringVar(&lat, "lat", "", "Latitude to order courts by distance from")
	courtsCmd.Flags().StringVar(&lng, "lng", "", "Longitude to order courts by distance from")
	courtsCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of courts when ordering by distance")

	slotsCmd.Flags().StringVar(&date, "date", "", "Day to list slots for (YYYY-MM-DD, DD/MM/YYYY, today, tomorrow)")

	agendaCmd.Flags().StringVar(&day, "day", "", "Day to show (defaults to today on the server)")
	agendaCmd.Flags().StringVar(&session, "session", "", "Draft session to overlay")
	agendaCmd.Flags().BoolVar(&cached, "cached", false, "Use the last prefetched match list")

	scheduleSetCmd.Flags().StringVarP(&templateFile, "file", "f", "", "JSON file holding the weekly template")
	scheduleSetCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate without saving")
	_ = scheduleSetCmd.MarkFlagRequired("file")
	scheduleCmd.AddCommand(scheduleGetCmd, scheduleSetCmd)

	cancelCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log the cancellation without sending it")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(courtsCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(agendaCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var courtsCmd = &cobra.Command{
	Use:   "courts",
	Short: "List courts, optionally nearest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		if lat != "" || lng != "" {
			q.Set("lat", lat)
			q.Set("lng", lng)
			if limit > 0 {
				q.Set("limit", fmt.Sprint(limit))
			}
		}
		return performGetRequest(withQuery("/api/courts", q))
	},
}

var slotsCmd = &cobra.Command{
	Use:   "slots <courtID>",
	Short: "List the bookable slots of a court on a day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		if date != "" {
			q.Set("date", date)
		}
		return performGetRequest(withQuery("/api/courts/"+url.PathEscape(args[0])+"/slots", q))
	},
}

var agendaCmd = &cobra.Command{
	Use:   "agenda <courtID>",
	Short: "Show the per-slot agenda of a court",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		if day != "" {
			q.Set("day", day)
		}
		if session != "" {
			q.Set("session", session)
		}
		if cached {
			q.Set("cached", "true")
		}
		return performGetRequest(withQuery("/api/courts/"+url.PathEscape(args[0])+"/agenda", q))
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Read or replace the weekly schedule of a court",
}

var scheduleGetCmd = &cobra.Command{
	Use:   "get <courtID>",
	Short: "Print the weekly schedule of a court",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/courts/" + url.PathEscape(args[0]) + "/schedule")
	},
}

var scheduleSetCmd = &cobra.Command{
	Use:   "set <courtID>",
	Short: "Replace the weekly schedule of a court with a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := os.ReadFile(templateFile)
		if err != nil {
			return fmt.Errorf("failed to read template file: %w", err)
		}
		q := url.Values{}
		if dryRun {
			q.Set("dry_run", "true")
		}
		return performRequest(http.MethodPut, withQuery("/api/courts/"+url.PathEscape(args[0])+"/schedule", q), body)
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <matchID>",
	Short: "Ask the match backend to cancel a match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		if dryRun {
			q.Set("dry_run", "true")
		}
		return performRequest(http.MethodPost, withQuery("/api/matches/"+url.PathEscape(args[0])+"/cancel", q), nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func withQuery(endpoint string, q url.Values) string {
	if len(q) == 0 {
		return endpoint
	}
	return endpoint + "?" + q.Encode()
}

func performGetRequest(endpoint string) error {
	return performRequest(http.MethodGet, endpoint, nil)
}

func performRequest(method, endpoint string, body []byte) error {
	target := host + endpoint
	if verbose {
		u, err := url.Parse(target)
		if err != nil {
			return fmt.Errorf("failed to parse target: %w", err)
		}
		q := u.Query()
		q.Set("verbose", "true")
		u.RawQuery = q.Encode()
		target = u.String()
	}
	fmt.Printf("Making %s request to %s\n", method, target)

	req, err := http.NewRequest(method, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	return nil
}
