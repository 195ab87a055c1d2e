package main

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	host    string
	timeout time.Duration
	verbose bool

	httpClient = &http.Client{Timeout: 10 * time.Second}
)

var rootCmd = &cobra.Command{
	Use:   "arena-cli",
	Short: "Query court slots and agendas on an arena-agenda server",
	Long: `arena-cli talks to the REST API of an arena-agenda server. It lists courts
(optionally the nearest to a coordinate), shows the bookable slots and the
per-slot agenda of a court on a day such as "hoje", "amanhã" or 09/03/2026,
reads and replaces weekly schedules, and cancels matches.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		normalized, err := normalizeHost(host)
		if err != nil {
			return err
		}
		host = normalized
		httpClient.Timeout = timeout
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "Base URL of the arena-agenda server")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Ask the server to log this request at debug level")
}

// normalizeHost requires an http(s) URL and strips trailing slashes so
// endpoint paths can be appended directly.
func normalizeHost(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("invalid --host %q: expected http(s)://host[:port]", raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
