package match

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// APIClient reads matches from the app backend's REST API.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
	token      string
}

// NewClient creates a client for the backend at baseURL. token, when set, is
// sent as a bearer token.
func NewClient(baseURL, token string) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}

// Ensure APIClient implements the Repository interface.
var _ Repository = (*APIClient)(nil)

// ListByCourt fetches the matches of a court. There is no retry: a failed
// fetch is reported and the caller decides how to degrade.
func (c *APIClient) ListByCourt(ctx context.Context, courtID string) ([]Record, error) {
	endpoint := fmt.Sprintf("%s/matches?courtId=%s", c.BaseURL, url.QueryEscape(courtID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	log.Debug("Requesting matches from backend", "url", endpoint)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error("Received non-OK HTTP status from match backend", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	records, err := decodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	log.Info("Fetched matches from backend", "courtID", courtID, "count", len(records))
	return records, nil
}

// Cancel asks the backend to cancel a match.
func (c *APIClient) Cancel(ctx context.Context, matchID string) error {
	endpoint := fmt.Sprintf("%s/matches/%s/cancel", c.BaseURL, url.PathEscape(matchID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader([]byte("{}")))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		log.Error("Backend refused match cancellation", "matchID", matchID, "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}
	log.Info("Requested match cancellation", "matchID", matchID)
	return nil
}

func (c *APIClient) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "ArenaAgenda/1.0")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// decodeRecords accepts either a bare array or an object wrapping the array
// in "data" or "matches". Records that fail to decode are skipped.
func decodeRecords(body []byte) ([]Record, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}
	var raws []json.RawMessage
	if body[0] == '[' {
		if err := json.Unmarshal(body, &raws); err != nil {
			return nil, err
		}
	} else {
		var envelope struct {
			Data    []json.RawMessage `json:"data"`
			Matches []json.RawMessage `json:"matches"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, err
		}
		raws = envelope.Data
		if len(raws) == 0 {
			raws = envelope.Matches
		}
	}

	records := make([]Record, 0, len(raws))
	for i, raw := range raws {
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			log.Warn("Skipping undecodable match record", "index", i, "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
