package match

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rafa-garcia/go-playtomic-api/client"
	"github.com/rafa-garcia/go-playtomic-api/models"
)

const (
	playtomicPageSize      = 300
	playtomicLayout        = "2006-01-02T15:04:05"
	playtomicDefaultSport  = "PADEL"
	playtomicDefaultPlayer = 4
)

// PlaytomicRepository reads reservations for clubs whose courts are listed on
// Playtomic. Court ids are Playtomic resource ids.
type PlaytomicRepository struct {
	httpClient *http.Client
	apiClient  *client.Client
	BaseURL    string
	tenantID   string
	sportID    string
	now        func() time.Time
}

// NewPlaytomicRepository creates a repository for one Playtomic tenant.
func NewPlaytomicRepository(tenantID string) *PlaytomicRepository {
	return &PlaytomicRepository{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiClient:  client.NewClient(client.WithTimeout(10 * time.Second)),
		BaseURL:    "https://api.playtomic.io",
		tenantID:   tenantID,
		sportID:    playtomicDefaultSport,
		now:        time.Now,
	}
}

// Ensure PlaytomicRepository implements the Repository interface.
var _ Repository = (*PlaytomicRepository)(nil)

// ListByCourt searches the tenant's matches from yesterday onwards and keeps
// those played on courtID.
func (p *PlaytomicRepository) ListByCourt(ctx context.Context, courtID string) ([]Record, error) {
	ids, err := p.searchMatchIDs(ctx)
	if err != nil {
		return nil, err
	}

	var (
		records []Record
		mu      sync.Mutex
		wg      sync.WaitGroup
	)
	for _, id := range ids {
		wg.Add(1)
		go func(matchID string) {
			defer wg.Done()
			detail, err := p.getMatch(ctx, matchID)
			if err != nil {
				log.Error("Error fetching specific match", "matchID", matchID, "error", err)
				return
			}
			if detail.ResourceID != courtID {
				return
			}
			rec, err := detail.toRecord(matchID)
			if err != nil {
				log.Warn("Skipping Playtomic match with unreadable start date", "matchID", matchID, "error", err)
				return
			}
			mu.Lock()
			records = append(records, rec)
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	log.Info("Fetched matches from Playtomic", "courtID", courtID, "searched", len(ids), "count", len(records))
	return records, nil
}

// Cancel is not available through the public Playtomic API.
func (p *PlaytomicRepository) Cancel(_ context.Context, matchID string) error {
	return fmt.Errorf("%w: playtomic match %s", ErrCancelUnsupported, matchID)
}

func (p *PlaytomicRepository) searchMatchIDs(ctx context.Context) ([]string, error) {
	from := p.now().AddDate(0, 0, -1).UTC().Format("2006-01-02") + "T00:00:00"

	var ids []string
	for page := 0; ; page++ {
		params := &models.SearchMatchesParams{
			SportID:       p.sportID,
			HasPlayers:    false,
			Sort:          "start_date,ASC",
			TenantIDs:     []string{p.tenantID},
			FromStartDate: from,
			Size:          playtomicPageSize,
			Page:          page,
		}
		log.Debug("Fetching matches from Playtomic API", "params", params)
		matches, err := p.apiClient.GetMatches(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("error fetching matches from playtomic api: %w", err)
		}
		for _, m := range matches {
			ids = append(ids, m.MatchID)
		}
		if len(matches) < playtomicPageSize {
			break
		}
	}
	return ids, nil
}

func (p *PlaytomicRepository) getMatch(ctx context.Context, matchID string) (playtomicMatch, error) {
	endpoint := fmt.Sprintf("%s/v1/matches/%s", p.BaseURL, matchID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return playtomicMatch{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "ArenaAgenda/1.0")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return playtomicMatch{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error("Received non-OK HTTP status from Playtomic API", "status", resp.StatusCode, "body", string(body))
		return playtomicMatch{}, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	var m playtomicMatch
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return playtomicMatch{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return m, nil
}

// playtomicMatch is the subset of the match detail response used here.
type playtomicMatch struct {
	OwnerID      string `json:"owner_id"`
	StartDate    string `json:"start_date"`
	Status       string `json:"status"`
	GameStatus   string `json:"game_status"`
	ResourceID   string `json:"resource_id"`
	ResourceName string `json:"resource_name"`
	Price        string `json:"price"`
	Teams        []struct {
		Players []struct {
			UserID string `json:"user_id"`
			Name   string `json:"name"`
		} `json:"players"`
	} `json:"teams"`
}

func (m playtomicMatch) toRecord(matchID string) (Record, error) {
	// Playtomic start dates are UTC without a zone suffix.
	start, err := time.Parse(playtomicLayout, m.StartDate)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		ID:         matchID,
		CourtID:    m.ResourceID,
		StartAt:    start.UTC().Format(time.RFC3339),
		MaxPlayers: playtomicDefaultPlayer,
		Status:     m.Status,
	}
	if strings.EqualFold(m.GameStatus, "CANCELED") {
		rec.Status = "canceled"
	}
	for _, team := range m.Teams {
		for _, player := range team.Players {
			rec.Presences = append(rec.Presences, Presence{UserID: player.UserID, Name: player.Name})
			if player.UserID == m.OwnerID {
				rec.Organizer = Organizer{Name: player.Name, Role: "owner"}
			}
		}
	}
	// Price arrives as "20 EUR" for the whole court.
	if fields := strings.Fields(m.Price); len(fields) > 0 {
		if total, err := strconv.ParseFloat(fields[0], 64); err == nil {
			rec.PricePerPlayer = total / float64(rec.MaxPlayers)
		}
	}
	return rec, nil
}
