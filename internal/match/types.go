package match

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

var ErrCancelUnsupported = errors.New("match source does not support cancellation")

// Record is a match reservation as returned by the match backend. The backend
// is loose about shapes: ids and timestamps may arrive as strings or numbers,
// the timestamp may live in date, time or startAt, and the status may be
// nested under admin.
type Record struct {
	ID             string          `json:"id"`
	CourtID        string          `json:"courtId"`
	Date           string          `json:"date,omitempty"`
	Time           string          `json:"time,omitempty"`
	StartAt        string          `json:"startAt,omitempty"`
	MaxPlayers     int             `json:"maxPlayers"`
	PricePerPlayer float64         `json:"pricePerPlayer"`
	Presences      []Presence      `json:"presences"`
	Status         string          `json:"status"`
	Organizer      Organizer       `json:"organizer"`
	Raw            json.RawMessage `json:"-"`
}

// Organizer is the player or staff member who created the match.
type Organizer struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Presence is a confirmed participant. Only its presence is counted.
type Presence struct {
	UserID string `json:"userId,omitempty"`
	Name   string `json:"name,omitempty"`
}

type wireRecord struct {
	ID             json.RawMessage   `json:"id"`
	CourtID        json.RawMessage   `json:"courtId"`
	Date           json.RawMessage   `json:"date"`
	Time           json.RawMessage   `json:"time"`
	StartAt        json.RawMessage   `json:"startAt"`
	MaxPlayers     json.Number       `json:"maxPlayers"`
	PricePerPlayer json.Number       `json:"pricePerPlayer"`
	Presences      []json.RawMessage `json:"presences"`
	Status         string            `json:"status"`
	Admin          *struct {
		Status string `json:"status"`
	} `json:"admin"`
	Organizer Organizer `json:"organizer"`
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var w wireRecord
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&w); err != nil {
		return err
	}

	*r = Record{
		ID:        flexString(w.ID),
		CourtID:   flexString(w.CourtID),
		Date:      flexString(w.Date),
		Time:      flexString(w.Time),
		StartAt:   flexString(w.StartAt),
		Status:    w.Status,
		Organizer: w.Organizer,
		Raw:       append(json.RawMessage(nil), data...),
	}
	if r.Status == "" && w.Admin != nil {
		r.Status = w.Admin.Status
	}
	if n, err := w.MaxPlayers.Int64(); err == nil {
		r.MaxPlayers = int(n)
	}
	if f, err := w.PricePerPlayer.Float64(); err == nil {
		r.PricePerPlayer = f
	}
	for _, p := range w.Presences {
		var presence Presence
		// Presences are sometimes bare user ids.
		if err := json.Unmarshal(p, &presence); err != nil {
			presence.UserID = flexString(p)
		}
		r.Presences = append(r.Presences, presence)
	}
	return nil
}

// flexString reads a JSON string or number as text. Anything else is "".
func flexString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
