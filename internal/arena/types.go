package arena

import (
	"errors"

	"github.com/mauv0809/arena-agenda/internal/agenda"
)

var (
	ErrInvalidDay       = errors.New("day is not a recognisable date")
	ErrUnknownDraftKind = errors.New("unknown draft kind")
)

// Day is the agenda of one court on one local calendar day.
type Day struct {
	CourtID string            `json:"courtId"`
	Day     string            `json:"day"`
	Slots   []agenda.SlotView `json:"slots"`
	// OffGrid holds entries whose hour does not fall on a generated slot,
	// such as a 22:30 match on an hourly grid.
	OffGrid []agenda.Entry `json:"offGrid"`
	// MatchesFetchedAt is set when match entries came from the feed instead
	// of a live fetch.
	MatchesFetchedAt string `json:"matchesFetchedAt,omitempty"`
}

// DraftRequest is a local booking or block to add to a session.
type DraftRequest struct {
	Kind     agenda.Kind `json:"kind"`
	CourtID  string      `json:"courtId"`
	Day      string      `json:"day"`
	Hour     string      `json:"hour"`
	Title    string      `json:"title"`
	Price    float64     `json:"price"`
	Customer string      `json:"customer"`
}
