package match

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/arena-agenda/internal/agenda"
	"github.com/mauv0809/arena-agenda/internal/calendar"
)

// ToEntries turns records into match agenda entries. Records whose day or
// hour cannot be resolved cannot occupy a slot and are dropped.
func ToEntries(records []Record, resolver *calendar.Resolver) []agenda.Entry {
	entries := make([]agenda.Entry, 0, len(records))
	for _, rec := range records {
		e, ok := ToEntry(rec, resolver)
		if !ok {
			log.Debug("Skipping match without a usable date", "matchID", rec.ID, "date", rec.Date, "time", rec.Time, "startAt", rec.StartAt)
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// ToEntry normalises a single record.
func ToEntry(rec Record, resolver *calendar.Resolver) (agenda.Entry, bool) {
	stamp := firstNonEmpty(rec.StartAt, rec.Date, rec.Time)
	day := resolver.ToLocalDay(stamp)
	if day == "" {
		return agenda.Entry{}, false
	}
	hour := resolver.TimeOfDay(rec.Time, firstNonEmpty(rec.StartAt, rec.Date))
	if hour == "" {
		return agenda.Entry{}, false
	}

	title := rec.Organizer.Name
	if title == "" {
		title = "Match"
	}
	return agenda.Entry{
		ID:       rec.ID,
		Kind:     agenda.KindBooking,
		Source:   agenda.SourceMatch,
		CourtID:  rec.CourtID,
		Day:      day,
		Hour:     hour,
		Status:   StatusFromBackend(rec.Status),
		Title:    title,
		Price:    rec.PricePerPlayer,
		Customer: rec.Organizer.Name,
		Extra:    fmt.Sprintf("%d/%d players", len(rec.Presences), rec.MaxPlayers),
	}, true
}

// StatusFromBackend maps the backend's status vocabulary. Anything
// unrecognised is shown as pending rather than claimed as confirmed.
func StatusFromBackend(status string) agenda.Status {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "canceled", "cancelled", "cancelada", "cancelado", "rejected", "expired":
		return agenda.StatusCanceled
	case "confirmed", "confirmada", "confirmado", "scheduled", "open", "full", "played", "paid", "active":
		return agenda.StatusConfirmed
	default:
		return agenda.StatusPending
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
