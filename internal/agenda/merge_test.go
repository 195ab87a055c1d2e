package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	court = "court-1"
	day   = "2026-03-09"
)

func localBooking(hour string) Entry {
	return Entry{ID: "l-" + hour, Kind: KindBooking, Source: SourceLocal, CourtID: court, Day: day, Hour: hour, Status: StatusConfirmed}
}

func matchBooking(id, hour string, status Status) Entry {
	return Entry{ID: id, Kind: KindBooking, Source: SourceMatch, CourtID: court, Day: day, Hour: hour, Status: status}
}

func TestMerge_MatchOverridesLocal(t *testing.T) {
	local := []Entry{localBooking("19:00")}
	matches := []Entry{matchBooking("m1", "19:00", StatusPending)}

	merged, report := MergeWithReport(local, matches, court, day)

	require.Len(t, merged, 1)
	assert.Equal(t, "m1", merged["19:00"].ID)
	assert.Equal(t, SourceMatch, merged["19:00"].Source)
	assert.Equal(t, 1, report.Overridden)
	assert.Zero(t, report.Collisions)
}

func TestMerge_OrderOfInputsDoesNotMatter(t *testing.T) {
	block := Entry{ID: "b1", Kind: KindBlock, Source: SourceLocal, CourtID: court, Day: day, Hour: "19:00", Status: StatusBlocked}
	matches := []Entry{matchBooking("m1", "19:00", StatusConfirmed)}

	assert.Equal(t, "m1", Merge([]Entry{block}, matches, court, day)["19:00"].ID)
}

func TestMerge_FiltersCourtAndDay(t *testing.T) {
	otherCourt := localBooking("10:00")
	otherCourt.CourtID = "court-2"
	otherDay := matchBooking("m2", "11:00", StatusConfirmed)
	otherDay.Day = "2026-03-10"
	undated := matchBooking("m3", "12:00", StatusConfirmed)
	undated.Day = ""

	merged := Merge([]Entry{otherCourt, localBooking("09:00")}, []Entry{otherDay, undated}, court, day)

	require.Len(t, merged, 1)
	assert.Contains(t, merged, "09:00")
}

func TestMerge_DuplicateMatchesKeepLast(t *testing.T) {
	matches := []Entry{
		matchBooking("first", "20:00", StatusConfirmed),
		matchBooking("second", "20:00", StatusCanceled),
	}

	merged, report := MergeWithReport(nil, matches, court, day)

	assert.Equal(t, "second", merged["20:00"].ID)
	assert.Equal(t, 1, report.Collisions)
}

func TestMerge_ReturnsFreshMap(t *testing.T) {
	local := []Entry{localBooking("09:00")}

	a := Merge(local, nil, court, day)
	a["10:00"] = localBooking("10:00")
	b := Merge(local, nil, court, day)

	assert.Len(t, b, 1)
}
