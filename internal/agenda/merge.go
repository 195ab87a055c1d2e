package agenda

// Merged maps an hour to the entry that occupies it for one court and day.
type Merged map[string]Entry

// MergeReport describes how a merge went.
type MergeReport struct {
	// Overridden counts local entries hidden by a match at the same hour.
	Overridden int
	// Collisions counts match entries that landed on an hour already taken
	// by another match. The later one is kept.
	Collisions int
}

// Merge overlays local and match entries for courtID on dayISO. Match
// entries always win over local ones on the same hour. The result is a new
// map on every call.
func Merge(local, matches []Entry, courtID, dayISO string) Merged {
	merged, _ := MergeWithReport(local, matches, courtID, dayISO)
	return merged
}

// MergeWithReport is Merge plus counts of what got overwritten.
func MergeWithReport(local, matches []Entry, courtID, dayISO string) (Merged, MergeReport) {
	merged := make(Merged)
	var report MergeReport

	for _, e := range local {
		if !e.placedOn(courtID, dayISO) {
			continue
		}
		merged[e.Hour] = e
	}

	for _, e := range matches {
		if !e.placedOn(courtID, dayISO) {
			continue
		}
		if prev, ok := merged[e.Hour]; ok {
			if prev.Source == SourceMatch {
				report.Collisions++
			} else {
				report.Overridden++
			}
		}
		merged[e.Hour] = e
	}
	return merged, report
}

func (e Entry) placedOn(courtID, dayISO string) bool {
	return e.Hour != "" && e.Day != "" && e.CourtID == courtID && e.Day == dayISO
}
