package agenda

// ResolveStatus derives the slot status from the entry occupying it.
func ResolveStatus(e *Entry) SlotStatus {
	if e == nil {
		return SlotFree
	}
	if e.Kind == KindBlock {
		return SlotBlocked
	}
	switch e.Status {
	case StatusPending:
		return SlotPending
	case StatusCanceled:
		return SlotCanceled
	case StatusBlocked:
		return SlotBlocked
	default:
		return SlotConfirmed
	}
}

// View maps every generated slot hour to its resolved state.
type View map[string]SlotView

// BuildView resolves each generated slot against the merged entries. Free
// slots are included with a nil entry.
func BuildView(slots []string, merged Merged) View {
	view := make(View, len(slots))
	for _, hour := range slots {
		sv := SlotView{Hour: hour, Status: SlotFree}
		if e, ok := merged[hour]; ok {
			sv.Entry = &e
			sv.Status = ResolveStatus(&e)
		}
		view[hour] = sv
	}
	return view
}

// Ordered returns the view in the order of slots.
func (v View) Ordered(slots []string) []SlotView {
	out := make([]SlotView, 0, len(slots))
	for _, hour := range slots {
		if sv, ok := v[hour]; ok {
			out = append(out, sv)
		}
	}
	return out
}

// OffGrid returns merged entries whose hour is not one of the generated
// slots, in slot-independent hour order.
func OffGrid(slots []string, merged Merged) []Entry {
	onGrid := make(map[string]struct{}, len(slots))
	for _, hour := range slots {
		onGrid[hour] = struct{}{}
	}
	var out []Entry
	for hour, e := range merged {
		if _, ok := onGrid[hour]; !ok {
			out = append(out, e)
		}
	}
	sortByHour(out)
	return out
}
