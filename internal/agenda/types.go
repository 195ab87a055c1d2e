package agenda

// Kind is what an entry does to its slot.
type Kind string

const (
	KindBooking Kind = "booking"
	KindBlock   Kind = "block"
)

// Source is where an entry came from. Match entries are authoritative and
// never mutated locally.
type Source string

const (
	SourceLocal Source = "local"
	SourceMatch Source = "match"
)

// Status is the lifecycle state carried by an entry.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
	StatusBlocked   Status = "blocked"
)

// Entry is one booking or block occupying a (court, day, hour) key.
type Entry struct {
	ID       string  `json:"id"`
	Kind     Kind    `json:"kind"`
	Source   Source  `json:"source"`
	CourtID  string  `json:"courtId"`
	Day      string  `json:"day"`
	Hour     string  `json:"hour"`
	Status   Status  `json:"status"`
	Title    string  `json:"title,omitempty"`
	Price    float64 `json:"price,omitempty"`
	Customer string  `json:"customer,omitempty"`
	Extra    string  `json:"extra,omitempty"`
}

// Key is the composite merge key of an entry.
type Key struct {
	CourtID string
	Day     string
	Hour    string
}

func (e Entry) Key() Key {
	return Key{CourtID: e.CourtID, Day: e.Day, Hour: e.Hour}
}

// SlotStatus is what a generated slot shows.
type SlotStatus string

const (
	SlotFree      SlotStatus = "free"
	SlotPending   SlotStatus = "pending"
	SlotConfirmed SlotStatus = "confirmed"
	SlotCanceled  SlotStatus = "canceled"
	SlotBlocked   SlotStatus = "blocked"
)

// SlotView is the resolved state of one generated slot. Entry is nil for
// free slots.
type SlotView struct {
	Hour   string     `json:"hour"`
	Status SlotStatus `json:"status"`
	Entry  *Entry     `json:"entry"`
}
