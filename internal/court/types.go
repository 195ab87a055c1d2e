package court

import "errors"

var ErrNotFound = errors.New("court not found")

// Court is the metadata of a bookable court.
type Court struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	ArenaID   string  `json:"arenaId" yaml:"arenaId"`
	ArenaName string  `json:"arenaName" yaml:"arenaName"`
	Sport     string  `json:"sport" yaml:"sport"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Coordinates is a point in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Court) Location() Coordinates {
	return Coordinates{Latitude: c.Latitude, Longitude: c.Longitude}
}

// Nearby is a court with its distance from a search origin.
type Nearby struct {
	Court
	DistanceKm float64 `json:"distanceKm"`
}
