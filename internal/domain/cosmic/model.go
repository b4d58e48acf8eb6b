package cosmic

import (
	"context"
	"time"
)

// DailyEvents is the collective sky reading for one calendar day.
type DailyEvents struct {
	Date                     string          `json:"event_date"`
	MoonPhase                string          `json:"moon_phase"`
	MoonSign                 string          `json:"moon_sign,omitempty"`
	PlanetaryTransits        map[string]bool `json:"planetary_transits"`
	CosmicEvents             []string        `json:"cosmic_events"`
	CollectiveEnergyTheme    string          `json:"collective_energy_theme"`
	ManifestationPowerRating int             `json:"manifestation_power_rating"`
}

// Request selects the calendar day. Blank means today.
type Request struct {
	Date string `json:"date" form:"date"`
}

// Repository persists daily readings keyed by date.
type Repository interface {
	Get(ctx context.Context, date time.Time) (DailyEvents, bool, error)
	Upsert(ctx context.Context, events DailyEvents) error
}

// Archive stores exported snapshots in object storage.
type Archive interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
}
