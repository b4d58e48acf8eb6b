package astro

// MoonPhase describes the lunar phase for a calendar day.
type MoonPhase struct {
	Name         string  `json:"name"`
	Emoji        string  `json:"emoji"`
	Illumination int     `json:"illumination"`
	PhaseAge     float64 `json:"phaseAge"`
	CycleLength  float64 `json:"cycleLength"`
}

// PlanetaryPosition is an approximate ecliptic position.
type PlanetaryPosition struct {
	Longitude float64 `json:"longitude"`
	Sign      string  `json:"sign"`
	Degrees   int     `json:"degrees"`
	Minutes   int     `json:"minutes"`
}

// Request selects the calendar day. Blank means today.
type Request struct {
	Date string `json:"date" form:"date"`
}

// Snapshot is the combined astronomical data for one date.
type Snapshot struct {
	Date               string                     `json:"date"`
	MoonPhase          MoonPhase                  `json:"moonPhase"`
	PlanetaryPositions map[Body]PlanetaryPosition `json:"planetaryPositions"`
	Timestamp          int64                      `json:"timestamp"`
}
