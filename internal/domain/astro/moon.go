package astro

import (
	"math"
	"time"
)

// SynodicMonth is the cycle length used for phase arithmetic.
const SynodicMonth = 29.53058867

// ReportedCycleLength is the rounded cycle length published with each MoonPhase.
const ReportedCycleLength = 29.53059

// Phase names.
const (
	NewMoon        = "New Moon"
	WaxingCrescent = "Waxing Crescent"
	FirstQuarter   = "First Quarter"
	WaxingGibbous  = "Waxing Gibbous"
	FullMoon       = "Full Moon"
	WaningGibbous  = "Waning Gibbous"
	LastQuarter    = "Last Quarter"
	WaningCrescent = "Waning Crescent"
)

type phaseBucket struct {
	upper        float64
	name         string
	emoji        string
	illumination int
}

// phaseBuckets are ordered by exclusive upper bound in days since the last new moon.
var phaseBuckets = [...]phaseBucket{
	{1.84566, NewMoon, "🌑", 0},
	{5.53699, WaxingCrescent, "🌒", 25},
	{9.22831, FirstQuarter, "🌓", 50},
	{12.91963, WaxingGibbous, "🌔", 75},
	{16.61096, FullMoon, "🌕", 100},
	{20.30228, WaningGibbous, "🌖", 75},
	{23.99361, LastQuarter, "🌗", 50},
	{math.Inf(1), WaningCrescent, "🌘", 25},
}

// PhaseNames lists the eight phases in cycle order.
func PhaseNames() []string {
	names := make([]string, 0, len(phaseBuckets))
	for _, b := range phaseBuckets {
		names = append(names, b.name)
	}
	return names
}

// ComputeMoonPhase classifies the calendar day of date into one of eight phases.
func ComputeMoonPhase(date time.Time) MoonPhase {
	days := float64(JulianDayNumber(date)) - newMoonEpoch
	return phaseForAge(phaseAge(days))
}

// phaseAge folds days since the epoch new moon into [0, SynodicMonth).
func phaseAge(daysSinceEpoch float64) float64 {
	cycle := daysSinceEpoch / SynodicMonth
	age := (cycle - math.Floor(cycle)) * SynodicMonth
	if age < 0 || age >= SynodicMonth {
		age = 0
	}
	return age
}

func phaseForAge(age float64) MoonPhase {
	bucket := phaseBuckets[len(phaseBuckets)-1]
	for _, b := range phaseBuckets {
		if age < b.upper {
			bucket = b
			break
		}
	}
	return MoonPhase{
		Name:         bucket.name,
		Emoji:        bucket.emoji,
		Illumination: bucket.illumination,
		PhaseAge:     age,
		CycleLength:  ReportedCycleLength,
	}
}
