package astro

import (
	"math"
	"time"
)

// Body names a tracked celestial body.
type Body string

const (
	Sun     Body = "sun"
	Mercury Body = "mercury"
	Venus   Body = "venus"
	Mars    Body = "mars"
	Jupiter Body = "jupiter"
	Saturn  Body = "saturn"
)

// Bodies lists every tracked body in display order.
var Bodies = []Body{Sun, Mercury, Venus, Mars, Jupiter, Saturn}

// orbitalElements are coarse mean elements. Only MeanLongitude and DailyMotion drive the
// longitude; the remaining fields describe the orbit but are not part of the approximation.
type orbitalElements struct {
	SemiMajorAxis float64
	Eccentricity  float64
	Inclination   float64
	MeanLongitude float64
	Perihelion    float64
	DailyMotion   float64
}

var planetElements = map[Body]orbitalElements{
	Mercury: {0.387, 0.206, 7.0, 252.3, 77.5, 4.092},
	Venus:   {0.723, 0.007, 3.4, 181.9, 131.6, 1.602},
	Mars:    {1.524, 0.093, 1.9, 355.4, 336.0, 0.524},
	Jupiter: {5.203, 0.049, 1.3, 34.4, 14.3, 0.083},
	Saturn:  {9.537, 0.057, 2.5, 50.1, 93.1, 0.033},
}

// ComputePlanetaryPositions returns the approximate ecliptic position of every body.
func ComputePlanetaryPositions(date time.Time) map[Body]PlanetaryPosition {
	n := JulianDate(date) - j2000
	out := make(map[Body]PlanetaryPosition, len(Bodies))
	out[Sun] = positionAt(sunLongitude(n))
	for body, elem := range planetElements {
		out[body] = positionAt(planetLongitude(elem, n))
	}
	return out
}

func sunLongitude(n float64) float64 {
	meanLongitude := normalizeDegrees(280.460 + 0.9856474*n)
	g := radians(normalizeDegrees(357.528 + 0.9856003*n))
	return normalizeDegrees(meanLongitude + 1.915*math.Sin(g) + 0.020*math.Sin(2*g))
}

func planetLongitude(elem orbitalElements, n float64) float64 {
	mean := elem.MeanLongitude + elem.DailyMotion*n
	anomaly := radians(normalizeDegrees(mean))
	return normalizeDegrees(mean + 1.915*math.Sin(anomaly))
}

func positionAt(longitude float64) PlanetaryPosition {
	return PlanetaryPosition{
		Longitude: longitude,
		Sign:      SignForLongitude(longitude),
		Degrees:   int(math.Floor(math.Mod(longitude, 30))),
		Minutes:   clampMinutes(int(math.Floor(math.Mod(longitude, 1) * 60))),
	}
}

func clampMinutes(m int) int {
	if m > 59 {
		return 59
	}
	if m < 0 {
		return 0
	}
	return m
}
