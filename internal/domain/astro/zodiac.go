package astro

import (
	"math"
	"time"
)

// Signs are the twelve tropical signs in ecliptic order starting at 0°.
var Signs = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignForLongitude maps an ecliptic longitude in degrees to its 30° sign.
func SignForLongitude(longitude float64) string {
	idx := int(math.Floor(normalizeDegrees(longitude) / 30))
	if idx < 0 || idx >= len(Signs) {
		idx = 0
	}
	return Signs[idx]
}

type signStart struct {
	month time.Month
	day   int
	sign  string
}

// birthSignStarts holds the first day of each sign within the calendar year.
var birthSignStarts = []signStart{
	{time.January, 20, "Aquarius"},
	{time.February, 19, "Pisces"},
	{time.March, 21, "Aries"},
	{time.April, 20, "Taurus"},
	{time.May, 21, "Gemini"},
	{time.June, 21, "Cancer"},
	{time.July, 23, "Leo"},
	{time.August, 23, "Virgo"},
	{time.September, 23, "Libra"},
	{time.October, 23, "Scorpio"},
	{time.November, 22, "Sagittarius"},
	{time.December, 22, "Capricorn"},
}

// SignForBirthdate returns the sun sign for a birthday using the calendar boundary table.
func SignForBirthdate(month time.Month, day int) string {
	sign := "Capricorn"
	for _, start := range birthSignStarts {
		if month > start.month || (month == start.month && day >= start.day) {
			sign = start.sign
		}
	}
	return sign
}
