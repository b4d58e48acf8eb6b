package cosmic

import (
	"fmt"
	"strings"
	"time"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/astro"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/numerology"
	"github.com/mariemajor/looking-beyond-cosmos/pkg/util"
)

const (
	minRating = 1
	maxRating = 10
)

// Compute derives the reading for date from the astronomical approximations.
func Compute(date time.Time) DailyEvents {
	moon := astro.ComputeMoonPhase(date)
	positions := astro.ComputePlanetaryPositions(date)

	transits := make(map[string]bool, len(astro.Bodies))
	events := make([]string, 0, len(astro.Bodies)+1)
	for _, body := range astro.Bodies {
		sign := positions[body].Sign
		transits[fmt.Sprintf("%s_in_%s", body, strings.ToLower(sign))] = true
		events = append(events, fmt.Sprintf("%s in %s", displayName(body), sign))
	}
	events = append(events, fmt.Sprintf("%s energy supports %s", moon.Name, numerology.MoonPhaseMeaning(moon.Name)))

	return DailyEvents{
		Date:                     date.Format(util.DateLayout),
		MoonPhase:                moon.Name,
		PlanetaryTransits:        transits,
		CosmicEvents:             events,
		CollectiveEnergyTheme:    numerology.Theme(numerology.LifePathNumber(date)),
		ManifestationPowerRating: ManifestationRating(moon.Illumination),
	}
}

// ManifestationRating maps illumination percent onto the 1-10 scale.
func ManifestationRating(illumination int) int {
	rating := minRating + illumination*(maxRating-minRating)/100
	if rating < minRating {
		return minRating
	}
	if rating > maxRating {
		return maxRating
	}
	return rating
}

func displayName(body astro.Body) string {
	s := string(body)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
