package guidance

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/cosmic"
)

const defaultPersona = "You are a warm, grounded spiritual guide for the Looking Beyond app. " +
	"Offer reflective, uplifting guidance in under 200 words. Never give medical, legal or financial advice."

// seekerContext is everything known about the user for one turn.
type seekerContext struct {
	Name            string
	Dreams          string
	BirthSign       string
	LifePathNumber  int
	LifePathMeaning string
	GuideName       string
	SoulMission     string
	SoulFrequency   string
	SignCrystal     string
	Starseeds       []string
	AkashicAccess   string
}

func buildSystemPrompt(persona string, now time.Time, sky cosmic.DailyEvents, seeker seekerContext) string {
	if strings.TrimSpace(persona) == "" {
		persona = defaultPersona
	}
	var b strings.Builder
	b.WriteString(persona)
	b.WriteString("\n\nToday is ")
	b.WriteString(now.Format("Monday, January 2, 2006"))
	b.WriteString(".\n")

	fmt.Fprintf(&b, "Moon phase: %s\n", sky.MoonPhase)
	if sky.MoonSign != "" {
		fmt.Fprintf(&b, "Moon sign: %s\n", sky.MoonSign)
	}
	if sky.CollectiveEnergyTheme != "" {
		fmt.Fprintf(&b, "Collective energy: %s\n", sky.CollectiveEnergyTheme)
	}
	fmt.Fprintf(&b, "Manifestation power: %d/10\n", sky.ManifestationPowerRating)
	if transits := activeTransits(sky.PlanetaryTransits); len(transits) > 0 {
		fmt.Fprintf(&b, "Transits: %s\n", strings.Join(transits, ", "))
	}
	if len(sky.CosmicEvents) > 0 {
		fmt.Fprintf(&b, "Events: %s\n", strings.Join(sky.CosmicEvents, "; "))
	}

	b.WriteString("\nAbout the seeker:\n")
	writeField(&b, "Name", seeker.Name)
	writeField(&b, "Sun sign", seeker.BirthSign)
	if seeker.LifePathNumber > 0 {
		fmt.Fprintf(&b, "- Life path: %d", seeker.LifePathNumber)
		if seeker.LifePathMeaning != "" {
			fmt.Fprintf(&b, " (%s)", seeker.LifePathMeaning)
		}
		b.WriteString("\n")
	}
	writeField(&b, "Spirit guide", seeker.GuideName)
	writeField(&b, "Soul mission", seeker.SoulMission)
	writeField(&b, "Soul frequency", seeker.SoulFrequency)
	writeField(&b, "Crystal ally", seeker.SignCrystal)
	if len(seeker.Starseeds) > 0 {
		writeField(&b, "Starseed origins", strings.Join(seeker.Starseeds, ", "))
	}
	writeField(&b, "Akashic access", seeker.AkashicAccess)
	writeField(&b, "Dreams", seeker.Dreams)
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, value)
}

func activeTransits(transits map[string]bool) []string {
	out := make([]string, 0, len(transits))
	for name, active := range transits {
		if active {
			out = append(out, strings.ReplaceAll(name, "_", " "))
		}
	}
	sort.Strings(out)
	return out
}
