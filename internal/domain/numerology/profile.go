package numerology

import (
	"strconv"
	"strings"
	"time"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/astro"
)

const (
	defaultPurpose     = "Divine purpose awakening"
	defaultCrystal     = "Clear Quartz"
	defaultMoonMeaning = "cosmic alignment and spiritual awakening"
	frequencyModulus   = 999999
)

var guideNames = [...]string{
	"Seraphiel", "Auriel", "Lumina", "Celestine", "Raphael",
	"Gabriel", "Michael", "Uriel", "Zadkiel", "Chamuel",
}

var soulMissions = [...]string{
	"Awakening collective consciousness",
	"Healing ancestral trauma patterns",
	"Bridging dimensions through creativity",
	"Teaching divine love through example",
	"Anchoring new earth frequencies",
	"Transmuting fear into love",
	"Opening hearts to cosmic truth",
	"Activating DNA light codes",
	"Channeling galactic wisdom",
}

var lifePathMeanings = map[int]string{
	1:  "Leadership and pioneering new paths",
	2:  "Cooperation, harmony, and healing relationships",
	3:  "Creative expression and inspiring others",
	4:  "Building foundations and practical service",
	5:  "Freedom, adventure, and teaching through experience",
	6:  "Nurturing, healing, and supporting others",
	7:  "Spiritual seeking and sharing wisdom",
	8:  "Material mastery and empowering others",
	9:  "Humanitarian service and soul completion",
	11: "Spiritual illumination and intuitive guidance",
	22: "Master building and manifesting divine visions",
	33: "Master teaching and healing through love",
}

var signCrystals = map[string]string{
	"Aries":       "Red Jasper",
	"Taurus":      "Rose Quartz",
	"Gemini":      "Citrine",
	"Cancer":      "Moonstone",
	"Leo":         "Sunstone",
	"Virgo":       "Amazonite",
	"Libra":       "Jade",
	"Scorpio":     "Obsidian",
	"Sagittarius": "Turquoise",
	"Capricorn":   "Garnet",
	"Aquarius":    "Amethyst",
	"Pisces":      "Aquamarine",
}

var moonMeanings = map[string]string{
	astro.NewMoon:        "new beginnings and intention setting",
	astro.WaxingCrescent: "growth and building momentum",
	astro.FullMoon:       "manifestation and spiritual illumination",
	astro.WaningCrescent: "release and inner reflection",
}

// SoulProfile is the per-user personalization derived from account id and birth data.
type SoulProfile struct {
	SoulSeed        string `json:"soulSeed"`
	Frequency       string `json:"frequency"`
	BirthSign       string `json:"birthSign"`
	LifePathNumber  int    `json:"lifePathNumber"`
	LifePathMeaning string `json:"lifePathMeaning"`
	GuideName       string `json:"guideName"`
	SoulMission     string `json:"soulMission"`
	SignCrystal     string `json:"signCrystal"`
}

// DeriveSoulProfile builds the profile for userID born on birthDate.
func DeriveSoulProfile(userID string, birthDate time.Time) SoulProfile {
	seed := SoulSeed(userID)
	year, month, day := birthDate.Date()
	lifePath := LifePathNumber(birthDate)
	sign := astro.SignForBirthdate(month, day)

	guideOffset := 0
	if len(seed) >= 2 {
		guideOffset = int(parseHex(seed[:2]))
	}

	return SoulProfile{
		SoulSeed:        seed,
		Frequency:       SoulFrequency(userID),
		BirthSign:       sign,
		LifePathNumber:  lifePath,
		LifePathMeaning: LifePathMeaning(lifePath),
		GuideName:       guideNames[index(day+int(month)+guideOffset, len(guideNames))],
		SoulMission:     soulMissions[index(lifePath+year, len(soulMissions))],
		SignCrystal:     CrystalForSign(sign),
	}
}

// SoulSeed is the first eight characters of the id once dashes are removed.
func SoulSeed(userID string) string {
	compact := strings.ReplaceAll(userID, "-", "")
	if len(compact) > 8 {
		compact = compact[:8]
	}
	return compact
}

// SoulFrequency renders the user's seed as a frequency such as "758145Hz".
func SoulFrequency(userID string) string {
	return strconv.FormatInt(parseHex(SoulSeed(userID))%frequencyModulus, 10) + "Hz"
}

// parseHex reads the longest leading hexadecimal prefix of s, or 0.
func parseHex(s string) int64 {
	end := 0
	for end < len(s) && isHex(s[end]) {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseInt(s[:end], 16, 64)
	if err != nil {
		return 0
	}
	return v
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// LifePathMeaning describes a life path number.
func LifePathMeaning(n int) string {
	if meaning, ok := lifePathMeanings[n]; ok {
		return meaning
	}
	return defaultPurpose
}

// CrystalForSign returns the crystal associated with a zodiac sign.
func CrystalForSign(sign string) string {
	if crystal, ok := signCrystals[sign]; ok {
		return crystal
	}
	return defaultCrystal
}

// MoonPhaseMeaning returns the spiritual meaning of a phase name.
func MoonPhaseMeaning(phase string) string {
	if meaning, ok := moonMeanings[phase]; ok {
		return meaning
	}
	return defaultMoonMeaning
}
