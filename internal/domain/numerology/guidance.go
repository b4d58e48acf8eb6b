package numerology

// Crystal is a stone recommendation.
type Crystal struct {
	Name       string `json:"name"`
	Symbol     string `json:"symbol"`
	Properties string `json:"properties"`
}

// PersonalizedGuidance is the canned content selected by a life path number.
type PersonalizedGuidance struct {
	Crystal Crystal `json:"crystal"`
	Theme   string  `json:"theme"`
	Message string  `json:"message"`
}

var crystals = [...]Crystal{
	{"Amethyst", "💜", "spiritual awakening and intuition"},
	{"Rose Quartz", "💗", "self-love and heart healing"},
	{"Clear Quartz", "🤍", "amplification and clarity"},
	{"Citrine", "💛", "abundance and manifestation"},
	{"Black Tourmaline", "🖤", "protection and grounding"},
	{"Labradorite", "💙", "transformation and magic"},
	{"Selenite", "🤍", "purification and connection"},
	{"Aventurine", "💚", "luck and opportunity"},
	{"Moonstone", "🌙", "intuition and divine feminine"},
}

var themes = [...]string{
	"Divine Love", "Sacred Healing", "Spiritual Awakening", "Creative Expression",
	"Inner Wisdom", "Soul Purpose", "Heart Opening", "Transformation", "Abundance",
}

var messages = [...]string{
	"Your guides are sending you signs through synchronicities today.",
	"A powerful healing frequency is available to you right now.",
	"Your manifestation abilities are heightened at this time.",
	"Trust the path that's unfolding before you with perfect timing.",
	"Your soul family is supporting your journey from the spiritual realm.",
	"An important lesson is completing itself in your consciousness.",
	"New opportunities are aligning with your highest good.",
	"Your inner child is ready to play and create joyfully.",
	"Divine protection surrounds you as you step into your power.",
}

// Guidance selects crystal, theme and message independently by n modulo each table size.
func Guidance(n int) PersonalizedGuidance {
	return PersonalizedGuidance{
		Crystal: crystals[index(n, len(crystals))],
		Theme:   themes[index(n, len(themes))],
		Message: messages[index(n, len(messages))],
	}
}

// Theme returns only the theme for n.
func Theme(n int) string {
	return themes[index(n, len(themes))]
}

func index(n, size int) int {
	return ((n % size) + size) % size
}
