package moderation

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

// MaxContentLength bounds user submitted text, counted in UTF-16 code units.
const MaxContentLength = 2000

// spamRunLength is the number of identical consecutive characters treated as spam.
const spamRunLength = 11

const (
	ReasonInappropriate = "Content contains inappropriate language"
	ReasonMisaligned    = "Content not aligned with positive spiritual guidance"
	ReasonTooLong       = "Content too long"
	ReasonSpam          = "Spam detected"
)

var blockedWords = []string{
	"hate", "violence", "suicide", "self-harm", "illegal", "drugs", "spam",
}

var spirituallyInappropriate = []string{
	"demon", "evil spirits", "black magic", "curse", "hex", "dark magic",
	"summoning demons", "satanic", "devil worship",
}

var (
	injectionPattern = regexp.MustCompile(`(?i)<script|<iframe|javascript:|data:|vbscript:`)
	scriptBlock      = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	iframeBlock      = regexp.MustCompile(`(?is)<iframe\b.*?</iframe>`)
	schemePattern    = regexp.MustCompile(`(?i)javascript:|data:|vbscript:`)
)

// Result is the verdict for one piece of content.
type Result struct {
	Approved   bool    `json:"approved"`
	Reason     string  `json:"reason,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Validation reports whether raw input may be processed at all.
type Validation struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// ModerateText runs the word lists, the length bound and the repeated character check in order.
func ModerateText(content string) Result {
	lower := strings.ToLower(content)
	for _, word := range blockedWords {
		if strings.Contains(lower, word) {
			return Result{Reason: ReasonInappropriate, Confidence: 0.9}
		}
	}
	for _, phrase := range spirituallyInappropriate {
		if strings.Contains(lower, phrase) {
			return Result{Reason: ReasonMisaligned, Confidence: 0.8}
		}
	}
	if contentLength(content) > MaxContentLength {
		return Result{Reason: ReasonTooLong, Confidence: 0.7}
	}
	if hasRepeatedRun(content, spamRunLength) {
		return Result{Reason: ReasonSpam, Confidence: 0.9}
	}
	return Result{Approved: true, Confidence: 0.95}
}

// ValidateInput rejects empty, oversized or script-bearing input.
func ValidateInput(input string) Validation {
	if strings.TrimSpace(input) == "" {
		return Validation{Message: "Content cannot be empty"}
	}
	if contentLength(input) > MaxContentLength {
		return Validation{Message: "Content is too long (max 2000 characters)"}
	}
	if injectionPattern.MatchString(input) {
		return Validation{Message: "Invalid content detected"}
	}
	return Validation{Valid: true}
}

// Sanitize strips script and iframe blocks and dangerous URL schemes.
func Sanitize(content string) string {
	out := scriptBlock.ReplaceAllString(content, "")
	out = iframeBlock.ReplaceAllString(out, "")
	out = schemePattern.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

// hasRepeatedRun reports whether any character other than a line terminator appears n times in a row.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if isLineTerminator(r) {
			run = 0
			prev = 0
			continue
		}
		if run > 0 && r == prev {
			run++
		} else {
			run = 1
			prev = r
		}
		if run >= n {
			return true
		}
	}
	return false
}

func contentLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}
