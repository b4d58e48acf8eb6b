package moderation

import "time"

const (
	minimumAge = 13
	adultAge   = 18
)

// AgeCheck is the outcome of an age verification.
type AgeCheck struct {
	Valid                   bool `json:"valid"`
	Age                     int  `json:"age"`
	ParentalConsentRequired bool `json:"parentalConsentRequired"`
}

// VerifyAge computes the completed years between birth and now.
func VerifyAge(birth, now time.Time) AgeCheck {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return AgeCheck{
		Valid:                   age >= minimumAge,
		Age:                     age,
		ParentalConsentRequired: RequiresParentalConsent(age),
	}
}

// RequiresParentalConsent reports whether a user of this age needs consent.
func RequiresParentalConsent(age int) bool {
	return age < adultAge
}
