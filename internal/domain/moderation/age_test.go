package moderation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestVerifyAge(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	cases := []struct {
		birth   time.Time
		age     int
		valid   bool
		consent bool
	}{
		{time.Date(2012, time.June, 15, 0, 0, 0, 0, time.UTC), 13, true, true},
		{time.Date(2012, time.June, 16, 0, 0, 0, 0, time.UTC), 12, false, true},
		{time.Date(2007, time.June, 15, 0, 0, 0, 0, time.UTC), 18, true, false},
		{time.Date(2007, time.July, 1, 0, 0, 0, 0, time.UTC), 17, true, true},
		{time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC), 45, true, false},
	}
	for _, tc := range cases {
		got := VerifyAge(tc.birth, now)
		require.Equal(t, AgeCheck{Valid: tc.valid, Age: tc.age, ParentalConsentRequired: tc.consent}, got, tc.birth)
	}
}
