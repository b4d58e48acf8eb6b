package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignForLongitude(t *testing.T) {
	require.Equal(t, "Aries", SignForLongitude(0))
	require.Equal(t, "Aries", SignForLongitude(29.999))
	require.Equal(t, "Taurus", SignForLongitude(30))
	require.Equal(t, "Pisces", SignForLongitude(359.99))
	require.Equal(t, "Pisces", SignForLongitude(-0.5))
	require.Equal(t, "Aries", SignForLongitude(360))
}

func TestSignForBirthdate(t *testing.T) {
	cases := []struct {
		month time.Month
		day   int
		want  string
	}{
		{time.January, 1, "Capricorn"},
		{time.January, 19, "Capricorn"},
		{time.January, 20, "Aquarius"},
		{time.February, 18, "Aquarius"},
		{time.February, 19, "Pisces"},
		{time.March, 20, "Pisces"},
		{time.March, 21, "Aries"},
		{time.April, 19, "Aries"},
		{time.April, 20, "Taurus"},
		{time.May, 21, "Gemini"},
		{time.June, 21, "Cancer"},
		{time.July, 22, "Cancer"},
		{time.July, 23, "Leo"},
		{time.August, 23, "Virgo"},
		{time.September, 22, "Virgo"},
		{time.September, 23, "Libra"},
		{time.October, 23, "Scorpio"},
		{time.November, 21, "Scorpio"},
		{time.November, 22, "Sagittarius"},
		{time.December, 21, "Sagittarius"},
		{time.December, 22, "Capricorn"},
		{time.December, 31, "Capricorn"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, SignForBirthdate(tc.month, tc.day), "%s %d", tc.month, tc.day)
	}
}
