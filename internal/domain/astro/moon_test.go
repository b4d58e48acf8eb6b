package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestJulianDayNumber(t *testing.T) {
	cases := []struct {
		date time.Time
		want int
	}{
		{day(2025, time.September, 21), 707776},
		{day(2000, time.January, 6), 698386},
		{day(2000, time.January, 1), 698381},
		{day(2024, time.February, 29), 707206},
		{day(2024, time.March, 1), 707207},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, JulianDayNumber(tc.date), tc.date.Format("2006-01-02"))
	}
}

func TestJulianDateAddsTimeOfDay(t *testing.T) {
	noon := time.Date(2025, time.September, 21, 12, 0, 0, 0, time.UTC)
	require.InDelta(t, 707776.0, JulianDate(noon), 1e-9)

	midnight := day(2025, time.September, 21)
	require.InDelta(t, 707775.5, JulianDate(midnight), 1e-9)

	evening := time.Date(2025, time.September, 21, 18, 30, 36, 0, time.UTC)
	require.InDelta(t, 707776.0+0.25+30.0/1440+36.0/86400, JulianDate(evening), 1e-9)
}

func TestComputeMoonPhaseReferenceDates(t *testing.T) {
	cases := []struct {
		date         time.Time
		name         string
		illumination int
		age          float64
	}{
		{day(2025, time.September, 21), FirstQuarter, 50, 7.760963500076},
		{day(2000, time.January, 1), WaxingCrescent, 25, 3.488160559997},
		{day(2000, time.January, 6), FirstQuarter, 50, 8.488160559995},
		{day(1987, time.November, 29), WaningGibbous, 75, 17.076461060086},
		{day(2024, time.February, 29), WaningCrescent, 25, 28.372736900078},
	}
	for _, tc := range cases {
		got := ComputeMoonPhase(tc.date)
		require.Equal(t, tc.name, got.Name, tc.date.Format("2006-01-02"))
		require.Equal(t, tc.illumination, got.Illumination)
		require.InDelta(t, tc.age, got.PhaseAge, 1e-6)
		require.Equal(t, ReportedCycleLength, got.CycleLength)
	}
}

func TestComputeMoonPhaseIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2025, time.March, 3, 1, 0, 0, 0, time.UTC)
	night := time.Date(2025, time.March, 3, 23, 59, 0, 0, time.UTC)
	require.Equal(t, ComputeMoonPhase(morning), ComputeMoonPhase(night))
}

func TestPhaseForAgeBoundaries(t *testing.T) {
	cases := []struct {
		age  float64
		name string
		emoj string
	}{
		{0, NewMoon, "🌑"},
		{1.84565, NewMoon, "🌑"},
		{1.84566, WaxingCrescent, "🌒"},
		{5.53699, FirstQuarter, "🌓"},
		{9.22831, WaxingGibbous, "🌔"},
		{12.91963, FullMoon, "🌕"},
		{16.61096, WaningGibbous, "🌖"},
		{20.30228, LastQuarter, "🌗"},
		{23.99360, LastQuarter, "🌗"},
		{23.99361, WaningCrescent, "🌘"},
		{29.5, WaningCrescent, "🌘"},
	}
	for _, tc := range cases {
		got := phaseForAge(tc.age)
		require.Equal(t, tc.name, got.Name, "age %v", tc.age)
		require.Equal(t, tc.emoj, got.Emoji)
	}
}

func TestMoonPhaseInvariantsOverManyDays(t *testing.T) {
	allowed := map[int]bool{0: true, 25: true, 50: true, 75: true, 100: true}
	names := map[string]bool{}
	for _, n := range PhaseNames() {
		names[n] = true
	}
	require.Len(t, names, 8)

	start := day(1950, time.January, 1)
	for i := 0; i < 365*80; i += 3 {
		got := ComputeMoonPhase(start.AddDate(0, 0, i))
		require.True(t, allowed[got.Illumination])
		require.True(t, names[got.Name], got.Name)
		require.GreaterOrEqual(t, got.PhaseAge, 0.0)
		require.Less(t, got.PhaseAge, SynodicMonth)
	}
}

func TestPhaseAgeIsPeriodic(t *testing.T) {
	// Ages sit mid-bucket so rounding cannot cross a boundary.
	for _, age := range []float64{0.9, 3.7, 7.4, 11.1, 14.8, 18.5, 22.1, 26.8} {
		base := -1743773.5 + age - phaseAge(-1743773.5)
		want := phaseForAge(phaseAge(base)).Name
		for k := -3; k <= 3; k++ {
			shifted := base + float64(k)*SynodicMonth
			require.Equal(t, want, phaseForAge(phaseAge(shifted)).Name, "age %v cycle %d", age, k)
		}
	}
}
