package numerology

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testUserID = "3f2a9c1e-7b44-4d2a-9a51-0c6e2f1d8b90"

func TestDeriveSoulProfile(t *testing.T) {
	p := DeriveSoulProfile(testUserID, date(1987, time.November, 29))

	require.Equal(t, "3f2a9c1e", p.SoulSeed)
	require.Equal(t, "758145Hz", p.Frequency)
	require.Equal(t, "Sagittarius", p.BirthSign)
	require.Equal(t, 11, p.LifePathNumber)
	require.Equal(t, "Spiritual illumination and intuitive guidance", p.LifePathMeaning)
	require.Equal(t, "Celestine", p.GuideName)
	require.Equal(t, "Awakening collective consciousness", p.SoulMission)
	require.Equal(t, "Turquoise", p.SignCrystal)

	require.Equal(t, p, DeriveSoulProfile(testUserID, date(1987, time.November, 29)))
}

func TestDeriveSoulProfileNonHexID(t *testing.T) {
	p := DeriveSoulProfile("user-zz", date(2000, time.January, 1))
	require.Equal(t, "userzz", p.SoulSeed)
	require.Equal(t, "0Hz", p.Frequency)
	require.Equal(t, "Capricorn", p.BirthSign)
	require.Equal(t, guideNames[2], p.GuideName)
}

func TestLookupDefaults(t *testing.T) {
	require.Equal(t, "Divine purpose awakening", LifePathMeaning(0))
	require.Equal(t, "Clear Quartz", CrystalForSign("Ophiuchus"))
	require.Equal(t, "Garnet", CrystalForSign("Capricorn"))
	require.Equal(t, "growth and building momentum", MoonPhaseMeaning("Waxing Crescent"))
	require.Equal(t, "cosmic alignment and spiritual awakening", MoonPhaseMeaning("Last Quarter"))
}

func TestSoulSeed(t *testing.T) {
	require.Equal(t, "abcdef12", SoulSeed("ab-cd-ef-12-34"))
	require.Equal(t, "", SoulSeed(""))
	require.Equal(t, int64(0x3f), parseHex("3fzz"))
	require.Equal(t, int64(0), parseHex("zz"))
}

func TestSoulFrequency(t *testing.T) {
	require.Equal(t, "758145Hz", SoulFrequency("3f2a9c1e-7b44-4d2a-9a51-0c6e2f1d8b90"))
	require.Equal(t, "0Hz", SoulFrequency("zz-not-hex"))
	require.Equal(t, "0Hz", SoulFrequency(""))
}
