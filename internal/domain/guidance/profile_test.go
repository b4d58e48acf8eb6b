package guidance

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/mariemajor/looking-beyond-cosmos/pkg/errors"
)

func TestSaveSpiritualProfileCleansInput(t *testing.T) {
	f := newFixture(Config{})
	saved, err := f.svc.SaveSpiritualProfile(context.Background(), testUser, SpiritualProfile{
		UserID:               "someone-else",
		LifePathNumber:       22,
		PersonalSpiritGuides: []string{"  Raphael ", "", "Gabriel"},
		SoulContract:         "  Bridging dimensions through creativity ",
		StarseedOrigins:      []string{"Sirian"},
		AkashicAccessLevel:   " intermediate ",
	})
	require.NoError(t, err)
	require.Equal(t, SpiritualProfile{
		UserID:               testUser,
		LifePathNumber:       22,
		PersonalSpiritGuides: []string{"Raphael", "Gabriel"},
		SoulContract:         "Bridging dimensions through creativity",
		StarseedOrigins:      []string{"Sirian"},
		AkashicAccessLevel:   "intermediate",
	}, saved)
	require.Equal(t, saved, f.profiles.profile)

	got, err := f.svc.SpiritualProfile(context.Background(), testUser)
	require.NoError(t, err)
	require.Equal(t, saved, got)
}

func TestSaveSpiritualProfileRejections(t *testing.T) {
	f := newFixture(Config{})
	ctx := context.Background()

	_, err := f.svc.SaveSpiritualProfile(ctx, testUser, SpiritualProfile{LifePathNumber: 12})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = f.svc.SaveSpiritualProfile(ctx, testUser, SpiritualProfile{PersonalSpiritGuides: make([]string, 11)})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = f.svc.SaveSpiritualProfile(ctx, testUser, SpiritualProfile{SoulContract: "summoning demons"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeContentRejected))

	_, err = f.svc.SaveSpiritualProfile(ctx, "", SpiritualProfile{})
	require.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
	require.False(t, f.profiles.found)
}

func TestSpiritualProfileMissingAndFailing(t *testing.T) {
	f := newFixture(Config{})
	got, err := f.svc.SpiritualProfile(context.Background(), testUser)
	require.NoError(t, err)
	require.Equal(t, SpiritualProfile{UserID: testUser}, got)

	f.profiles.err = errors.New("timeout")
	_, err = f.svc.SpiritualProfile(context.Background(), testUser)
	require.True(t, apperrors.IsCode(err, apperrors.CodeStorage))
}
