package astro

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/mariemajor/looking-beyond-cosmos/pkg/errors"
)

func newTestService(now time.Time) *service {
	return &service{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    func() time.Time { return now },
	}
}

func TestServiceSnapshotDefaultsToToday(t *testing.T) {
	now := time.Date(2025, time.September, 21, 16, 45, 0, 0, time.UTC)
	svc := newTestService(now)

	snap, err := svc.Snapshot(context.Background(), Request{})
	require.NoError(t, err)
	require.Equal(t, "2025-09-21T00:00:00Z", snap.Date)
	require.Equal(t, FirstQuarter, snap.MoonPhase.Name)
	require.Len(t, snap.PlanetaryPositions, 6)
	require.Equal(t, "Virgo", snap.PlanetaryPositions[Sun].Sign)
	require.Equal(t, now.UnixMilli(), snap.Timestamp)
}

func TestServiceRejectsMalformedDate(t *testing.T) {
	svc := newTestService(time.Now())

	_, err := svc.MoonPhase(context.Background(), Request{Date: "21/09/2025"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.Planets(context.Background(), Request{Date: "2025-13-01"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestServiceExplicitDate(t *testing.T) {
	svc := newTestService(time.Now())

	phase, err := svc.MoonPhase(context.Background(), Request{Date: "2000-01-01"})
	require.NoError(t, err)
	require.Equal(t, WaxingCrescent, phase.Name)

	planets, err := svc.Planets(context.Background(), Request{Date: "2025-09-21"})
	require.NoError(t, err)
	require.Equal(t, "Cancer", planets[Saturn].Sign)
}
