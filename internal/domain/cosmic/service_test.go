package cosmic

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/mariemajor/looking-beyond-cosmos/pkg/errors"
	"github.com/mariemajor/looking-beyond-cosmos/pkg/util"
)

type stubRepo struct {
	stored    map[string]DailyEvents
	getErr    error
	upsertErr error
}

func (s *stubRepo) Get(_ context.Context, date time.Time) (DailyEvents, bool, error) {
	if s.getErr != nil {
		return DailyEvents{}, false, s.getErr
	}
	ev, ok := s.stored[date.Format(util.DateLayout)]
	return ev, ok, nil
}

func (s *stubRepo) Upsert(_ context.Context, events DailyEvents) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.stored[events.Date] = events
	return nil
}

type stubArchive struct {
	objects map[string][]byte
	err     error
}

func (s *stubArchive) Put(_ context.Context, key string, data []byte, contentType string) error {
	if s.err != nil {
		return s.err
	}
	if contentType != "application/json" {
		return errors.New("unexpected content type")
	}
	s.objects[key] = data
	return nil
}

var fixedNow = time.Date(2025, time.September, 21, 15, 4, 5, 0, time.UTC)

func newTestService(repo Repository, archive Archive) *service {
	return &service{
		repo:    repo,
		archive: archive,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     func() time.Time { return fixedNow },
	}
}

func TestTodayPrefersStoredReading(t *testing.T) {
	stored := DailyEvents{Date: "2025-09-21", MoonPhase: "Full Moon", MoonSign: "Pisces", ManifestationPowerRating: 9}
	svc := newTestService(&stubRepo{stored: map[string]DailyEvents{"2025-09-21": stored}}, nil)

	got, err := svc.Today(context.Background(), Request{})
	require.NoError(t, err)
	require.Equal(t, stored, got)
}

func TestTodayFallsBackToComputed(t *testing.T) {
	svc := newTestService(&stubRepo{stored: map[string]DailyEvents{}}, nil)

	got, err := svc.Today(context.Background(), Request{Date: "2025-09-21"})
	require.NoError(t, err)
	require.Equal(t, Compute(time.Date(2025, time.September, 21, 0, 0, 0, 0, time.UTC)), got)

	failing := newTestService(&stubRepo{getErr: errors.New("connection refused")}, nil)
	got, err = failing.Today(context.Background(), Request{})
	require.NoError(t, err)
	require.Equal(t, "2025-09-21", got.Date)
}

func TestTodayRejectsBadDate(t *testing.T) {
	svc := newTestService(&stubRepo{stored: map[string]DailyEvents{}}, nil)
	_, err := svc.Today(context.Background(), Request{Date: "21/09/2025"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestRefreshStoresAndArchives(t *testing.T) {
	repo := &stubRepo{stored: map[string]DailyEvents{}}
	archive := &stubArchive{objects: map[string][]byte{}}
	svc := newTestService(repo, archive)

	got, err := svc.Refresh(context.Background(), fixedNow)
	require.NoError(t, err)
	require.Equal(t, repo.stored["2025-09-21"], got)

	raw, ok := archive.objects["cosmic/2025-09-21.json"]
	require.True(t, ok)
	var decoded DailyEvents
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, got, decoded)
}

func TestRefreshToleratesArchiveFailure(t *testing.T) {
	repo := &stubRepo{stored: map[string]DailyEvents{}}
	svc := newTestService(repo, &stubArchive{err: errors.New("bucket missing")})

	_, err := svc.Refresh(context.Background(), fixedNow)
	require.NoError(t, err)
	require.Contains(t, repo.stored, "2025-09-21")
}

func TestRefreshStorageFailure(t *testing.T) {
	svc := newTestService(&stubRepo{upsertErr: errors.New("read only")}, nil)
	_, err := svc.Refresh(context.Background(), fixedNow)
	require.True(t, apperrors.IsCode(err, apperrors.CodeStorage))
}
