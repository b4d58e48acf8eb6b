package cosmic

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	apperrors "github.com/mariemajor/looking-beyond-cosmos/pkg/errors"
	"github.com/mariemajor/looking-beyond-cosmos/pkg/util"
)

// Service serves and refreshes daily cosmic readings.
type Service interface {
	Today(ctx context.Context, req Request) (DailyEvents, error)
	Lookup(ctx context.Context, date time.Time) DailyEvents
	Refresh(ctx context.Context, date time.Time) (DailyEvents, error)
}

type service struct {
	repo    Repository
	archive Archive
	logger  *slog.Logger
	now     func() time.Time
}

// NewService wires the cosmic domain. archive may be nil.
func NewService(repo Repository, archive Archive, logger *slog.Logger) Service {
	return &service{
		repo:    repo,
		archive: archive,
		logger:  logger.With("component", "cosmic.service"),
		now:     util.NowUTC,
	}
}

func (s *service) Today(ctx context.Context, req Request) (DailyEvents, error) {
	date, err := util.ParseDate(req.Date, s.now())
	if err != nil {
		return DailyEvents{}, apperrors.Wrap(apperrors.CodeInvalidInput, "date must be formatted as YYYY-MM-DD or RFC3339", err)
	}
	return s.Lookup(ctx, date), nil
}

// Lookup prefers the stored reading and falls back to a computed one.
func (s *service) Lookup(ctx context.Context, date time.Time) DailyEvents {
	day := util.StartOfDay(date)
	stored, ok, err := s.repo.Get(ctx, day)
	switch {
	case err != nil:
		s.logger.Warn("cosmic events lookup failed, computing", "date", day.Format(util.DateLayout), "error", err)
	case ok:
		return stored
	}
	return Compute(day)
}

func (s *service) Refresh(ctx context.Context, date time.Time) (DailyEvents, error) {
	day := util.StartOfDay(date)
	events := Compute(day)
	if err := s.repo.Upsert(ctx, events); err != nil {
		return DailyEvents{}, apperrors.Wrap(apperrors.CodeStorage, "failed to store cosmic events", err)
	}
	if s.archive != nil {
		payload, err := json.Marshal(events)
		if err != nil {
			return DailyEvents{}, fmt.Errorf("encode cosmic events: %w", err)
		}
		key := ArchiveKey(day)
		if err := s.archive.Put(ctx, key, payload, "application/json"); err != nil {
			s.logger.Warn("cosmic events archive failed", "key", key, "error", err)
		}
	}
	s.logger.Info("cosmic events refreshed", "date", events.Date, "moon_phase", events.MoonPhase, "rating", events.ManifestationPowerRating)
	return events, nil
}

// ArchiveKey is the object key of the exported reading for date.
func ArchiveKey(date time.Time) string {
	return "cosmic/" + date.Format(util.DateLayout) + ".json"
}
