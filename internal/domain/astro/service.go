package astro

import (
	"context"
	"log/slog"
	"time"

	apperrors "github.com/mariemajor/looking-beyond-cosmos/pkg/errors"
	"github.com/mariemajor/looking-beyond-cosmos/pkg/util"
)

// Service resolves request dates and runs the approximations.
type Service interface {
	Snapshot(ctx context.Context, req Request) (Snapshot, error)
	MoonPhase(ctx context.Context, req Request) (MoonPhase, error)
	Planets(ctx context.Context, req Request) (map[Body]PlanetaryPosition, error)
}

type service struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs the astronomy service.
func NewService(logger *slog.Logger) Service {
	return &service{
		logger: logger.With("component", "astro.service"),
		now:    util.NowUTC,
	}
}

func (s *service) Snapshot(_ context.Context, req Request) (Snapshot, error) {
	date, err := s.resolve(req.Date)
	if err != nil {
		return Snapshot{}, err
	}
	snap := Snapshot{
		Date:               date.Format(time.RFC3339),
		MoonPhase:          ComputeMoonPhase(date),
		PlanetaryPositions: ComputePlanetaryPositions(date),
		Timestamp:          s.now().UnixMilli(),
	}
	s.logger.Debug("astro snapshot computed", "date", snap.Date, "moon_phase", snap.MoonPhase.Name)
	return snap, nil
}

func (s *service) MoonPhase(_ context.Context, req Request) (MoonPhase, error) {
	date, err := s.resolve(req.Date)
	if err != nil {
		return MoonPhase{}, err
	}
	return ComputeMoonPhase(date), nil
}

func (s *service) Planets(_ context.Context, req Request) (map[Body]PlanetaryPosition, error) {
	date, err := s.resolve(req.Date)
	if err != nil {
		return nil, err
	}
	return ComputePlanetaryPositions(date), nil
}

func (s *service) resolve(raw string) (time.Time, error) {
	date, err := util.ParseDate(raw, s.now())
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.CodeInvalidInput, "date must be formatted as YYYY-MM-DD or RFC3339", err)
	}
	return date, nil
}
