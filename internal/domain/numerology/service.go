package numerology

import (
	"context"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/mariemajor/looking-beyond-cosmos/pkg/errors"
	"github.com/mariemajor/looking-beyond-cosmos/pkg/util"
)

// Request carries the onboarding fields used for numerology.
type Request struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
}

// SoulNumerology is the derived numbers for one person.
type SoulNumerology struct {
	BirthDate      string `json:"birthDate"`
	Name           string `json:"name"`
	LifePathNumber int    `json:"lifePathNumber"`
	EnergyLevel    int    `json:"energyLevel"`
}

// Response pairs the numbers with their canned guidance.
type Response struct {
	Numerology SoulNumerology       `json:"numerology"`
	Guidance   PersonalizedGuidance `json:"guidance"`
}

// ProfileRequest asks for the soul profile of the authenticated user.
type ProfileRequest struct {
	BirthDate string `json:"birthDate"`
}

// Service validates input and runs the derivations.
type Service interface {
	Derive(ctx context.Context, req Request) (Response, error)
	Profile(ctx context.Context, userID string, req ProfileRequest) (SoulProfile, error)
}

type service struct {
	logger *slog.Logger
}

// NewService constructs the numerology service.
func NewService(logger *slog.Logger) Service {
	return &service{logger: logger.With("component", "numerology.service")}
}

func (s *service) Derive(_ context.Context, req Request) (Response, error) {
	birth, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return Response{}, err
	}
	numbers := Derive(req.Name, birth)
	return Response{Numerology: numbers, Guidance: Guidance(numbers.LifePathNumber)}, nil
}

func (s *service) Profile(_ context.Context, userID string, req ProfileRequest) (SoulProfile, error) {
	if strings.TrimSpace(userID) == "" {
		return SoulProfile{}, apperrors.Wrap(apperrors.CodeUnauthorized, "user id is required", nil)
	}
	birth, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return SoulProfile{}, err
	}
	profile := DeriveSoulProfile(userID, birth)
	s.logger.Debug("soul profile derived", "life_path", profile.LifePathNumber, "sign", profile.BirthSign)
	return profile, nil
}

// Derive computes SoulNumerology without validation.
func Derive(name string, birthDate time.Time) SoulNumerology {
	return SoulNumerology{
		BirthDate:      birthDate.Format(util.DateLayout),
		Name:           name,
		LifePathNumber: LifePathNumber(birthDate),
		EnergyLevel:    EnergyLevel(name),
	}
}

func parseBirthDate(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, apperrors.Wrap(apperrors.CodeInvalidInput, "birthDate is required", nil)
	}
	birth, err := util.ParseDate(raw, util.NowUTC())
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.CodeInvalidInput, "birthDate must be formatted as YYYY-MM-DD", err)
	}
	return birth, nil
}
