package guidance

import (
	"context"
	"strings"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/moderation"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/numerology"
	apperrors "github.com/mariemajor/looking-beyond-cosmos/pkg/errors"
)

func (s *service) SpiritualProfile(ctx context.Context, userID string) (SpiritualProfile, error) {
	if strings.TrimSpace(userID) == "" {
		return SpiritualProfile{}, apperrors.Wrap(apperrors.CodeUnauthorized, "user not authenticated", nil)
	}
	profile, ok, err := s.deps.Profiles.Get(ctx, userID)
	if err != nil {
		return SpiritualProfile{}, apperrors.Wrap(apperrors.CodeStorage, "failed to load spiritual profile", err)
	}
	if !ok {
		return SpiritualProfile{UserID: userID}, nil
	}
	return profile, nil
}

func (s *service) SaveSpiritualProfile(ctx context.Context, userID string, profile SpiritualProfile) (SpiritualProfile, error) {
	if strings.TrimSpace(userID) == "" {
		return SpiritualProfile{}, apperrors.Wrap(apperrors.CodeUnauthorized, "user not authenticated", nil)
	}
	if profile.LifePathNumber != 0 && numerology.Reduce(profile.LifePathNumber) != profile.LifePathNumber {
		return SpiritualProfile{}, apperrors.Wrap(apperrors.CodeInvalidInput, "lifePathNumber must be 1-9, 11, 22 or 33", nil)
	}
	guides, err := s.cleanList(ctx, "personalSpiritGuides", profile.PersonalSpiritGuides)
	if err != nil {
		return SpiritualProfile{}, err
	}
	starseeds, err := s.cleanList(ctx, "starseedOrigins", profile.StarseedOrigins)
	if err != nil {
		return SpiritualProfile{}, err
	}
	contract := strings.TrimSpace(profile.SoulContract)
	if contract != "" {
		if err := s.deps.Moderation.Screen(ctx, contract); err != nil {
			return SpiritualProfile{}, err
		}
	}

	clean := SpiritualProfile{
		UserID:               userID,
		LifePathNumber:       profile.LifePathNumber,
		PersonalSpiritGuides: guides,
		SoulContract:         contract,
		StarseedOrigins:      starseeds,
		AkashicAccessLevel:   strings.TrimSpace(profile.AkashicAccessLevel),
	}
	if err := s.deps.Profiles.Upsert(ctx, clean); err != nil {
		return SpiritualProfile{}, apperrors.Wrap(apperrors.CodeStorage, "failed to store spiritual profile", err)
	}
	s.logger.Info("spiritual profile saved", "user_id", userID, "life_path", clean.LifePathNumber)
	return clean, nil
}

func (s *service) cleanList(ctx context.Context, field string, values []string) ([]string, error) {
	if len(values) > maxProfileEntries {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, field+" accepts at most 10 entries", nil)
	}
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if err := s.deps.Moderation.Screen(ctx, v); err != nil {
			return nil, err
		}
		out = append(out, moderation.Sanitize(v))
	}
	return out, nil
}
