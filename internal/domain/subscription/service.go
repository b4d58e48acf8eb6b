package subscription

import (
	"context"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/mariemajor/looking-beyond-cosmos/pkg/errors"
	"github.com/mariemajor/looking-beyond-cosmos/pkg/util"
)

// Service resolves the effective tier of a user.
type Service interface {
	Status(ctx context.Context, userID string) (Status, error)
	RequirePremium(ctx context.Context, userID string) error
}

type service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires the subscription domain.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{repo: repo, logger: logger.With("component", "subscription.service"), now: util.NowUTC}
}

func (s *service) Status(ctx context.Context, userID string) (Status, error) {
	if strings.TrimSpace(userID) == "" {
		return freeStatus(), nil
	}
	record, ok, err := s.repo.Get(ctx, userID)
	if err != nil {
		return Status{}, apperrors.Wrap(apperrors.CodeStorage, "failed to load subscription", err)
	}
	if !ok || !record.Subscribed {
		return freeStatus(), nil
	}
	if record.SubscriptionEnd != nil && !record.SubscriptionEnd.After(s.now()) {
		s.logger.Info("subscription expired", "user_id", userID, "ended_at", record.SubscriptionEnd)
		return freeStatus(), nil
	}
	tier := record.Tier
	if tier == "" || tier == TierFree {
		tier = TierPremium
	}
	return Status{
		Subscribed:      true,
		Tier:            tier,
		ProductID:       record.ProductID,
		SubscriptionEnd: record.SubscriptionEnd,
	}, nil
}

func (s *service) RequirePremium(ctx context.Context, userID string) error {
	status, err := s.Status(ctx, userID)
	if err != nil {
		return err
	}
	if !status.Subscribed {
		return apperrors.Wrap(apperrors.CodeForbidden, "a premium subscription is required for this feature", nil)
	}
	return nil
}

func freeStatus() Status {
	return Status{Subscribed: false, Tier: TierFree}
}
