package subscription

import (
	"context"
	"time"
)

// Tier names.
const (
	TierFree    = "free"
	TierPremium = "premium"
)

// Record is the persisted billing state of a user, written by the payment integration.
type Record struct {
	UserID          string
	Subscribed      bool
	Tier            string
	ProductID       string
	SubscriptionEnd *time.Time
	UpdatedAt       time.Time
}

// Status is the effective subscription view returned to clients.
type Status struct {
	Subscribed      bool       `json:"subscribed"`
	Tier            string     `json:"tier"`
	ProductID       string     `json:"productId,omitempty"`
	SubscriptionEnd *time.Time `json:"subscriptionEnd,omitempty"`
}

// Repository reads subscription records.
type Repository interface {
	Get(ctx context.Context, userID string) (Record, bool, error)
	Upsert(ctx context.Context, record Record) error
}
