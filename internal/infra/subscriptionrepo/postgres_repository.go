package subscriptionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/subscription"
)

// PostgresRepository reads the subscribers table maintained by the billing webhook.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Get implements subscription.Repository.
func (r *PostgresRepository) Get(ctx context.Context, userID string) (subscription.Record, bool, error) {
	var (
		rec       subscription.Record
		tier      *string
		productID *string
		end       *time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, subscribed, subscription_tier, product_id, subscription_end, updated_at
		FROM subscribers
		WHERE user_id = $1
		LIMIT 1
	`, userID).Scan(&rec.UserID, &rec.Subscribed, &tier, &productID, &end, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return subscription.Record{}, false, nil
	}
	if err != nil {
		return subscription.Record{}, false, err
	}
	if tier != nil {
		rec.Tier = *tier
	}
	if productID != nil {
		rec.ProductID = *productID
	}
	rec.SubscriptionEnd = end
	return rec, true, nil
}

// Upsert implements subscription.Repository.
func (r *PostgresRepository) Upsert(ctx context.Context, record subscription.Record) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO subscribers (user_id, subscribed, subscription_tier, product_id, subscription_end, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, now())
		ON CONFLICT (user_id) DO UPDATE SET
			subscribed = EXCLUDED.subscribed,
			subscription_tier = EXCLUDED.subscription_tier,
			product_id = EXCLUDED.product_id,
			subscription_end = EXCLUDED.subscription_end,
			updated_at = now()
	`, record.UserID, record.Subscribed, record.Tier, record.ProductID, record.SubscriptionEnd)
	return err
}

var _ subscription.Repository = (*PostgresRepository)(nil)
