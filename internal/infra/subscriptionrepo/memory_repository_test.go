package subscriptionrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/subscription"
)

func TestMemoryRepositoryUpsertAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, repo.Upsert(ctx, subscription.Record{UserID: "u1", Subscribed: true, Tier: subscription.TierPremium}))
	require.NoError(t, repo.Upsert(ctx, subscription.Record{UserID: "u1", Subscribed: false, Tier: subscription.TierFree}))

	rec, ok, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, rec.Subscribed)
}
