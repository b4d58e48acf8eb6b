package profilerepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/guidance"
)

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.False(t, ok)

	want := guidance.SpiritualProfile{UserID: "u1", LifePathNumber: 22, StarseedOrigins: []string{"Lyran"}}
	require.NoError(t, repo.Upsert(ctx, want))
	got, ok, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)
}
