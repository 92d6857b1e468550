package suggeststore

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/vedicworks/muhurat-api/internal/domain/muhurat"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := NewMemoryStore(clock)
	ctx := context.Background()

	resp := muhurat.Response{
		Results: []muhurat.Candidate{{Date: "2024-06-10", Time: "09:00", Score: 61}},
	}
	require.NoError(t, store.SaveSuggestion(ctx, "k1", resp, time.Hour))

	got, ok, err := store.GetSuggestion(ctx, "k1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, resp, got)

	_, ok, err = store.GetSuggestion(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := NewMemoryStore(clock)
	ctx := context.Background()

	require.NoError(t, store.SaveSuggestion(ctx, "k1", muhurat.Response{}, time.Minute))

	_, ok, err := store.GetSuggestion(ctx, "k1")
	require.NoError(t, err)
	require.True(t, ok)

	clock.Advance(2 * time.Minute)
	_, ok, err = store.GetSuggestion(ctx, "k1")
	require.NoError(t, err)
	require.False(t, ok, "entry must expire after its TTL")
}

func TestMemoryStoreZeroTTLNeverExpires(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := NewMemoryStore(clock)
	ctx := context.Background()

	require.NoError(t, store.SaveSuggestion(ctx, "k1", muhurat.Response{}, 0))
	clock.Advance(1000 * time.Hour)

	_, ok, err := store.GetSuggestion(ctx, "k1")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMemoryStoreEmptyKey(t *testing.T) {
	store := NewMemoryStore(clockwork.NewFakeClock())
	ctx := context.Background()

	require.NoError(t, store.SaveSuggestion(ctx, "", muhurat.Response{}, time.Hour))
	_, ok, err := store.GetSuggestion(ctx, "")
	require.NoError(t, err)
	require.False(t, ok)
}
