package unit

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/vedicworks/muhurat-api/internal/domain/astro"
	"github.com/vedicworks/muhurat-api/internal/domain/muhurat"
	"github.com/vedicworks/muhurat-api/internal/domain/names"
	"github.com/vedicworks/muhurat-api/internal/infra/ephemeris"
	"github.com/vedicworks/muhurat-api/internal/infra/suggeststore"
	"github.com/vedicworks/muhurat-api/pkg/metrics"
)

type fixedResolver struct{}

func (fixedResolver) Resolve(context.Context, astro.LocationInput) (astro.Location, error) {
	return astro.Location{Latitude: 12.9716, Longitude: 77.5946, Timezone: "Asia/Kolkata"}, nil
}

func newMuhuratService(store muhurat.Store) muhurat.Service {
	calc := astro.NewCalculator(ephemeris.New())
	cfg := muhurat.Config{
		SlotMinutes:       60,
		DayStartHour:      6,
		DayEndHour:        20,
		HardCapMultiplier: 5,
		MinScore:          10,
		MaxRangeDays:      365,
		DefaultResults:    5,
		CacheTTL:          time.Hour,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return muhurat.NewService(cfg, calc, fixedResolver{}, muhurat.NopTraitMapper{}, store, metrics.New(), logger)
}

func TestSuggestEndToEndWithMeanEphemeris(t *testing.T) {
	store := suggeststore.NewMemoryStore(clockwork.NewFakeClock())
	svc := newMuhuratService(store)

	req := muhurat.Request{
		StartDate: "2024-06-10",
		EndDate:   "2024-06-12",
		Location:  astro.LocationInput{Timezone: "Asia/Kolkata"},
	}
	resp, err := svc.Suggest(context.Background(), req)
	require.NoError(t, err)
	require.False(t, resp.Cached)
	require.NotEmpty(t, resp.Results)
	require.LessOrEqual(t, len(resp.Results), 5)

	for i := 1; i < len(resp.Results); i++ {
		require.GreaterOrEqual(t, resp.Results[i-1].Score, resp.Results[i].Score)
	}
	for _, c := range resp.Results {
		require.NotEmpty(t, c.Nakshatra)
		require.NotEmpty(t, c.Rashi)
		require.NotEmpty(t, c.RecommendedSyllables)
	}
}

func TestSuggestSecondCallServedFromCache(t *testing.T) {
	store := suggeststore.NewMemoryStore(clockwork.NewFakeClock())
	svc := newMuhuratService(store)

	req := muhurat.Request{
		StartDate: "2024-06-10",
		EndDate:   "2024-06-10",
		Location:  astro.LocationInput{Timezone: "Asia/Kolkata"},
	}
	first, err := svc.Suggest(context.Background(), req)
	require.NoError(t, err)
	require.False(t, first.Cached)

	second, err := svc.Suggest(context.Background(), req)
	require.NoError(t, err)
	require.True(t, second.Cached)
	require.Equal(t, first.Results, second.Results)
}

func TestNamesEndToEndWithMeanEphemeris(t *testing.T) {
	calc := astro.NewCalculator(ephemeris.New())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := names.NewService(calc, fixedResolver{}, logger)

	req := names.Request{
		Baby: names.BabyDetails{
			Gender:      "male",
			DateOfBirth: "2024-06-10",
			TimeOfBirth: "09:15",
			Location:    astro.LocationInput{Timezone: "Asia/Kolkata"},
		},
		Preferences: names.Preferences{
			Origins: []string{"sanskrit", "hindi", "modern_indian"},
			Count:   5,
		},
	}
	resp, err := svc.Suggest(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Details.Nakshatra)
	require.NotEmpty(t, resp.Details.RecommendedSyllables)
	require.Len(t, resp.Suggestions, 5)
	require.Equal(t, 1, resp.Suggestions[0].Rank)
}
