package nominatim

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vedicworks/muhurat-api/internal/domain/astro"
	apperrors "github.com/vedicworks/muhurat-api/pkg/errors"
)

type stubNormalizer struct {
	out   string
	err   error
	calls int
}

func (s *stubNormalizer) NormalizePlace(context.Context, string) (string, error) {
	s.calls++
	return s.out, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func floatPtr(v float64) *float64 { return &v }

func TestResolvePassesThroughCoordinates(t *testing.T) {
	r := NewResolver("http://unused.invalid", "test-agent", nil, discardLogger())

	got, err := r.Resolve(context.Background(), astro.LocationInput{
		Latitude:  floatPtr(12.9716),
		Longitude: floatPtr(77.5946),
		Timezone:  "Asia/Kolkata",
	})
	require.NoError(t, err)
	require.Equal(t, astro.Location{Latitude: 12.9716, Longitude: 77.5946, Timezone: "Asia/Kolkata"}, got)
}

func TestResolveRequiresTimezone(t *testing.T) {
	r := NewResolver("http://unused.invalid", "test-agent", nil, discardLogger())

	_, err := r.Resolve(context.Background(), astro.LocationInput{
		Latitude:  floatPtr(12.9716),
		Longitude: floatPtr(77.5946),
	})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeLocationError))
}

func TestResolveGeocodesPlace(t *testing.T) {
	var gotQuery, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.Query().Get("q")
		gotAgent = req.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"12.9716","lon":"77.5946"}]`))
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, "test-agent", nil, discardLogger())
	got, err := r.Resolve(context.Background(), astro.LocationInput{
		City: "Bengaluru", State: "Karnataka", Country: "India",
		Timezone: "Asia/Kolkata",
	})
	require.NoError(t, err)
	require.Equal(t, "Bengaluru, Karnataka, India", gotQuery)
	require.Equal(t, "test-agent", gotAgent)
	require.InDelta(t, 12.9716, got.Latitude, 1e-9)
	require.InDelta(t, 77.5946, got.Longitude, 1e-9)
}

func TestResolvePlaceNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, "test-agent", nil, discardLogger())
	_, err := r.Resolve(context.Background(), astro.LocationInput{
		Place: "Atlantis", Timezone: "UTC",
	})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeLocationError))
}

func TestResolveRetriesTransportFailures(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		if hits < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"51.5074","lon":"-0.1278"}]`))
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, "test-agent", nil, discardLogger())
	got, err := r.Resolve(context.Background(), astro.LocationInput{
		Place: "London", Timezone: "Europe/London",
	})
	require.NoError(t, err)
	require.Equal(t, 3, hits)
	require.InDelta(t, 51.5074, got.Latitude, 1e-9)
}

func TestResolveExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, "test-agent", nil, discardLogger())
	_, err := r.Resolve(context.Background(), astro.LocationInput{
		Place: "Nowhere", Timezone: "UTC",
	})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeLocationError))
}

func TestResolveNormalizesWhenAsked(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"1","lon":"2"}]`))
	}))
	defer srv.Close()

	norm := &stubNormalizer{out: "Mysuru, Karnataka, India"}
	r := NewResolver(srv.URL, "test-agent", norm, discardLogger())
	_, err := r.Resolve(context.Background(), astro.LocationInput{
		Place: "mysore near bangalore", Timezone: "Asia/Kolkata", UseLLM: true,
	})
	require.NoError(t, err)
	require.Equal(t, 1, norm.calls)
	require.Equal(t, "Mysuru, Karnataka, India", gotQuery)
}

func TestResolveNormalizerFailureFallsBack(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"1","lon":"2"}]`))
	}))
	defer srv.Close()

	norm := &stubNormalizer{err: errors.New("model offline")}
	r := NewResolver(srv.URL, "test-agent", norm, discardLogger())
	_, err := r.Resolve(context.Background(), astro.LocationInput{
		Place: "mysore", Timezone: "Asia/Kolkata", UseLLM: true,
	})
	require.NoError(t, err)
	require.Equal(t, "mysore", gotQuery)
}
