// Package nominatim resolves location inputs to coordinates using the
// OpenStreetMap Nominatim search API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vedicworks/muhurat-api/internal/domain/astro"
	apperrors "github.com/vedicworks/muhurat-api/pkg/errors"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// geocodeTimeouts are tried in order; slow upstream responses get a second
// and third chance with a longer budget.
var geocodeTimeouts = []time.Duration{3 * time.Second, 6 * time.Second, 10 * time.Second}

// PlaceNormalizer rewrites a free-form place string into a geocodable one.
type PlaceNormalizer interface {
	NormalizePlace(ctx context.Context, place string) (string, error)
}

// Resolver implements astro.LocationResolver.
type Resolver struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	normalizer PlaceNormalizer
	logger     *slog.Logger
}

// NewResolver builds the geocoding resolver. The normalizer is optional.
func NewResolver(baseURL, userAgent string, normalizer PlaceNormalizer, logger *slog.Logger) *Resolver {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &Resolver{
		baseURL:   strings.TrimRight(base, "/"),
		userAgent: userAgent,
		// Per-attempt deadlines come from the request context.
		httpClient: &http.Client{},
		normalizer: normalizer,
		logger:     logger.With("component", "geocode.nominatim"),
	}
}

// Resolve turns a location input into coordinates plus timezone. The
// timezone must be supplied by the caller; coordinates are taken verbatim
// when present and geocoded from the place string otherwise.
func (r *Resolver) Resolve(ctx context.Context, in astro.LocationInput) (astro.Location, error) {
	tz := strings.TrimSpace(in.Timezone)
	if tz == "" {
		return astro.Location{}, apperrors.Wrap(apperrors.CodeLocationError,
			"timezone cannot be determined: an IANA timezone is required", nil)
	}

	if in.HasCoordinates() {
		return astro.Location{Latitude: *in.Latitude, Longitude: *in.Longitude, Timezone: tz}, nil
	}

	place := in.ComposePlace()
	if place == "" {
		return astro.Location{}, apperrors.Wrap(apperrors.CodeInvalidInput,
			"location requires coordinates or a place description", nil)
	}
	if in.UseLLM && r.normalizer != nil {
		if normalized, err := r.normalizer.NormalizePlace(ctx, place); err != nil {
			r.logger.Warn("place normalization failed, using raw place", "place", place, "error", err)
		} else if normalized != "" {
			place = normalized
		}
	}

	lat, lon, err := r.geocode(ctx, place)
	if err != nil {
		return astro.Location{}, err
	}
	return astro.Location{Latitude: lat, Longitude: lon, Timezone: tz}, nil
}

func (r *Resolver) geocode(ctx context.Context, place string) (float64, float64, error) {
	var lastErr error
	for attempt, timeout := range geocodeTimeouts {
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		lat, lon, err := r.search(attemptCtx, place)
		cancel()
		if err == nil {
			return lat, lon, nil
		}
		if apperrors.IsCode(err, apperrors.CodeLocationError) {
			// The upstream answered; retrying will not change the result.
			return 0, 0, err
		}
		lastErr = err
		r.logger.Warn("geocode attempt failed", "place", place, "attempt", attempt+1, "error", err)
	}
	return 0, 0, apperrors.Wrap(apperrors.CodeLocationError,
		fmt.Sprintf("could not geocode %q", place), lastErr)
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (r *Resolver) search(ctx context.Context, place string) (float64, float64, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", r.baseURL, url.QueryEscape(place))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return 0, 0, fmt.Errorf("geocode request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, 0, fmt.Errorf("read geocode response: %w", err)
	}

	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return 0, 0, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, apperrors.Wrap(apperrors.CodeLocationError, "place not found: "+place, nil)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse geocode latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse geocode longitude: %w", err)
	}
	return lat, lon, nil
}

var _ astro.LocationResolver = (*Resolver)(nil)
