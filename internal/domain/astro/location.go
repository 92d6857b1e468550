package astro

import (
	"context"
	"strings"
	"time"
)

// LocationInput is the flexible location payload accepted by the API. Either
// explicit coordinates or a composable place description must be present.
type LocationInput struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Timezone  string   `json:"timezone,omitempty"`

	Place   string `json:"place,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	UseLLM  bool   `json:"useLlm,omitempty"`

	Label string `json:"label,omitempty"`
}

// HasCoordinates reports whether the input carries an explicit position.
func (in LocationInput) HasCoordinates() bool {
	return in.Latitude != nil && in.Longitude != nil
}

// ComposePlace builds the geocoding query string: an explicit place wins,
// otherwise city/state/country are joined in order.
func (in LocationInput) ComposePlace() string {
	if place := strings.TrimSpace(in.Place); place != "" {
		return place
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{in.City, in.State, in.Country} {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, ", ")
}

// LocationResolver turns a location input into resolved coordinates plus an
// IANA timezone. Implementations geocode at most once per call; resolution
// failures invalidate the whole request and are never retried per slot.
type LocationResolver interface {
	Resolve(ctx context.Context, in LocationInput) (Location, error)
}

// TZ loads the IANA timezone attached to a resolved location.
func (l Location) TZ() (*time.Location, error) {
	return time.LoadLocation(l.Timezone)
}
