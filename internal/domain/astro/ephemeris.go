package astro

import "time"

// Ephemeris is the planetary position oracle. Implementations must be
// deterministic and side effect free: the calculator treats results as exact
// and never retries or caches them.
type Ephemeris interface {
	// PlanetLongitude returns the ecliptic longitude of a body in degrees
	// [0, 360) at the given UTC instant. Rahu is the mean lunar node; Ketu is
	// never requested (it is derived as the opposite point).
	PlanetLongitude(utc time.Time, body Planet) float64

	// HouseCusps returns the 12 Placidus house cusp longitudes (index 0 is
	// house 1) and the ascendant longitude for an instant and place.
	HouseCusps(utc time.Time, latitude, longitude float64) (cusps [12]float64, ascendant float64)
}

// chartBodies are the bodies placed into houses. Ketu is derived from Rahu.
var chartBodies = [8]Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu}
