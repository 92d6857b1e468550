// Package ephemeris provides a deterministic sidereal ephemeris built from
// mean orbital elements. Positions are accurate to a few degrees, which is
// enough to drive panchanga factor derivation; swapping in a high precision
// backend only requires another astro.Ephemeris implementation.
package ephemeris

import (
	"math"
	"time"

	"github.com/vedicworks/muhurat-api/internal/domain/astro"
)

const (
	// J2000 epoch as Unix seconds (2000-01-01 12:00 TT, leap seconds ignored).
	j2000Unix = 946728000.0

	obliquity = 23.4393 // mean obliquity of the ecliptic, degrees

	degPerRad = 180.0 / math.Pi
	radPerDeg = math.Pi / 180.0
)

// meanElement holds a linear longitude model: lon(d) = base + rate*d, with d
// in days since J2000.
type meanElement struct {
	base float64
	rate float64
}

// Mean tropical longitudes; the lunar node regresses.
var elements = map[astro.Planet]meanElement{
	astro.Sun:     {280.4665, 0.98564736},
	astro.Moon:    {218.3165, 13.17639648},
	astro.Mercury: {252.2509, 4.09233445},
	astro.Venus:   {181.9798, 1.60213034},
	astro.Mars:    {355.4330, 0.52403068},
	astro.Jupiter: {34.3515, 0.08308529},
	astro.Saturn:  {50.0774, 0.03344414},
	astro.Rahu:    {125.0445, -0.05295377},
}

// Provider implements astro.Ephemeris with sidereal (Lahiri) longitudes.
type Provider struct{}

func New() *Provider { return &Provider{} }

func (p *Provider) PlanetLongitude(utc time.Time, body astro.Planet) float64 {
	d := daysSinceJ2000(utc)
	el, ok := elements[body]
	if !ok {
		if body == astro.Ketu {
			return norm360(p.PlanetLongitude(utc, astro.Rahu) + 180)
		}
		return 0
	}
	return norm360(el.base + el.rate*d - ayanamsa(d))
}

func (p *Provider) HouseCusps(utc time.Time, latitude, longitude float64) ([12]float64, float64) {
	asc := p.ascendant(utc, latitude, longitude)
	var cusps [12]float64
	for i := range cusps {
		cusps[i] = norm360(asc + float64(i)*30)
	}
	return cusps, asc
}

// ascendant derives the sidereal rising degree from the local sidereal time,
// the latitude and the obliquity of the ecliptic.
func (p *Provider) ascendant(utc time.Time, latitude, longitude float64) float64 {
	d := daysSinceJ2000(utc)
	lst := norm360(280.46061837 + 360.98564736629*d + longitude)

	ramc := lst * radPerDeg
	eps := obliquity * radPerDeg
	phi := latitude * radPerDeg

	asc := math.Atan2(math.Cos(ramc), -(math.Sin(ramc)*math.Cos(eps) + math.Tan(phi)*math.Sin(eps)))
	return norm360(asc*degPerRad - ayanamsa(d))
}

// ayanamsa approximates the Lahiri value: 23.85 degrees at J2000, precessing
// at roughly 50.27 arcseconds per year.
func ayanamsa(d float64) float64 {
	return 23.85675 + (50.27/3600.0)*(d/365.25)
}

func daysSinceJ2000(utc time.Time) float64 {
	return (float64(utc.Unix()) - j2000Unix) / 86400.0
}

func norm360(v float64) float64 {
	v = math.Mod(v, 360)
	if v < 0 {
		v += 360
	}
	return v
}
