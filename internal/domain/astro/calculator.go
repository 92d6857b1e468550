package astro

import (
	"math"
	"time"
)

// Calculator derives the full factor set for an instant and place. It is a
// pure function of the injected ephemeris oracle: no network, no state.
type Calculator struct {
	eph Ephemeris
}

// NewCalculator wires the calculator to an ephemeris oracle.
func NewCalculator(eph Ephemeris) *Calculator {
	return &Calculator{eph: eph}
}

// Compute evaluates every astrological factor for a local civil datetime.
// The caller must construct local in the location's own time zone; Compute
// converts to UTC before consulting the oracle.
func (c *Calculator) Compute(local time.Time, loc Location) FactorSet {
	utc := local.UTC()

	moonLon := c.eph.PlanetLongitude(utc, Moon)
	sunLon := c.eph.PlanetLongitude(utc, Sun)
	jupiterLon := c.eph.PlanetLongitude(utc, Jupiter)

	ch := c.computeChart(utc, loc.Latitude, loc.Longitude)

	nakshatra, pada := NakshatraAt(moonLon)

	fs := FactorSet{
		UTC:              utc,
		MoonLongitude:    moonLon,
		SunLongitude:     sunLon,
		JupiterLongitude: jupiterLon,
		Nakshatra:        nakshatra,
		Pada:             pada,
		Rashi:            RashiAt(moonLon),
		Tithi:            TithiAt(moonLon, sunLon),
		Yoga:             YogaAt(moonLon, sunLon),
		Karana:           KaranaAt(moonLon, sunLon),
		Lagna:            ch.lagna,
		LagnaLord:        ch.lagnaLord,
		EighthHouseRashi: RashiAt(ch.cusps[7]),
		NinthLord:        SignLords[RashiAt(ch.cusps[8])],
		FourthLord:       SignLords[RashiAt(ch.cusps[3])],
		JupiterRashi:     RashiAt(jupiterLon),
		DashaLord:        DashaLordAt(moonLon, utc, utc),
	}

	for _, p := range chartBodies {
		if !BeneficPlanets[p] {
			continue
		}
		switch ch.planetHouses[p] {
		case 9:
			fs.NinthStrength++
		case 4:
			fs.FourthStrength++
		}
	}
	// Ketu is never benefic, so the derived node does not affect strengths.

	fs.JupiterStrong = PlanetStrong(Jupiter, ch.planetRashis[Jupiter], ch.planetHouses[Jupiter])

	return fs
}

// ComputeParentMeta derives the per-parent factors that stay constant for a
// request: the 5th and 9th house lords of the birth chart, Jupiter strength
// at birth, and the birth moon position feeding the dasha timeline.
func (c *Calculator) ComputeParentMeta(local time.Time, loc Location) ParentMeta {
	utc := local.UTC()
	ch := c.computeChart(utc, loc.Latitude, loc.Longitude)

	return ParentMeta{
		BirthUTC:      utc,
		BirthMoonLon:  c.eph.PlanetLongitude(utc, Moon),
		FifthLord:     SignLords[RashiAt(ch.cusps[4])],
		NinthLord:     SignLords[RashiAt(ch.cusps[8])],
		JupiterStrong: PlanetStrong(Jupiter, ch.planetRashis[Jupiter], ch.planetHouses[Jupiter]),
	}
}

func (c *Calculator) computeChart(utc time.Time, lat, lon float64) chart {
	cusps, asc := c.eph.HouseCusps(utc, lat, lon)

	ch := chart{
		cusps:        cusps,
		ascendant:    norm360(asc),
		planetRashis: make(map[Planet]Rashi, len(chartBodies)+1),
		planetHouses: make(map[Planet]int, len(chartBodies)+1),
	}
	ch.lagna = RashiAt(ch.ascendant)
	ch.lagnaLord = SignLords[ch.lagna]

	var rahuLon float64
	for _, body := range chartBodies {
		plon := norm360(c.eph.PlanetLongitude(utc, body))
		if body == Rahu {
			rahuLon = plon
		}
		ch.planetRashis[body] = RashiAt(plon)
		ch.planetHouses[body] = HouseFor(cusps, plon)
	}

	// Ketu sits exactly opposite the mean node.
	ketuLon := norm360(rahuLon + 180.0)
	ch.planetRashis[Ketu] = RashiAt(ketuLon)
	ch.planetHouses[Ketu] = HouseFor(cusps, ketuLon)

	return ch
}

// NakshatraAt maps a moon longitude to its lunar mansion and quarter (1..4).
func NakshatraAt(moonLon float64) (Nakshatra, int) {
	lon := norm360(moonLon)
	idx := int(lon / NakshatraSpan)
	if idx > 26 {
		idx = 26
	}
	pada := int(math.Mod(lon, NakshatraSpan)/PadaSpan) + 1
	if pada > 4 {
		pada = 4
	}
	return Nakshatras[idx], pada
}

// NakshatraIndex returns the 0-based mansion index for a moon longitude.
func NakshatraIndex(moonLon float64) int {
	idx := int(norm360(moonLon) / NakshatraSpan)
	if idx > 26 {
		idx = 26
	}
	return idx
}

// RashiAt maps any ecliptic longitude to its 30° sign.
func RashiAt(lon float64) Rashi {
	idx := int(norm360(lon) / 30.0)
	if idx > 11 {
		idx = 11
	}
	return Rashis[idx]
}

// TithiAt derives the lunar day from the moon-sun elongation (12° per tithi).
func TithiAt(moonLon, sunLon float64) Tithi {
	idx := int(norm360(moonLon-sunLon) / 12.0)
	if idx > 29 {
		idx = 29
	}
	return Tithis[idx]
}

// YogaAt derives the yoga from the summed moon and sun longitudes.
func YogaAt(moonLon, sunLon float64) Yoga {
	idx := int(norm360(moonLon+sunLon) / NakshatraSpan)
	if idx > 26 {
		idx = 26
	}
	return Yogas[idx]
}

// KaranaAt derives the half-tithi name. Indices 0..55 cycle through the seven
// movable karanas; 56..59 are the four fixed ones.
func KaranaAt(moonLon, sunLon float64) Karana {
	idx := int(norm360(moonLon-sunLon) / 6.0)
	if idx > 59 {
		idx = 59
	}
	if idx >= 56 {
		return fixedKaranas[idx-56]
	}
	return movableKaranas[idx%7]
}

// HouseFor places a longitude into the unique house whose [cusp, next cusp)
// arc contains it, wrapping at 360°. Assignment is total: every longitude
// lands in exactly one of the 12 houses.
func HouseFor(cusps [12]float64, lon float64) int {
	l := norm360(lon)
	for i := 0; i < 12; i++ {
		start := norm360(cusps[i])
		end := norm360(cusps[(i+1)%12])
		if start <= end {
			if l >= start && l < end {
				return i + 1
			}
		} else if l >= start || l < end {
			return i + 1
		}
	}
	return 1
}

// PlanetStrong reports whether a planet is exalted, in its own sign, or in a
// kendra house (1, 4, 7, 10 from the ascendant).
func PlanetStrong(p Planet, r Rashi, house int) bool {
	if ExaltedSigns[p] == r {
		return true
	}
	if OwnSigns[p][r] {
		return true
	}
	return house == 1 || house == 4 || house == 7 || house == 10
}

func norm360(deg float64) float64 {
	m := math.Mod(deg, 360.0)
	if m < 0 {
		m += 360.0
	}
	return m
}
