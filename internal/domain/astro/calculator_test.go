package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeEphemeris serves scripted longitudes and an equal-house cusp ring.
type fakeEphemeris struct {
	longitudes map[Planet]float64
	ascendant  float64
}

func (f *fakeEphemeris) PlanetLongitude(_ time.Time, body Planet) float64 {
	return f.longitudes[body]
}

func (f *fakeEphemeris) HouseCusps(_ time.Time, _, _ float64) ([12]float64, float64) {
	var cusps [12]float64
	for i := range cusps {
		cusps[i] = norm360(f.ascendant + float64(i)*30.0)
	}
	return cusps, f.ascendant
}

func testLocation() Location {
	return Location{Latitude: 12.9716, Longitude: 77.5946, Timezone: "Asia/Kolkata"}
}

func newFake() *fakeEphemeris {
	return &fakeEphemeris{
		longitudes: map[Planet]float64{
			Sun:     120.0,
			Moon:    95.0,
			Mars:    10.0,
			Mercury: 130.0,
			Jupiter: 100.0,
			Venus:   140.0,
			Saturn:  200.0,
			Rahu:    45.0,
		},
		ascendant: 85.0,
	}
}

func TestComputeDeterministic(t *testing.T) {
	calc := NewCalculator(newFake())
	loc := testLocation()
	tz, err := loc.TZ()
	require.NoError(t, err)
	local := time.Date(2025, 6, 1, 9, 30, 0, 0, tz)

	first := calc.Compute(local, loc)
	second := calc.Compute(local, loc)
	require.Equal(t, first, second)
}

func TestComputeFactors(t *testing.T) {
	calc := NewCalculator(newFake())
	loc := testLocation()
	tz, err := loc.TZ()
	require.NoError(t, err)
	local := time.Date(2025, 6, 1, 9, 30, 0, 0, tz)

	fs := calc.Compute(local, loc)

	// moon 95°: nakshatra 7 (Pushya), pada floor(1.666/3.333)+1 = 1
	require.Equal(t, Nakshatra("Pushya"), fs.Nakshatra)
	require.Equal(t, 1, fs.Pada)
	require.Equal(t, Rashi("Karka (Cancer)"), fs.Rashi)

	// moon-sun = -25 -> 335; tithi idx 27, yoga (95+120)/13.333 = 16, karana idx 55
	require.Equal(t, Tithi("Trayodashi"), fs.Tithi)
	require.Equal(t, Yoga("Vyatipata"), fs.Yoga)
	require.Equal(t, Karana("Vishti"), fs.Karana)

	// ascendant 85° -> Mithuna; eighth cusp 85+210=295 -> Makara
	require.Equal(t, Rashi("Mithuna (Gemini)"), fs.Lagna)
	require.Equal(t, Mercury, fs.LagnaLord)
	require.Equal(t, Rashi("Makara (Capricorn)"), fs.EighthHouseRashi)

	// jupiter 100° -> Karka, its exaltation sign
	require.Equal(t, Rashi("Karka (Cancer)"), fs.JupiterRashi)
	require.True(t, fs.JupiterStrong)

	// baby dasha at the same instant is the birth nakshatra's lord
	require.Equal(t, Saturn, fs.DashaLord)
}

func TestNakshatraAtSweep(t *testing.T) {
	for lon := 0.0; lon < 360.0; lon += 0.5 {
		n, pada := NakshatraAt(lon)
		require.NotEmpty(t, n, "lon %f", lon)
		require.GreaterOrEqual(t, pada, 1, "lon %f", lon)
		require.LessOrEqual(t, pada, 4, "lon %f", lon)
	}
}

func TestTithiNeverAmavasyaExceptLast(t *testing.T) {
	require.Equal(t, Tithi("Pratipada"), Tithis[0])
	require.Equal(t, Tithi("Pratipada"), Tithis[15])
	require.Equal(t, Tithi("Purnima"), Tithis[14])
	require.Equal(t, Tithi("Amavasya"), Tithis[29])
	for i, name := range Tithis {
		if i != 29 {
			require.NotEqual(t, Tithi("Amavasya"), name, "index %d", i)
		}
	}
}

func TestHouseForTotalAndExclusive(t *testing.T) {
	cusps := [12]float64{350, 20, 50, 80, 110, 140, 170, 200, 230, 260, 290, 320}
	for lon := 0.0; lon < 360.0; lon += 0.25 {
		matches := 0
		house := HouseFor(cusps, lon)
		require.GreaterOrEqual(t, house, 1)
		require.LessOrEqual(t, house, 12)
		for i := 0; i < 12; i++ {
			start := cusps[i]
			end := cusps[(i+1)%12]
			if start <= end {
				if lon >= start && lon < end {
					matches++
				}
			} else if lon >= start || lon < end {
				matches++
			}
		}
		require.Equal(t, 1, matches, "lon %f", lon)
	}
}

func TestKetuOppositeRahu(t *testing.T) {
	for _, rahuLon := range []float64{0, 45, 179.5, 180, 270, 359.9} {
		fake := newFake()
		fake.longitudes[Rahu] = rahuLon
		calc := NewCalculator(fake)

		ch := calc.computeChart(time.Date(2025, 6, 1, 4, 0, 0, 0, time.UTC), 12.97, 77.59)

		ketuLon := norm360(rahuLon + 180.0)
		require.Equal(t, RashiAt(ketuLon), ch.planetRashis[Ketu], "rahu %f", rahuLon)
		cusps, _ := fake.HouseCusps(time.Time{}, 0, 0)
		require.Equal(t, HouseFor(cusps, ketuLon), ch.planetHouses[Ketu], "rahu %f", rahuLon)
	}
}

func TestHouseStrengthCountsBenefics(t *testing.T) {
	fake := newFake()
	// ascendant 0: house i covers [(i-1)*30, i*30)
	fake.ascendant = 0
	fake.longitudes = map[Planet]float64{
		Sun:     245.0, // 9th house, not benefic
		Moon:    250.0, // 9th house, benefic
		Mars:    5.0,
		Mercury: 255.0, // 9th house, benefic
		Jupiter: 95.0,  // 4th house, benefic
		Venus:   100.0, // 4th house, benefic
		Saturn:  200.0,
		Rahu:    10.0,
	}
	calc := NewCalculator(fake)
	loc := testLocation()
	tz, err := loc.TZ()
	require.NoError(t, err)

	fs := calc.Compute(time.Date(2025, 6, 1, 9, 0, 0, 0, tz), loc)
	require.Equal(t, 2, fs.NinthStrength)
	require.Equal(t, 2, fs.FourthStrength)
}

func TestPlanetStrong(t *testing.T) {
	require.True(t, PlanetStrong(Jupiter, "Karka (Cancer)", 3), "exaltation")
	require.True(t, PlanetStrong(Jupiter, "Meena (Pisces)", 5), "own sign")
	require.True(t, PlanetStrong(Jupiter, "Simha (Leo)", 10), "kendra")
	require.False(t, PlanetStrong(Jupiter, "Simha (Leo)", 6))
}

func TestComposePlace(t *testing.T) {
	in := LocationInput{City: "Mysore", State: "Karnataka", Country: "India"}
	require.Equal(t, "Mysore, Karnataka, India", in.ComposePlace())

	in.Place = "Bangalore, India"
	require.Equal(t, "Bangalore, India", in.ComposePlace())

	require.Equal(t, "", LocationInput{}.ComposePlace())
}

func TestSyllablesFor(t *testing.T) {
	require.Equal(t, []string{"Chu"}, SyllablesFor("Ashwini", 1))
	require.Equal(t, []string{"Do"}, SyllablesFor("Revati", 2))
	require.Nil(t, SyllablesFor("Ashwini", 5))
	require.Nil(t, SyllablesFor("Unknown", 1))
}
