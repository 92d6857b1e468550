package astro

import "time"

// Planet identifies one of the nine grahas used by the engine.
type Planet string

const (
	Sun     Planet = "Sun"
	Moon    Planet = "Moon"
	Mars    Planet = "Mars"
	Mercury Planet = "Mercury"
	Jupiter Planet = "Jupiter"
	Venus   Planet = "Venus"
	Saturn  Planet = "Saturn"
	Rahu    Planet = "Rahu"
	Ketu    Planet = "Ketu"
)

// Nakshatra names one of the 27 lunar mansions.
type Nakshatra string

// Rashi names one of the 12 zodiac signs.
type Rashi string

// Tithi names a lunar day.
type Tithi string

// Yoga names one of the 27 sun+moon combinations.
type Yoga string

// Karana names a half-tithi division.
type Karana string

// Location is a fully resolved geographic position. It is resolved once per
// request and reused for every slot evaluation.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// FactorSet is the immutable bundle of astrological factors computed for a
// single (datetime, location) pair. Every categorical field is a pure
// function of the oracle longitudes and house cusps.
type FactorSet struct {
	UTC time.Time `json:"-"`

	MoonLongitude    float64 `json:"moonLongitude"`
	SunLongitude     float64 `json:"sunLongitude"`
	JupiterLongitude float64 `json:"jupiterLongitude"`

	Nakshatra Nakshatra `json:"nakshatra"`
	Pada      int       `json:"pada"`
	Rashi     Rashi     `json:"rashi"`
	Tithi     Tithi     `json:"tithi"`
	Yoga      Yoga      `json:"yoga"`
	Karana    Karana    `json:"karana"`

	Lagna            Rashi  `json:"lagna"`
	LagnaLord        Planet `json:"lagnaLord"`
	EighthHouseRashi Rashi  `json:"eighthHouseRashi"`
	NinthLord        Planet `json:"ninthLord"`
	FourthLord       Planet `json:"fourthLord"`
	NinthStrength    int    `json:"ninthStrength"`
	FourthStrength   int    `json:"fourthStrength"`

	JupiterRashi  Rashi  `json:"jupiterRashi"`
	JupiterStrong bool   `json:"jupiterStrong"`
	DashaLord     Planet `json:"dashaLord"`
}

// ParentMeta is derived once per request from a parent's birth data and then
// reused for every scanned slot.
type ParentMeta struct {
	BirthUTC      time.Time `json:"-"`
	BirthMoonLon  float64   `json:"-"`
	FifthLord     Planet    `json:"fifthLord"`
	NinthLord     Planet    `json:"ninthLord"`
	JupiterStrong bool      `json:"jupiterStrong"`
}

// chart bundles the intermediate house geometry for one instant.
type chart struct {
	cusps        [12]float64
	ascendant    float64
	lagna        Rashi
	lagnaLord    Planet
	planetRashis map[Planet]Rashi
	planetHouses map[Planet]int
}
