package astro

// Fixed sidereal tables. All of these are read-only after process start and
// safe to share across concurrent requests.

// NakshatraSpan is the arc of one lunar mansion in degrees (13°20′).
const NakshatraSpan = 360.0 / 27.0

// PadaSpan is the arc of one nakshatra quarter (3°20′).
const PadaSpan = NakshatraSpan / 4.0

// Nakshatras lists the 27 lunar mansions in zodiac order.
var Nakshatras = [27]Nakshatra{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira",
	"Ardra", "Punarvasu", "Pushya", "Ashlesha",
	"Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha",
	"Anuradha", "Jyeshtha", "Mula",
	"Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada",
	"Uttara Bhadrapada", "Revati",
}

// Rashis lists the 12 signs in zodiac order, 30° each.
var Rashis = [12]Rashi{
	"Mesha (Aries)", "Vrishabha (Taurus)", "Mithuna (Gemini)",
	"Karka (Cancer)", "Simha (Leo)", "Kanya (Virgo)",
	"Tula (Libra)", "Vrischika (Scorpio)", "Dhanu (Sagittarius)",
	"Makara (Capricorn)", "Kumbha (Aquarius)", "Meena (Pisces)",
}

// Tithis lists the 30 lunar days. Entries 15..29 repeat the waxing names
// except the last, where Amavasya replaces Purnima.
var Tithis = [30]Tithi{
	"Pratipada", "Dvitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
	"Pratipada", "Dvitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Amavasya",
}

// Yogas lists the 27 sun+moon combinations.
var Yogas = [27]Yoga{
	"Vishkumbha", "Preeti", "Ayushman", "Saubhagya", "Shobhana",
	"Atiganda", "Sukarma", "Dhriti", "Shoola", "Ganda",
	"Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra",
	"Siddhi", "Vyatipata", "Variyana", "Parigha", "Shiva",
	"Siddha", "Sadhya", "Shubha", "Shukla", "Brahma",
	"Indra", "Vaidhriti",
}

// movableKaranas repeat eight times across karana indices 0..55.
var movableKaranas = [7]Karana{
	"Bava", "Balava", "Kaulava", "Taitila", "Gara", "Vanija", "Vishti",
}

// fixedKaranas occupy the last four half-tithis of the cycle (56..59).
var fixedKaranas = [4]Karana{
	"Shakuni", "Chatushpada", "Naga", "Kimstughna",
}

// NakshatraLords maps each nakshatra to its Vimshottari ruler; the nine
// planet cycle repeats three times across the 27 mansions.
var NakshatraLords = [27]Planet{
	Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury,
	Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury,
	Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury,
}

// DashaPeriod is one leg of the 120 year Vimshottari cycle.
type DashaPeriod struct {
	Lord  Planet
	Years float64
}

// DashaSequence is the fixed Vimshottari order; years sum to 120.
var DashaSequence = [9]DashaPeriod{
	{Ketu, 7}, {Venus, 20}, {Sun, 6}, {Moon, 10}, {Mars, 7},
	{Rahu, 18}, {Jupiter, 16}, {Saturn, 19}, {Mercury, 17},
}

// SignLords maps each rashi to its ruling planet.
var SignLords = map[Rashi]Planet{
	"Mesha (Aries)":        Mars,
	"Vrishabha (Taurus)":   Venus,
	"Mithuna (Gemini)":     Mercury,
	"Karka (Cancer)":       Moon,
	"Simha (Leo)":          Sun,
	"Kanya (Virgo)":        Mercury,
	"Tula (Libra)":         Venus,
	"Vrischika (Scorpio)":  Mars,
	"Dhanu (Sagittarius)":  Jupiter,
	"Makara (Capricorn)":   Saturn,
	"Kumbha (Aquarius)":    Saturn,
	"Meena (Pisces)":       Jupiter,
}

// PlanetFriends captures the standard Vedic friendship table.
var PlanetFriends = map[Planet]map[Planet]bool{
	Sun:     {Moon: true, Mars: true, Jupiter: true},
	Moon:    {Sun: true, Mercury: true},
	Mars:    {Sun: true, Moon: true, Jupiter: true},
	Mercury: {Sun: true, Venus: true},
	Jupiter: {Sun: true, Moon: true, Mars: true},
	Venus:   {Mercury: true, Saturn: true},
	Saturn:  {Mercury: true, Venus: true},
	Rahu:    {Venus: true, Saturn: true, Mercury: true},
	Ketu:    {Mars: true, Jupiter: true, Sun: true},
}

// ExaltedSigns maps each planet to its exaltation sign.
var ExaltedSigns = map[Planet]Rashi{
	Sun:     "Mesha (Aries)",
	Moon:    "Vrishabha (Taurus)",
	Mars:    "Makara (Capricorn)",
	Mercury: "Kanya (Virgo)",
	Jupiter: "Karka (Cancer)",
	Venus:   "Meena (Pisces)",
	Saturn:  "Tula (Libra)",
	Rahu:    "Mithuna (Gemini)",
	Ketu:    "Dhanu (Sagittarius)",
}

// OwnSigns maps each planet to the signs it rules.
var OwnSigns = map[Planet]map[Rashi]bool{
	Sun:     {"Simha (Leo)": true},
	Moon:    {"Karka (Cancer)": true},
	Mars:    {"Mesha (Aries)": true, "Vrischika (Scorpio)": true},
	Mercury: {"Mithuna (Gemini)": true, "Kanya (Virgo)": true},
	Jupiter: {"Dhanu (Sagittarius)": true, "Meena (Pisces)": true},
	Venus:   {"Vrishabha (Taurus)": true, "Tula (Libra)": true},
	Saturn:  {"Makara (Capricorn)": true, "Kumbha (Aquarius)": true},
}

// BeneficPlanets is the set used for house strength and dasha scoring.
var BeneficPlanets = map[Planet]bool{
	Jupiter: true, Venus: true, Mercury: true, Moon: true,
}
