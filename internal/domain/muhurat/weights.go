package muhurat

import "github.com/vedicworks/muhurat-api/internal/domain/astro"

// Factor names one term of the scoring model.
type Factor string

const (
	FactorNakshatra           Factor = "nakshatra"
	FactorRashi               Factor = "rashi"
	FactorPada                Factor = "pada"
	FactorTithi               Factor = "tithi"
	FactorYoga                Factor = "yoga"
	FactorKarana              Factor = "karana"
	FactorLagna               Factor = "lagna"
	FactorEighthHouse         Factor = "eighth_house"
	FactorJupiter             Factor = "jupiter"
	FactorDasha               Factor = "dasha"
	FactorParentsDasha        Factor = "parents_dasha"
	FactorLagnaFriendship     Factor = "lagna_friendship"
	FactorArrivalIndicator    Factor = "arrival_indicator"
	FactorDashaSandhi         Factor = "dasha_sandhi"
	FactorJupiterCompensation Factor = "jupiter_compensation"
	FactorDashaClash          Factor = "dasha_clash"
	FactorNinthHouseStrength  Factor = "ninth_house_strength"
	FactorFourthHouseStrength Factor = "fourth_house_strength"
	FactorBabyStartDasha      Factor = "baby_start_dasha"
)

// Weights maps scoring factors to non-negative integer weights. The active
// table is always passed explicitly; nothing ever mutates the base table.
type Weights map[Factor]int

// baseWeights is the fixed default table. dasha_clash is the only factor
// applied as a penalty.
var baseWeights = Weights{
	FactorNakshatra:           3,
	FactorRashi:               2,
	FactorPada:                1,
	FactorTithi:               2,
	FactorYoga:                2,
	FactorKarana:              1,
	FactorLagna:               2,
	FactorEighthHouse:         2,
	FactorJupiter:             2,
	FactorDasha:               2,
	FactorParentsDasha:        2,
	FactorLagnaFriendship:     3,
	FactorArrivalIndicator:    3,
	FactorDashaSandhi:         2,
	FactorJupiterCompensation: 2,
	FactorDashaClash:          3,
	FactorNinthHouseStrength:  2,
	FactorFourthHouseStrength: 2,
	FactorBabyStartDasha:      2,
}

// BaseWeights returns a fresh copy of the default weight table.
func BaseWeights() Weights {
	out := make(Weights, len(baseWeights))
	for k, v := range baseWeights {
		out[k] = v
	}
	return out
}

// Benefic category sets used by scoring and trait filters.
var (
	shubhaNakshatras = map[astro.Nakshatra]bool{
		"Rohini": true, "Mrigashira": true, "Punarvasu": true, "Pushya": true,
		"Hasta": true, "Anuradha": true, "Uttara Phalguni": true,
		"Uttara Ashadha": true, "Uttara Bhadrapada": true, "Revati": true,
	}

	beneficRashis = map[astro.Rashi]bool{
		"Vrishabha (Taurus)": true,
		"Karka (Cancer)":     true,
		"Tula (Libra)":       true,
		"Meena (Pisces)":     true,
	}

	beneficTithis = map[astro.Tithi]bool{
		"Dvitiya": true, "Tritiya": true, "Panchami": true, "Shashthi": true,
		"Dashami": true, "Ekadashi": true, "Trayodashi": true, "Chaturdashi": true,
	}

	beneficYogas = map[astro.Yoga]bool{
		"Preeti": true, "Ayushman": true, "Saubhagya": true, "Shobhana": true,
		"Sukarma": true, "Dhriti": true, "Vriddhi": true, "Dhruva": true,
		"Harshana": true, "Vajra": true, "Siddhi": true, "Variyana": true,
		"Shiva": true, "Siddha": true, "Sadhya": true, "Shubha": true,
		"Shukla": true, "Brahma": true, "Indra": true,
	}

	// Vishti and the four fixed karanas are excluded.
	beneficKaranas = map[astro.Karana]bool{
		"Bava": true, "Balava": true, "Kaulava": true,
		"Taitila": true, "Gara": true, "Vanija": true,
	}

	// Lagna and Jupiter placements reuse the benefic rashi set.
	beneficLagnas        = beneficRashis
	beneficJupiterRashis = beneficRashis

	beneficDashaLords = map[astro.Planet]bool{
		astro.Jupiter: true, astro.Venus: true, astro.Mercury: true, astro.Moon: true,
	}
)
