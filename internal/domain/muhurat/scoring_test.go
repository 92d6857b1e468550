package muhurat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vedicworks/muhurat-api/internal/domain/astro"
)

// auspiciousFactors builds a slot where every gated factor lands in its
// benefic set.
func auspiciousFactors() astro.FactorSet {
	return astro.FactorSet{
		Nakshatra:        "Pushya",
		Pada:             1,
		Rashi:            "Karka (Cancer)",
		Tithi:            "Panchami",
		Yoga:             "Siddhi",
		Karana:           "Bava",
		Lagna:            "Tula (Libra)",
		LagnaLord:        astro.Venus,
		EighthHouseRashi: "Meena (Pisces)",
		JupiterRashi:     "Karka (Cancer)",
		JupiterStrong:    true,
		DashaLord:        astro.Jupiter,
		NinthStrength:    2,
		FourthStrength:   1,
	}
}

// inauspiciousFactors builds a slot where nothing scores except the flat
// start dasha bonus.
func inauspiciousFactors() astro.FactorSet {
	return astro.FactorSet{
		Nakshatra:        "Ashwini",
		Pada:             2,
		Rashi:            "Mesha (Aries)",
		Tithi:            "Pratipada",
		Yoga:             "Vishkambha",
		Karana:           "Vishti",
		Lagna:            "Mesha (Aries)",
		LagnaLord:        astro.Mars,
		EighthHouseRashi: "Simha (Leo)",
		JupiterRashi:     "Mesha (Aries)",
		DashaLord:        astro.Sun,
	}
}

func TestScoreWithoutParents(t *testing.T) {
	// Gated sum: 3+2+1+2+2+1+2+2+2+2, house strengths 2*2+1*2, start dasha
	// bonus 2, for raw 27 over the base maximum of 46.
	got := Score(auspiciousFactors(), nil, nil, BaseWeights())
	require.Equal(t, 59, got)
}

func TestScoreFloorAndCeiling(t *testing.T) {
	low := Score(inauspiciousFactors(), nil, nil, BaseWeights())
	require.Equal(t, 4, low)

	high := Score(auspiciousFactors(), nil, nil, BaseWeights())
	require.LessOrEqual(t, high, 100)
	require.GreaterOrEqual(t, low, 0)
}

func TestScoreZeroWeights(t *testing.T) {
	require.Zero(t, Score(auspiciousFactors(), nil, nil, Weights{}))
}

func TestScoreParentInterplay(t *testing.T) {
	fs := auspiciousFactors()
	parents := &ParentsMeta{
		Mother: astro.ParentMeta{FifthLord: astro.Mercury, NinthLord: astro.Moon, JupiterStrong: false},
		Father: astro.ParentMeta{FifthLord: astro.Sun, NinthLord: astro.Moon, JupiterStrong: true},
	}
	// Mercury is benefic and a friend of Venus, so both parents' Mercury
	// dasha adds parents_dasha (2) and lagna_friendship (3); the mother's
	// dasha matching her fifth lord adds arrival_indicator (3); her weak
	// Jupiter against the slot's strong one adds compensation (2).
	dashas := &ParentsDasha{Mother: astro.Mercury, Father: astro.Mercury}

	got := Score(fs, dashas, parents, BaseWeights())
	require.Equal(t, 80, got) // raw 37 of 46

	// Without the parent charts the same slot scores lower.
	require.Greater(t, got, Score(fs, nil, nil, BaseWeights()))
}

func TestScoreDashaClashPenalty(t *testing.T) {
	fs := inauspiciousFactors() // Ashwini starts a Ketu dasha
	parents := &ParentsMeta{
		Mother: astro.ParentMeta{JupiterStrong: true},
		Father: astro.ParentMeta{JupiterStrong: true},
	}
	clash := &ParentsDasha{Mother: astro.Rahu, Father: astro.Sun}
	calm := &ParentsDasha{Mother: astro.Sun, Father: astro.Sun}

	penalized := Score(fs, clash, parents, BaseWeights())
	neutral := Score(fs, calm, parents, BaseWeights())
	require.Less(t, penalized, neutral)
	// raw 2 - 3 goes negative; the score clamps at zero.
	require.Zero(t, penalized)

	// The clash is symmetric: a Ketu parent dasha against a Rahu start
	// dasha is penalized the same way.
	fs2 := fs
	fs2.Nakshatra = "Ardra"
	reversed := Score(fs2, &ParentsDasha{Mother: astro.Ketu, Father: astro.Sun}, parents, BaseWeights())
	require.Zero(t, reversed)
}

func TestScorePadaGate(t *testing.T) {
	fs := inauspiciousFactors()
	base := Score(fs, nil, nil, BaseWeights())

	fs.Pada = 1
	require.Greater(t, Score(fs, nil, nil, BaseWeights()), base)
	fs.Pada = 4
	require.Greater(t, Score(fs, nil, nil, BaseWeights()), base)
	fs.Pada = 3
	require.Equal(t, base, Score(fs, nil, nil, BaseWeights()))
}

func TestScoreHouseStrengthScales(t *testing.T) {
	fs := inauspiciousFactors()
	base := Score(fs, nil, nil, BaseWeights())

	fs.NinthStrength = 2
	fs.FourthStrength = 1
	// raw gains 2*2 + 1*2 = 6 over the bare slot.
	require.Greater(t, Score(fs, nil, nil, BaseWeights()), base)
}

func TestScorePersonalizedWeightsShiftRanking(t *testing.T) {
	weights := PersonalizeWeights(BaseWeights(), []Trait{TraitIntelligence})

	fs := inauspiciousFactors()
	fs.Yoga = "Siddhi"
	boosted := Score(fs, nil, nil, weights)
	stock := Score(fs, nil, nil, BaseWeights())
	// The yoga factor carries 2+2*3=8 of a larger maximum instead of 2 of
	// 46, so the benefic yoga slot gains relative score.
	require.Greater(t, boosted, stock)
}
