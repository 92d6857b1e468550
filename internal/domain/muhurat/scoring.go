package muhurat

import (
	"math"

	"github.com/vedicworks/muhurat-api/internal/domain/astro"
)

// Score combines every weighted factor of a candidate slot into a normalized
// integer [0, 100]. Each gated term contributes its full weight or nothing;
// house strengths multiply their weight by the benefic occupant count; the
// dasha clash terms subtract. The raw sum is normalized against the maximum
// attainable raw for the same weight table, which is recomputed per call
// because trait personalization changes the table.
func Score(fs astro.FactorSet, parentsDasha *ParentsDasha, parents *ParentsMeta, w Weights) int {
	raw := 0

	if shubhaNakshatras[fs.Nakshatra] {
		raw += w[FactorNakshatra]
	}
	if beneficRashis[fs.Rashi] {
		raw += w[FactorRashi]
	}
	// First and fourth padas are mildly favored.
	if fs.Pada == 1 || fs.Pada == 4 {
		raw += w[FactorPada]
	}
	if beneficTithis[fs.Tithi] {
		raw += w[FactorTithi]
	}
	if beneficYogas[fs.Yoga] {
		raw += w[FactorYoga]
	}
	if beneficKaranas[fs.Karana] {
		raw += w[FactorKarana]
	}
	if beneficLagnas[fs.Lagna] {
		raw += w[FactorLagna]
	}
	if beneficLagnas[fs.EighthHouseRashi] {
		raw += w[FactorEighthHouse]
	}
	if beneficJupiterRashis[fs.JupiterRashi] {
		raw += w[FactorJupiter]
	}
	if beneficDashaLords[fs.DashaLord] {
		raw += w[FactorDasha]
	}
	if parentsDasha != nil &&
		beneficDashaLords[parentsDasha.Mother] && beneficDashaLords[parentsDasha.Father] {
		raw += w[FactorParentsDasha]
	}

	babyStart := astro.StartDashaLord(fs.Nakshatra)

	if parents != nil {
		raw += scoreLagnaFriendship(fs.LagnaLord, parentsDasha, w)

		if parentsDasha != nil {
			raw += scoreArrivalIndicator(parents.Mother, parentsDasha.Mother, w)
			raw += scoreArrivalIndicator(parents.Father, parentsDasha.Father, w)
			raw += scoreDashaClash(parentsDasha.Mother, babyStart, w)
			raw += scoreDashaClash(parentsDasha.Father, babyStart, w)
		}

		raw += scoreJupiterCompensation(parents.Mother.JupiterStrong, fs.JupiterStrong, w)
		raw += scoreJupiterCompensation(parents.Father.JupiterStrong, fs.JupiterStrong, w)
	}

	raw += fs.NinthStrength*w[FactorNinthHouseStrength] + fs.FourthStrength*w[FactorFourthHouseStrength]

	// A nakshatra always has a start lord, so this bonus lands on every
	// candidate. It has no discriminative effect on the ranking but stays in
	// both the raw sum and the denominator for score-range compatibility.
	if babyStart != "" {
		raw += w[FactorBabyStartDasha]
	}

	max := maxPossibleRaw(w)
	if max <= 0 {
		return 0
	}
	score := int(math.Round(float64(raw) / float64(max) * 100.0))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func scoreLagnaFriendship(lagnaLord astro.Planet, parentsDasha *ParentsDasha, w Weights) int {
	if parentsDasha == nil || parentsDasha.Mother == "" || parentsDasha.Father == "" {
		return 0
	}
	friends := astro.PlanetFriends[lagnaLord]
	if friends[parentsDasha.Mother] && friends[parentsDasha.Father] {
		return w[FactorLagnaFriendship]
	}
	return 0
}

func scoreArrivalIndicator(parent astro.ParentMeta, parentDasha astro.Planet, w Weights) int {
	if parentDasha == "" {
		return 0
	}
	if parentDasha == parent.FifthLord || parentDasha == parent.NinthLord {
		return w[FactorArrivalIndicator]
	}
	return 0
}

func scoreDashaClash(parentDasha, babyStart astro.Planet, w Weights) int {
	if parentDasha == "" || babyStart == "" {
		return 0
	}
	if (parentDasha == astro.Rahu && babyStart == astro.Ketu) ||
		(parentDasha == astro.Ketu && babyStart == astro.Rahu) {
		return -w[FactorDashaClash]
	}
	return 0
}

func scoreJupiterCompensation(parentStrong, babyStrong bool, w Weights) int {
	if !parentStrong && babyStrong {
		return w[FactorJupiterCompensation]
	}
	return 0
}

// maxPossibleRaw mirrors the historical denominator: the per-parent terms
// count twice and the house strength terms count once each.
func maxPossibleRaw(w Weights) int {
	return w[FactorNakshatra] +
		w[FactorRashi] +
		w[FactorPada] +
		w[FactorTithi] +
		w[FactorYoga] +
		w[FactorKarana] +
		w[FactorLagna] +
		w[FactorEighthHouse] +
		w[FactorJupiter] +
		w[FactorDasha] +
		w[FactorParentsDasha] +
		w[FactorLagnaFriendship] +
		w[FactorArrivalIndicator]*2 +
		w[FactorJupiterCompensation]*2 +
		w[FactorDashaClash]*2 +
		w[FactorNinthHouseStrength] +
		w[FactorFourthHouseStrength] +
		w[FactorBabyStartDasha]
}
