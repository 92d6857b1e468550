package muhurat

import (
	"context"

	"github.com/vedicworks/muhurat-api/internal/domain/astro"
)

// Trait is one of the nine canonical qualities parents can prioritize.
type Trait string

const (
	TraitHealth       Trait = "health"
	TraitIntelligence Trait = "intelligence"
	TraitWealth       Trait = "wealth"
	TraitLeadership   Trait = "leadership"
	TraitSpiritual    Trait = "spiritual"
	TraitCreativity   Trait = "creativity"
	TraitStability    Trait = "stability"
	TraitCompassion   Trait = "compassion"
	TraitCourage      Trait = "courage"
)

// TraitOptions lists the selectable traits in display order.
var TraitOptions = []Trait{
	TraitHealth, TraitIntelligence, TraitWealth, TraitLeadership,
	TraitSpiritual, TraitCreativity, TraitStability, TraitCompassion,
	TraitCourage,
}

var validTraits = func() map[Trait]bool {
	set := make(map[Trait]bool, len(TraitOptions))
	for _, t := range TraitOptions {
		set[t] = true
	}
	return set
}()

// priorityMultipliers scale trait weight overrides by list position:
// primary x3, secondary x2, tertiary x1.
var priorityMultipliers = [3]int{3, 2, 1}

// traitWeightOverrides maps each trait to the factor deltas it boosts.
var traitWeightOverrides = map[Trait]map[Factor]int{
	TraitHealth:       {FactorLagna: 2, FactorTithi: 1},
	TraitIntelligence: {FactorYoga: 2, FactorNakshatra: 1},
	TraitWealth:       {FactorRashi: 2, FactorKarana: 1},
	TraitLeadership:   {FactorLagna: 2, FactorNakshatra: 1},
	TraitSpiritual:    {FactorTithi: 2, FactorYoga: 1},
	TraitCreativity:   {FactorNakshatra: 1, FactorRashi: 1},
	TraitStability:    {FactorRashi: 1, FactorLagna: 1},
	TraitCompassion:   {FactorNakshatra: 1, FactorTithi: 1},
	TraitCourage:      {FactorLagna: 2, FactorKarana: 1},
}

// TraitMapper is the free-text-to-traits oracle. Implementations must
// degrade to an empty list instead of returning an error when the backing
// model is unconfigured, rate limited, or responds with garbage.
type TraitMapper interface {
	MapTraits(ctx context.Context, text string) []Trait
}

// NopTraitMapper always returns no traits; used when no LLM is configured.
type NopTraitMapper struct{}

func (NopTraitMapper) MapTraits(context.Context, string) []Trait { return nil }

// NormalizeTraits keeps only valid traits, preserving first-occurrence order.
func NormalizeTraits(traits []string) []Trait {
	seen := make(map[Trait]bool, len(traits))
	out := make([]Trait, 0, len(traits))
	for _, raw := range traits {
		t := Trait(raw)
		if !validTraits[t] || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// ResolveTraits produces the ordered trait list for a request. An explicit
// priority list wins outright; otherwise the text oracle's traits are
// concatenated with the selected tags and deduplicated in order.
func ResolveTraits(ctx context.Context, mapper TraitMapper, text string, selected, priority []string) []Trait {
	if prio := NormalizeTraits(priority); len(prio) > 0 {
		return prio
	}

	mapped := mapper.MapTraits(ctx, text)
	combined := make([]string, 0, len(mapped)+len(selected))
	for _, t := range mapped {
		combined = append(combined, string(t))
	}
	combined = append(combined, selected...)
	return NormalizeTraits(combined)
}

// PersonalizeWeights applies position-multiplied trait overrides on top of a
// base table. Overrides are additive, so traits touching the same factor
// compound.
func PersonalizeWeights(base Weights, traits []Trait) Weights {
	out := make(Weights, len(base))
	for k, v := range base {
		out[k] = v
	}
	for i, trait := range traits {
		if i >= len(priorityMultipliers) {
			break
		}
		for factor, delta := range traitWeightOverrides[trait] {
			out[factor] += delta * priorityMultipliers[i]
		}
	}
	return out
}

// traitFilter is one allow-list check applied during the strict phase.
type traitFilter func(fs astro.FactorSet) bool

// traitFilters holds the per-trait strict-phase slot predicates. Only the
// primary trait's filters apply.
var traitFilters = map[Trait][]traitFilter{
	TraitHealth: {
		func(fs astro.FactorSet) bool { return beneficLagnas[fs.Lagna] },
		func(fs astro.FactorSet) bool { return beneficTithis[fs.Tithi] },
	},
	TraitIntelligence: {
		func(fs astro.FactorSet) bool { return beneficYogas[fs.Yoga] },
		func(fs astro.FactorSet) bool { return shubhaNakshatras[fs.Nakshatra] },
	},
	TraitWealth: {
		func(fs astro.FactorSet) bool { return beneficRashis[fs.Rashi] },
		func(fs astro.FactorSet) bool { return beneficKaranas[fs.Karana] },
	},
	TraitLeadership: {
		func(fs astro.FactorSet) bool { return beneficLagnas[fs.Lagna] },
		func(fs astro.FactorSet) bool { return shubhaNakshatras[fs.Nakshatra] },
	},
	TraitSpiritual: {
		func(fs astro.FactorSet) bool { return beneficTithis[fs.Tithi] },
		func(fs astro.FactorSet) bool { return beneficYogas[fs.Yoga] },
	},
	TraitCreativity: {
		func(fs astro.FactorSet) bool { return shubhaNakshatras[fs.Nakshatra] },
	},
	TraitStability: {
		func(fs astro.FactorSet) bool { return beneficRashis[fs.Rashi] },
		func(fs astro.FactorSet) bool { return beneficLagnas[fs.Lagna] },
	},
	TraitCompassion: {
		func(fs astro.FactorSet) bool { return beneficTithis[fs.Tithi] },
		func(fs astro.FactorSet) bool { return shubhaNakshatras[fs.Nakshatra] },
	},
	TraitCourage: {
		func(fs astro.FactorSet) bool { return beneficLagnas[fs.Lagna] },
		func(fs astro.FactorSet) bool { return beneficKaranas[fs.Karana] },
	},
}

// passesTraitFilters applies the primary trait's allow-list checks.
func passesTraitFilters(fs astro.FactorSet, traits []Trait) bool {
	if len(traits) == 0 {
		return true
	}
	for _, check := range traitFilters[traits[0]] {
		if !check(fs) {
			return false
		}
	}
	return true
}
