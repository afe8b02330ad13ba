package targets

import "math"

// band is one breakpoint of an ordered threshold table: value applies
// while the lookup key is below (or at, see lookupAtMost) the limit.
// Tables end with an Inf limit so every key resolves.
type band struct {
	limit float64
	value float64
}

// lookupBelow returns the value of the first band with key < limit.
func lookupBelow(bands []band, key float64) float64 {
	for _, b := range bands {
		if key < b.limit {
			return b.value
		}
	}
	return bands[len(bands)-1].value
}

// lookupAtMost returns the value of the first band with key <= limit.
func lookupAtMost(bands []band, key float64) float64 {
	for _, b := range bands {
		if key <= b.limit {
			return b.value
		}
	}
	return bands[len(bands)-1].value
}

// Maximum safe deficit percentage by body fat. Leaner bodies get tighter
// caps: there is less fat mass to draw on.
var lossDeficitCaps = map[Sex][]band{
	SexMale: {
		{limit: 10, value: 20},
		{limit: 12, value: 22},
		{limit: 15, value: 25},
		{limit: math.Inf(1), value: 30},
	},
	SexFemale: {
		{limit: 18, value: 20},
		{limit: 21, value: 22},
		{limit: 25, value: 25},
		{limit: math.Inf(1), value: 30},
	},
}

// Maximum surplus percentage by body fat. The shape mirrors the deficit
// table but widens for leaner bodies: low body fat tolerates a larger
// surplus before disproportionate fat gain.
var gainSurplusCaps = map[Sex][]band{
	SexMale: {
		{limit: 10, value: 35},
		{limit: 12, value: 32},
		{limit: 15, value: 30},
		{limit: math.Inf(1), value: 25},
	},
	SexFemale: {
		{limit: 18, value: 35},
		{limit: 21, value: 32},
		{limit: 25, value: 30},
		{limit: math.Inf(1), value: 25},
	},
}

// Minimum adjustment percentage a pace commits to, both directions.
var paceMinimums = map[Pace]float64{
	PaceConservative: 10,
	PaceModerate:     15,
	PaceAggressive:   20,
}

// Protein targets in g per kg of lean mass, keyed by goal direction and
// sex, banded by body fat (leaner bodies get more protein). Gain bands sit
// higher than loss bands: synthesis needs more substrate than preservation.
var proteinPerKgLean = map[Sex]struct{ gain, loss []band }{
	SexMale: {
		gain: []band{
			{limit: 12, value: 2.6},
			{limit: 20, value: 2.4},
			{limit: math.Inf(1), value: 2.2},
		},
		loss: []band{
			{limit: 12, value: 2.2},
			{limit: 20, value: 2.0},
			{limit: math.Inf(1), value: 1.8},
		},
	},
	SexFemale: {
		gain: []band{
			{limit: 20, value: 2.4},
			{limit: 28, value: 2.2},
			{limit: math.Inf(1), value: 2.0},
		},
		loss: []band{
			{limit: 20, value: 2.0},
			{limit: 28, value: 1.8},
			{limit: math.Inf(1), value: 1.6},
		},
	},
}

// capBand reads a body-fat-banded cap, using the table's most permissive
// (highest body fat) band when body fat is unknown.
func capBand(table map[Sex][]band, sex Sex, bodyFatPct *float64) float64 {
	bands := table[sex]
	if bodyFatPct == nil {
		return bands[len(bands)-1].value
	}
	return lookupBelow(bands, *bodyFatPct)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
