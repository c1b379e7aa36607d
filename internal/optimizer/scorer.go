package optimizer

import (
	"fmt"
	"sort"
)

// Weights are the caller's non-negative priorities for cost, delivery time
// and emissions. They may be on any scale; Normalize rescales them before
// scoring.
type Weights struct {
	Cost float64 `json:"cost"`
	Time float64 `json:"time"`
	CO2  float64 `json:"co2"`
}

// Validate rejects negative weights. Zero is fine; an all-zero triple
// falls back to equal thirds.
func (w Weights) Validate() error {
	if w.Cost < 0 || w.Time < 0 || w.CO2 < 0 {
		return fmt.Errorf("weights must be non-negative, got cost=%g time=%g co2=%g", w.Cost, w.Time, w.CO2)
	}
	return nil
}

// Normalize scales the weights to sum to 1. When all three are zero the
// result is equal thirds: a sane default instead of an undefined division.
func (w Weights) Normalize() Weights {
	total := w.Cost + w.Time + w.CO2
	if total <= 0 {
		return Weights{Cost: 1.0 / 3, Time: 1.0 / 3, CO2: 1.0 / 3}
	}
	return Weights{Cost: w.Cost / total, Time: w.Time / total, CO2: w.CO2 / total}
}

// Rank normalizes each predicted metric across the candidate set, combines
// them with the (normalized) weights, and sorts ascending by score; lower
// is strictly better. The sort is stable: ties keep the fleet's original
// ordering, so identical inputs always produce an identical ranking.
//
// A metric with zero variance normalizes to 0.0 for every candidate: with
// nothing to discriminate on, no vehicle is penalized.
func Rank(candidates []Candidate, weights Weights) []Candidate {
	w := weights.Normalize()

	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	costs := make([]float64, len(ranked))
	times := make([]float64, len(ranked))
	co2s := make([]float64, len(ranked))
	for i, c := range ranked {
		costs[i] = c.PredictedCost
		times[i] = c.PredictedTimeHours
		co2s[i] = c.PredictedCO2Kg
	}
	normCosts := minMaxNormalize(costs)
	normTimes := minMaxNormalize(times)
	normCO2s := minMaxNormalize(co2s)

	for i := range ranked {
		ranked[i].NormCost = normCosts[i]
		ranked[i].NormTime = normTimes[i]
		ranked[i].NormCO2 = normCO2s[i]
		ranked[i].Score = w.Cost*normCosts[i] + w.Time*normTimes[i] + w.CO2*normCO2s[i]
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})
	return ranked
}

// minMaxNormalize maps values onto [0, 1] via (v - min)/(max - min). When
// max == min every value maps to exactly 0.0, never NaN.
func minMaxNormalize(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		return out
	}
	span := max - min
	for i, v := range values {
		out[i] = (v - min) / span
	}
	return out
}
