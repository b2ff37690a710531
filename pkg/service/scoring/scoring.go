package scoring

import (
	"math"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
)

const (
	MinWeight  = 0.0
	MaxWeight  = 3.0
	WeightStep = 0.1 // slider/flag granularity at the surfaces

	// DefaultLimit bounds the ranking size.
	DefaultLimit = 10
)

// Weights tune how much each trait column contributes to the composite
// score. All default to 1.0.
type Weights struct {
	Achievement float64 `json:"achievement"`
	Power       float64 `json:"power"`
	Affiliation float64 `json:"affiliation"`
	Flow        float64 `json:"flow"`
}

func DefaultWeights() Weights {
	return Weights{Achievement: 1.0, Power: 1.0, Affiliation: 1.0, Flow: 1.0}
}

func (w Weights) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"achievement", w.Achievement},
		{"power", w.Power},
		{"affiliation", w.Affiliation},
		{"flow", w.Flow},
	} {
		if math.IsNaN(f.value) || f.value < MinWeight || f.value > MaxWeight {
			return goerr.New("weight out of range",
				goerr.V("weight", f.name),
				goerr.V("value", f.value),
				goerr.V("min", MinWeight),
				goerr.V("max", MaxWeight),
			)
		}
	}
	return nil
}

// Entry is one ranked activity with its normalized column values and the
// composite score.
type Entry struct {
	Activity        *journal.Activity `json:"activity"`
	NormAchievement float64           `json:"norm_achievement"`
	NormPower       float64           `json:"norm_power"`
	NormAffiliation float64           `json:"norm_affiliation"`
	NormFlow        float64           `json:"norm_flow"`
	Score           float64           `json:"score"`
}

// Ranking holds the top-scored activities in ascending score order (the
// computation contract). Display layers reverse via Descending.
type Ranking struct {
	Entries []Entry `json:"entries"`
	Weights Weights `json:"weights"`
}

// Descending returns a reversed copy for highest-first display.
func (x *Ranking) Descending() []Entry {
	out := make([]Entry, len(x.Entries))
	for i, e := range x.Entries {
		out[len(x.Entries)-1-i] = e
	}
	return out
}

// Rank normalizes each trait column independently by min-max, composes
// the weighted score per activity, sorts ascending (stable, so equal
// scores keep collection order) and keeps the last limit entries — the
// highest scores, still in ascending order. limit <= 0 means
// DefaultLimit.
func Rank(activities []*journal.Activity, weights Weights, limit int) *Ranking {
	if limit <= 0 {
		limit = DefaultLimit
	}

	normAch := normalize(column(activities, func(a *journal.Activity) float64 { return a.Achievement }))
	normPow := normalize(column(activities, func(a *journal.Activity) float64 { return a.Power }))
	normAff := normalize(column(activities, func(a *journal.Activity) float64 { return a.Affiliation }))
	normFlow := normalize(column(activities, func(a *journal.Activity) float64 { return a.Flow }))

	entries := make([]Entry, 0, len(activities))
	for i, a := range activities {
		e := Entry{
			Activity:        a,
			NormAchievement: normAch[i],
			NormPower:       normPow[i],
			NormAffiliation: normAff[i],
			NormFlow:        normFlow[i],
		}
		e.Score = e.NormAchievement*weights.Achievement +
			e.NormPower*weights.Power +
			e.NormAffiliation*weights.Affiliation +
			e.NormFlow*weights.Flow
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score < entries[j].Score
	})

	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	return &Ranking{Entries: entries, Weights: weights}
}

// normalize rescales a column to [0, 1]. A flat column (including a
// single record) has no spread, so every cell becomes the neutral 0.5.
func normalize(vals []float64) []float64 {
	if len(vals) == 0 {
		return nil
	}

	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	normed := make([]float64, len(vals))
	if max == min {
		for i := range normed {
			normed[i] = 0.5
		}
		return normed
	}
	for i, v := range vals {
		normed[i] = (v - min) / (max - min)
	}
	return normed
}

func column(activities []*journal.Activity, pick func(*journal.Activity) float64) []float64 {
	vals := make([]float64, len(activities))
	for i, a := range activities {
		vals[i] = pick(a)
	}
	return vals
}
