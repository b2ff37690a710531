package digest

import (
	"sort"

	"github.com/reflect-lab/stella/pkg/domain/model/journal"
)

// Count is one label of a breakdown tally.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ByCategory tallies subjects per category, most frequent first. Ties
// keep first-appearance order.
func ByCategory(subjects journal.Subjects) []Count {
	labels := make([]string, 0, len(subjects))
	for _, s := range subjects {
		labels = append(labels, s.Category.String())
	}
	return tally(labels)
}

// ByKind tallies activities per kind, most frequent first. Ties keep
// first-appearance order.
func ByKind(activities journal.Activities) []Count {
	labels := make([]string, 0, len(activities))
	for _, a := range activities {
		labels = append(labels, a.Kind.String())
	}
	return tally(labels)
}

func tally(labels []string) []Count {
	counts := map[string]int{}
	firstSeen := map[string]int{}
	for _, label := range labels {
		if label == "" {
			continue
		}
		if _, ok := counts[label]; !ok {
			firstSeen[label] = len(firstSeen)
		}
		counts[label]++
	}

	out := make([]Count, 0, len(counts))
	for label, n := range counts {
		out = append(out, Count{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].Label] < firstSeen[out[j].Label]
	})
	return out
}
