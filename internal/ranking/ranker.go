// Package ranking scores the fallback catalog against a preference record without any network access.
package ranking

import (
	"cmp"
	"slices"

	"github.com/MrJamesThe3rd/nomadmatch/internal/city"
	"github.com/MrJamesThe3rd/nomadmatch/internal/preference"
)

// TopN is the number of cities returned by a ranking pass.
const TopN = 3

// Ranker is a deterministic linear model: base score plus matching boosts, clamped to 1.
// The catalog and rules are read-only after construction, so Rank is safe for concurrent use.
type Ranker struct {
	catalog []city.Candidate
	rules   []Rule
}

func NewRanker(catalog []city.Candidate, rules []Rule) *Ranker {
	return &Ranker{
		catalog: slices.Clone(catalog),
		rules:   slices.Clone(rules),
	}
}

// Rank returns the best min(TopN, len(catalog)) cities, highest percentage first.
// Ties keep catalog order.
func (r *Ranker) Rank(rec preference.Record) []city.Scored {
	scored := make([]city.Scored, 0, len(r.catalog))

	for _, cand := range r.catalog {
		score := cand.BaseScore

		var boosts []string

		for _, rule := range r.rules {
			if rule.Applies(rec, cand.City) {
				score += rule.Increment
				boosts = append(boosts, rule.Name)
			}
		}

		s := city.NewScored(cand.City, score)
		s.Boosts = boosts
		scored = append(scored, s)
	}

	slices.SortStableFunc(scored, func(a, b city.Scored) int {
		return cmp.Compare(b.Percent, a.Percent)
	})

	return scored[:min(TopN, len(scored))]
}
