package ranking

import (
	"strings"

	"github.com/MrJamesThe3rd/nomadmatch/internal/city"
	"github.com/MrJamesThe3rd/nomadmatch/internal/preference"
)

// BoostIncrement is the score added by each default rule that matches.
const BoostIncrement = 0.05

// Rule is one additive boost. Rules are independent and cumulative.
type Rule struct {
	Name      string
	Increment float64
	Applies   func(rec preference.Record, c city.City) bool
}

// DefaultRules returns the visa, budget and vibe boosts in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "visa", Increment: BoostIncrement, Applies: visaMatch},
		{Name: "budget", Increment: BoostIncrement, Applies: budgetMatch},
		{Name: "vibe", Increment: BoostIncrement, Applies: vibeMatch},
	}
}

func visaMatch(rec preference.Record, c city.City) bool {
	return rec.VisaRequired() && c.Metadata.VisaAvailable
}

// budgetMatch is an exact categorical comparison.
func budgetMatch(rec preference.Record, c city.City) bool {
	return rec.Budget != preference.BudgetUnset && rec.Budget == c.Metadata.Budget
}

func vibeMatch(rec preference.Record, c city.City) bool {
	vibe, ok := rec.FirstVibe()
	if !ok {
		return false
	}

	return strings.Contains(strings.ToLower(c.VibeText()), strings.ToLower(string(vibe)))
}
