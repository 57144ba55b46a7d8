package city

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomadmatch/internal/preference"
)

// Metadata holds the categorical descriptors used for display and boost scoring.
type Metadata struct {
	Budget        preference.Budget
	Internet      string
	VisaAvailable bool
	Safety        string
}

// PremiumData is visa and fiscal detail only shown to premium-tier users.
type PremiumData struct {
	VisaAvailable    bool
	VisaType         string
	VisaDuration     string
	MinMonthlyIncome decimal.Decimal // EUR per month, zero means no requirement
	VisaScore        string
	Schengen         string
}

// City is a candidate destination. Cities are reference data and are never mutated.
type City struct {
	Name     string
	Country  string
	Region   string
	Metadata Metadata
	VibeTags []string
	Premium  *PremiumData
}

// VibeText joins the vibe tags the way they are authored, e.g. "Beach, Cosmopolitan, Nightlife".
func (c City) VibeText() string {
	return strings.Join(c.VibeTags, ", ")
}

// Candidate is a fallback catalog entry with its authored quality prior.
type Candidate struct {
	City      City
	BaseScore float64
}

// Scored is a city with the score of one ranking pass.
type Scored struct {
	City    City
	Score   float64
	Percent int
	Boosts  []string // names of the fallback boosts that fired
}

// NewScored clamps score to [0,1] and derives the rounded percentage from it.
func NewScored(c City, score float64) Scored {
	score = Clamp01(score)

	return Scored{
		City:    c,
		Score:   score,
		Percent: int(math.Round(score * 100)),
	}
}

// FromPercent builds a Scored from a precomputed percentage, clamped to [0,100].
func FromPercent(c City, pct int) Scored {
	pct = min(max(pct, 0), 100)

	return Scored{
		City:    c,
		Score:   float64(pct) / 100,
		Percent: pct,
	}
}

func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}

	return min(max(v, 0), 1)
}
