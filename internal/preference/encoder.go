package preference

import (
	"strings"
)

const (
	// Anchor opens every query sent to the semantic matcher.
	Anchor = "European city for digital nomads"

	internetSuffix = "internet fast reliable connection"
	visaPhrase     = "digital nomad visa available legal stay"
)

// Tables maps categorical values to the keyword bags used to widen semantic recall.
type Tables struct {
	Budget  map[Budget]string
	Climate map[Climate]string
	Vibe    map[Vibe]string
}

// DefaultTables returns the expansion phrases for every published category.
func DefaultTables() Tables {
	return Tables{
		Budget: map[Budget]string{
			BudgetVeryAffordable: "very affordable budget cheap low cost",
			BudgetAffordable:     "affordable budget economical",
			BudgetModerate:       "moderate budget mid-range",
			BudgetExpensive:      "expensive premium high quality",
			BudgetVeryExpensive:  "very expensive luxury top tier",
		},
		Climate: map[Climate]string{
			ClimateWarm: "warm sunny Mediterranean climate beach weather",
			ClimateMild: "mild temperate comfortable climate",
			ClimateHot:  "hot sunny summer tropical warm",
			ClimateCool: "cool fresh temperate",
		},
		Vibe: map[Vibe]string{
			VibeBeach:      "beach coastal seaside surf ocean",
			VibeTech:       "tech startup innovation hub coworking",
			VibeNightlife:  "nightlife party bars clubs social scene",
			VibeHistoric:   "historic cultural architecture museums heritage",
			VibeNature:     "nature outdoor hiking mountains green",
			VibeAffordable: "affordable cheap budget-friendly economical",
			VibeCreative:   "creative artistic design culture bohemian",
		},
	}
}

// Encoder turns form input into the query text and the record used for local scoring.
// It holds no mutable state and is safe for concurrent use.
type Encoder struct {
	tables Tables
}

func NewEncoder(tables Tables) *Encoder {
	return &Encoder{tables: tables}
}

// Encode builds the query text and the preference record for one match request.
// Values missing from the tables are passed through verbatim.
func (e *Encoder) Encode(in Input) (string, Record) {
	var (
		budget   = Budget(strings.TrimSpace(in.Budget))
		climate  = Climate(strings.TrimSpace(in.Climate))
		internet = Internet(strings.TrimSpace(in.Internet))
		visa     = Visa(strings.TrimSpace(in.Visa))
		vibe     = Vibe(strings.TrimSpace(in.Vibe))
	)

	parts := []string{Anchor}

	if budget != BudgetUnset {
		parts = append(parts, expand(e.tables.Budget, budget))
	}

	if climate != ClimateUnset {
		parts = append(parts, expand(e.tables.Climate, climate))
	}

	if internet != InternetUnset {
		parts = append(parts, strings.ToLower(string(internet))+" "+internetSuffix)
	}

	if visa == VisaYes {
		parts = append(parts, visaPhrase)
	}

	vibes := []Vibe{}
	if vibe != "" {
		parts = append(parts, expand(e.tables.Vibe, vibe))
		vibes = append(vibes, vibe)
	}

	return strings.Join(parts, " "), Record{
		Budget:    budget,
		Climate:   climate,
		Internet:  internet,
		Visa:      visa,
		Vibes:     vibes,
		Nightlife: vibe == VibeNightlife,
	}
}

func expand[K ~string](table map[K]string, value K) string {
	if phrase, ok := table[value]; ok && phrase != "" {
		return phrase
	}

	return string(value)
}
