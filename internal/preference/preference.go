package preference

// Budget is the cost-of-living band a user is looking for.
type Budget string

const (
	BudgetUnset          Budget = ""
	BudgetVeryAffordable Budget = "Very Affordable"
	BudgetAffordable     Budget = "Affordable"
	BudgetModerate       Budget = "Moderate"
	BudgetExpensive      Budget = "Expensive"
	BudgetVeryExpensive  Budget = "Very Expensive"
)

type Climate string

const (
	ClimateUnset Climate = ""
	ClimateWarm  Climate = "Warm"
	ClimateMild  Climate = "Mild"
	ClimateHot   Climate = "Hot"
	ClimateCool  Climate = "Cool"
)

// Internet is kept opaque: unknown values are valid and flow into the query as typed.
type Internet string

const (
	InternetUnset     Internet = ""
	InternetPoor      Internet = "Poor"
	InternetGood      Internet = "Good"
	InternetExcellent Internet = "Excellent"
)

type Visa string

const (
	VisaUnset Visa = ""
	VisaYes   Visa = "Yes"
	VisaNo    Visa = "No"
)

type Vibe string

const (
	VibeBeach      Vibe = "Beach"
	VibeTech       Vibe = "Tech"
	VibeNightlife  Vibe = "Nightlife"
	VibeHistoric   Vibe = "Historic"
	VibeNature     Vibe = "Nature"
	VibeAffordable Vibe = "Affordable"
	VibeCreative   Vibe = "Creative"
)

// Tier selects which city fields are exposed to the presenter. It never affects ranking.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// ParseTier maps anything other than "premium" to the free tier.
func ParseTier(s string) Tier {
	if Tier(s) == TierPremium {
		return TierPremium
	}

	return TierFree
}

// Input holds the raw form values exactly as the user picked or typed them.
type Input struct {
	Budget   string
	Climate  string
	Internet string
	Visa     string
	Vibe     string
}

// Record is the normalized snapshot of one match request's preferences.
type Record struct {
	Budget    Budget
	Climate   Climate
	Internet  Internet
	Visa      Visa
	Vibes     []Vibe
	Nightlife bool
	Family    bool // not collected by any form yet
}

func (r Record) VisaRequired() bool {
	return r.Visa == VisaYes
}

// FirstVibe returns the vibe used for boost scoring, if any.
func (r Record) FirstVibe() (Vibe, bool) {
	if len(r.Vibes) == 0 || r.Vibes[0] == "" {
		return "", false
	}

	return r.Vibes[0], true
}
