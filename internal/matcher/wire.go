package matcher

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomadmatch/internal/catalog"
	"github.com/MrJamesThe3rd/nomadmatch/internal/city"
	"github.com/MrJamesThe3rd/nomadmatch/internal/preference"
)

type queryRequest struct {
	Query       string         `json:"query"`
	NumResults  int            `json:"num_results"`
	Preferences preferencesDTO `json:"preferences"`
	Tier        string         `json:"tier"`
}

// preferencesDTO mirrors the form values the service was built against:
// yes/no flags travel as "Yes" or "".
type preferencesDTO struct {
	Budget    string   `json:"budget"`
	Climate   string   `json:"climate"`
	Internet  string   `json:"internet"`
	Visa      string   `json:"visa"`
	Vibes     []string `json:"vibes"`
	Nightlife string   `json:"nightlife"`
	Family    string   `json:"family"`
}

func toPreferencesDTO(rec preference.Record) preferencesDTO {
	vibes := make([]string, len(rec.Vibes))
	for i, v := range rec.Vibes {
		vibes[i] = string(v)
	}

	return preferencesDTO{
		Budget:    string(rec.Budget),
		Climate:   string(rec.Climate),
		Internet:  string(rec.Internet),
		Visa:      string(rec.Visa),
		Vibes:     vibes,
		Nightlife: yesFlag(rec.Nightlife),
		Family:    yesFlag(rec.Family),
	}
}

func yesFlag(b bool) string {
	if b {
		return "Yes"
	}

	return ""
}

type queryResponse struct {
	Results []*resultDTO `json:"results"`
}

type resultDTO struct {
	City        string      `json:"city"`
	Country     string      `json:"country"`
	Region      string      `json:"region"`
	Metadata    metadataDTO `json:"metadata"`
	Score       *float64    `json:"score"`
	ScorePct    *float64    `json:"score_pct"`
	PremiumData *premiumDTO `json:"premium_data"`
}

type metadataDTO struct {
	Budget   string `json:"budget"`
	Internet string `json:"internet"`
	Visa     string `json:"visa"`
	Safety   string `json:"safety"`
	VibeTags string `json:"vibe_tags"`
}

type premiumDTO struct {
	VisaAvailable string           `json:"visa_available"`
	VisaType      string           `json:"visa_type"`
	VisaDuration  string           `json:"visa_duration"`
	IncomeReqEUR  *decimal.Decimal `json:"visa_income_req_eur"`
	VisaScore     string           `json:"visa_score"`
	Schengen      string           `json:"schengen"`
}

// toScored keeps the service's score: score_pct wins when positive, then score, otherwise 0.
func (r *resultDTO) toScored() city.Scored {
	c := city.City{
		Name:    r.City,
		Country: r.Country,
		Region:  r.Region,
		Metadata: city.Metadata{
			Budget:        preference.Budget(r.Metadata.Budget),
			Internet:      r.Metadata.Internet,
			VisaAvailable: r.Metadata.Visa == "Yes",
			Safety:        r.Metadata.Safety,
		},
		VibeTags: catalog.SplitTags(r.Metadata.VibeTags),
	}

	if p := r.PremiumData; p != nil {
		income := decimal.Zero
		if p.IncomeReqEUR != nil {
			income = *p.IncomeReqEUR
		}

		c.Premium = &city.PremiumData{
			VisaAvailable:    p.VisaAvailable == "Yes",
			VisaType:         p.VisaType,
			VisaDuration:     p.VisaDuration,
			MinMonthlyIncome: income,
			VisaScore:        p.VisaScore,
			Schengen:         p.Schengen,
		}
	}

	switch {
	case r.ScorePct != nil && *r.ScorePct > 0:
		return city.FromPercent(c, int(math.Round(*r.ScorePct)))
	case r.Score != nil:
		return city.NewScored(c, *r.Score)
	}

	return city.NewScored(c, 0)
}
