package match

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomadmatch/internal/city"
	"github.com/MrJamesThe3rd/nomadmatch/internal/preference"
)

// NoMatchesMessage is shown in place of an empty result list.
const NoMatchesMessage = "No cities found. Try different preferences."

type CardMetadata struct {
	Budget        string `json:"budget"`
	Internet      string `json:"internet"`
	VisaAvailable bool   `json:"visa_available"`
	Safety        string `json:"safety"`
}

type PremiumCard struct {
	VisaAvailable    bool            `json:"visa_available"`
	VisaType         string          `json:"visa_type"`
	VisaDuration     string          `json:"visa_duration"`
	MinMonthlyIncome decimal.Decimal `json:"min_monthly_income_eur"`
	VisaScore        string          `json:"visa_score"`
	Schengen         string          `json:"schengen"`
}

// Card is one displayable city. Premium is only set for premium-tier sessions.
type Card struct {
	City         string       `json:"city"`
	Country      string       `json:"country"`
	Region       string       `json:"region"`
	Metadata     CardMetadata `json:"metadata"`
	VibeTags     []string     `json:"vibe_tags"`
	ScorePercent int          `json:"score_percent"`
	Boosts       []string     `json:"boosts,omitempty"`
	Premium      *PremiumCard `json:"premium,omitempty"`
}

// Present maps scored cities to cards in order. The result is never nil.
func Present(scored []city.Scored, tier preference.Tier) []Card {
	cards := make([]Card, 0, len(scored))

	for _, s := range scored {
		c := s.City

		card := Card{
			City:    c.Name,
			Country: c.Country,
			Region:  c.Region,
			Metadata: CardMetadata{
				Budget:        string(c.Metadata.Budget),
				Internet:      c.Metadata.Internet,
				VisaAvailable: c.Metadata.VisaAvailable,
				Safety:        c.Metadata.Safety,
			},
			VibeTags:     c.VibeTags,
			ScorePercent: s.Percent,
			Boosts:       s.Boosts,
		}

		if tier == preference.TierPremium && c.Premium != nil {
			p := c.Premium
			card.Premium = &PremiumCard{
				VisaAvailable:    p.VisaAvailable,
				VisaType:         p.VisaType,
				VisaDuration:     p.VisaDuration,
				MinMonthlyIncome: p.MinMonthlyIncome,
				VisaScore:        p.VisaScore,
				Schengen:         p.Schengen,
			}
		}

		cards = append(cards, card)
	}

	return cards
}
