package city_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/nomadmatch/internal/city"
)

func TestNewScored(t *testing.T) {
	type testCase struct {
		name        string
		score       float64
		wantScore   float64
		wantPercent int
	}

	tests := []testCase{
		{name: "InRange", score: 0.87, wantScore: 0.87, wantPercent: 87},
		{name: "Rounds", score: 0.876, wantScore: 0.876, wantPercent: 88},
		{name: "ClampedAbove", score: 1.07, wantScore: 1, wantPercent: 100},
		{name: "ClampedBelow", score: -0.2, wantScore: 0, wantPercent: 0},
		{name: "NaN", score: math.NaN(), wantScore: 0, wantPercent: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := city.NewScored(city.City{Name: "Lisbon"}, tt.score)

			assert.InDelta(t, tt.wantScore, got.Score, 1e-9)
			assert.Equal(t, tt.wantPercent, got.Percent)
			assert.Equal(t, "Lisbon", got.City.Name)
		})
	}
}

func TestFromPercent(t *testing.T) {
	assert.Equal(t, 92, city.FromPercent(city.City{}, 92).Percent)
	assert.InDelta(t, 0.92, city.FromPercent(city.City{}, 92).Score, 1e-9)
	assert.Equal(t, 100, city.FromPercent(city.City{}, 140).Percent)
	assert.Equal(t, 0, city.FromPercent(city.City{}, -3).Percent)
}

func TestCity_VibeText(t *testing.T) {
	c := city.City{VibeTags: []string{"Sunny", "Creative", "Beach-Adjacent"}}

	assert.Equal(t, "Sunny, Creative, Beach-Adjacent", c.VibeText())
	assert.Empty(t, city.City{}.VibeText())
}
