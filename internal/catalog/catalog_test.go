package catalog_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/MrJamesThe3rd/nomadmatch/internal/catalog"
	"github.com/MrJamesThe3rd/nomadmatch/internal/city"
	"github.com/MrJamesThe3rd/nomadmatch/internal/preference"
)

func TestDefault(t *testing.T) {
	candidates, err := catalog.Default()
	require.NoError(t, err)
	require.Len(t, candidates, 8)

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.City.Name
	}

	assert.Equal(t, []string{
		"Lisbon", "Barcelona", "Valencia", "Prague", "Budapest", "Berlin", "Tallinn", "Sofia",
	}, names)

	lisbon := candidates[0]
	assert.InDelta(t, 0.92, lisbon.BaseScore, 1e-9)
	assert.Equal(t, "Portugal", lisbon.City.Country)
	assert.Equal(t, preference.BudgetModerate, lisbon.City.Metadata.Budget)
	assert.True(t, lisbon.City.Metadata.VisaAvailable)
	assert.Equal(t, []string{"Sunny", "Creative", "Beach-Adjacent"}, lisbon.City.VibeTags)

	require.NotNil(t, lisbon.City.Premium)
	assert.True(t, lisbon.City.Premium.VisaAvailable)
	assert.Equal(t, "D7/D8 Digital Nomad Visa", lisbon.City.Premium.VisaType)
	assert.True(t, decimal.NewFromInt(3040).Equal(lisbon.City.Premium.MinMonthlyIncome))

	berlin := candidates[5]
	assert.False(t, berlin.City.Metadata.VisaAvailable)
	assert.False(t, berlin.City.Premium.VisaAvailable)
}

func TestDefault_ReturnsCopy(t *testing.T) {
	first, err := catalog.Default()
	require.NoError(t, err)
	require.NotEmpty(t, first)

	first[0].BaseScore = 0
	first[0].City.Name = "Changed"
	first[0].City.VibeTags[0] = "Changed"
	first[0].City.Premium.VisaType = "Changed"

	second, err := catalog.Default()
	require.NoError(t, err)

	assert.InDelta(t, 0.92, second[0].BaseScore, 1e-9)
	assert.Equal(t, "Lisbon", second[0].City.Name)
	assert.Equal(t, "Sunny", second[0].City.VibeTags[0])
	assert.Equal(t, "D7/D8 Digital Nomad Visa", second[0].City.Premium.VisaType)
}

func TestParse(t *testing.T) {
	type testCase struct {
		name    string
		content string
		wantLen int
		verify  func(t *testing.T, got []city.Candidate)
		wantErr bool
	}

	tests := []testCase{
		{
			name:    "Empty",
			content: "",
			wantErr: true,
		},
		{
			name:    "HeaderOnly",
			content: "city;country;base_score\n",
			wantLen: 0,
		},
		{
			name: "PreambleAndBlankRows",
			content: "exported from the planning sheet\n\n" +
				"Base_Score;City;Country\n" +
				"0.5;Porto;Portugal\n" +
				"\n" +
				";;\n" +
				"0.4;Split;Croatia\n",
			wantLen: 2,
			verify: func(t *testing.T, got []city.Candidate) {
				assert.Equal(t, "Porto", got[0].City.Name)
				assert.InDelta(t, 0.5, got[0].BaseScore, 1e-9)
				assert.Nil(t, got[0].City.Premium)
				assert.Equal(t, "Split", got[1].City.Name)
			},
		},
		{
			name:    "MissingRequiredColumn",
			content: "city;country\nPorto;Portugal\n",
			wantErr: true,
		},
		{
			name:    "InvalidBaseScore",
			content: "city;country;base_score\nPorto;Portugal;high\n",
			wantErr: true,
		},
		{
			name:    "BaseScoreOutOfRange",
			content: "city;country;base_score\nPorto;Portugal;1.4\n",
			wantErr: true,
		},
		{
			name:    "InvalidIncome",
			content: "city;country;base_score;visa_income_req_eur\nPorto;Portugal;0.5;lots\n",
			wantErr: true,
		},
		{
			name:    "EmptyIncomeMeansNoRequirement",
			content: "city;country;base_score;visa;visa_income_req_eur\nPorto;Portugal;0.5;yes;\n",
			wantLen: 1,
			verify: func(t *testing.T, got []city.Candidate) {
				require.NotNil(t, got[0].City.Premium)
				assert.True(t, got[0].City.Premium.MinMonthlyIncome.IsZero())
				assert.True(t, got[0].City.Metadata.VisaAvailable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.Parse(strings.NewReader(tt.content))

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)

			if tt.verify != nil {
				tt.verify(t, got)
			}
		})
	}
}

func TestParse_Windows1252(t *testing.T) {
	// "Málaga" with á encoded as 0xE1.
	content := []byte("city;country;base_score\nM")
	content = append(content, 0xE1)
	content = append(content, []byte("laga;Spain;0.7\n")...)

	got, err := catalog.Parse(bytes.NewReader(content))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Málaga", got[0].City.Name)
}

func TestParse_UTF8BOM(t *testing.T) {
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("city;country;base_score\nKraków;Poland;0.7\n")...)

	got, err := catalog.Parse(bytes.NewReader(content))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kraków", got[0].City.Name)
}

func TestParse_UTF16BOM(t *testing.T) {
	content, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().
		Bytes([]byte("city;country;base_score\nKraków;Poland;0.7\n"))
	require.NoError(t, err)

	got, err := catalog.Parse(bytes.NewReader(content))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kraków", got[0].City.Name)
}

func TestParse_RuneSplitAtSniffBoundary(t *testing.T) {
	header := "city;country;base_score\n"

	// Place the first byte of "ó" on the last byte of the sniffed sample.
	name := strings.Repeat("a", 4096-1-len(header)) + "ó"
	content := header + name + ";Poland;0.7\nKraków;Poland;0.6\n"

	got, err := catalog.Parse(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, name, got[0].City.Name)
	assert.Equal(t, "Kraków", got[1].City.Name)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cities.csv")
	require.NoError(t, os.WriteFile(path, []byte("city;country;base_score\nGdansk;Poland;0.61\n"), 0o600))

	got, err := catalog.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Gdansk", got[0].City.Name)

	_, err = catalog.LoadFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)

	embedded, err := catalog.LoadFile("")
	require.NoError(t, err)
	assert.Len(t, embedded, 8)
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"Beach", "Family-Friendly"}, catalog.SplitTags(" Beach ,, Family-Friendly "))
	assert.Nil(t, catalog.SplitTags(""))
}
