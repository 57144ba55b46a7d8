// Package catalog loads the fixed set of cities ranked locally when the remote matcher is unavailable.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomadmatch/internal/city"
	"github.com/MrJamesThe3rd/nomadmatch/internal/preference"
)

//go:embed fallback.csv
var fallbackCSV []byte

const (
	colCity      = "city"
	colCountry   = "country"
	colRegion    = "region"
	colBudget    = "budget"
	colInternet  = "internet"
	colVisa      = "visa"
	colSafety    = "safety"
	colVibeTags  = "vibe_tags"
	colBaseScore = "base_score"

	colVisaType     = "visa_type"
	colVisaDuration = "visa_duration"
	colVisaIncome   = "visa_income_req_eur"
	colVisaScore    = "visa_score"
	colSchengen     = "schengen"
)

// requiredCols identify the header row; every other column is optional.
var requiredCols = []string{colCity, colCountry, colBaseScore}

var premiumCols = []string{colVisaType, colVisaDuration, colVisaIncome, colVisaScore, colSchengen}

var loadDefault = sync.OnceValues(func() ([]city.Candidate, error) {
	return Parse(bytes.NewReader(fallbackCSV))
})

// Default returns a fresh copy of the embedded fallback catalog in its authored order.
func Default() ([]city.Candidate, error) {
	candidates, err := loadDefault()
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}

	out := make([]city.Candidate, len(candidates))
	for i, c := range candidates {
		c.City.VibeTags = slices.Clone(c.City.VibeTags)

		if c.City.Premium != nil {
			premium := *c.City.Premium
			c.City.Premium = &premium
		}

		out[i] = c
	}

	return out, nil
}

// LoadFile reads a catalog from disk. An empty path yields the embedded catalog.
func LoadFile(path string) ([]city.Candidate, error) {
	if path == "" {
		return Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	candidates, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	return candidates, nil
}

// Parse reads a semicolon separated catalog. Rows above the header are ignored,
// as are blank rows below it.
func Parse(r io.Reader) ([]city.Candidate, error) {
	utf8r, err := utf8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx, ok := findHeader(rows)
	if !ok {
		return nil, fmt.Errorf("no catalog header found: expected columns %s", strings.Join(requiredCols, ", "))
	}

	return parseRows(cols, rows[headerIdx+1:], headerIdx)
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

func findHeader(rows [][]string) (colIndex, int, bool) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			if name := strings.ToLower(strings.TrimSpace(cell)); name != "" {
				cols[name] = i
			}
		}

		if hasAll(cols, requiredCols) {
			return cols, rowIdx, true
		}
	}

	return nil, 0, false
}

func hasAll(cols colIndex, names []string) bool {
	for _, name := range names {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

func hasAny(cols colIndex, names []string) bool {
	for _, name := range names {
		if _, ok := cols[name]; ok {
			return true
		}
	}

	return false
}

// parseRows converts data rows into candidates.
// headerRowNum is the 0-based index of the header in the original file (for error messages).
func parseRows(cols colIndex, rows [][]string, headerRowNum int) ([]city.Candidate, error) {
	withPremium := hasAny(cols, premiumCols)

	candidates := make([]city.Candidate, 0, len(rows))

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		name := cellValue(row, cols, colCity)
		if name == "" {
			continue
		}

		base, err := strconv.ParseFloat(cellValue(row, cols, colBaseScore), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid base score: %w", rowNum, err)
		}

		if base < 0 || base > 1 {
			return nil, fmt.Errorf("row %d: base score %.2f outside [0,1]", rowNum, base)
		}

		c := city.City{
			Name:    name,
			Country: cellValue(row, cols, colCountry),
			Region:  cellValue(row, cols, colRegion),
			Metadata: city.Metadata{
				Budget:        preference.Budget(cellValue(row, cols, colBudget)),
				Internet:      cellValue(row, cols, colInternet),
				VisaAvailable: isYes(cellValue(row, cols, colVisa)),
				Safety:        cellValue(row, cols, colSafety),
			},
			VibeTags: SplitTags(cellValue(row, cols, colVibeTags)),
		}

		if withPremium {
			premium, err := parsePremium(row, cols)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", rowNum, err)
			}

			premium.VisaAvailable = c.Metadata.VisaAvailable
			c.Premium = premium
		}

		candidates = append(candidates, city.Candidate{City: c, BaseScore: base})
	}

	return candidates, nil
}

func parsePremium(row []string, cols colIndex) (*city.PremiumData, error) {
	income := decimal.Zero

	if s := cellValue(row, cols, colVisaIncome); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid visa income %q: %w", s, err)
		}

		income = d
	}

	return &city.PremiumData{
		VisaType:         cellValue(row, cols, colVisaType),
		VisaDuration:     cellValue(row, cols, colVisaDuration),
		MinMonthlyIncome: income,
		VisaScore:        cellValue(row, cols, colVisaScore),
		Schengen:         cellValue(row, cols, colSchengen),
	}, nil
}

// SplitTags splits an authored tag list such as "Beach, Cosmopolitan, Nightlife".
func SplitTags(s string) []string {
	var tags []string

	for tag := range strings.SplitSeq(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

func isYes(s string) bool {
	return strings.EqualFold(s, "yes")
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, cols colIndex, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
