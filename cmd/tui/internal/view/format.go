package view

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatIncome renders a monthly income requirement, e.g. "€3,040/mo".
func FormatIncome(eur decimal.Decimal) string {
	if !eur.IsPositive() {
		return "No requirement"
	}

	return printer.Sprintf("€%d/mo", eur.Round(0).IntPart())
}

// FormatPercent renders a match percentage, e.g. "92% match".
func FormatPercent(pct int) string {
	return fmt.Sprintf("%d%% match", pct)
}

// orDash replaces empty values so card columns stay aligned.
func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}

	return "No"
}
