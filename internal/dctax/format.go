package dctax

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount as whole-dollar USD for display.
func FormatCurrency(amount float64) string {
	return usd.Sprintf("$%d", int64(math.Round(amount)))
}

// FormatRate renders a fractional rate as a percentage with two decimals.
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}
