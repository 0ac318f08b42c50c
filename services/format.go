package services

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// DateLayout is the dd/mm/yyyy layout printed on quotes.
const DateLayout = "02/01/2006"

// FormatAUD formats an amount in Australian dollars with thousands
// separators and exactly 2 decimal places, e.g. $3,930.00.
func FormatAUD(amount float64) string {
	if amount < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -amount)
	}
	return "$" + humanize.FormatFloat("#,###.##", amount)
}

// FormatPercent renders a rate such as 0.1 as "10%".
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%g%%", math.Round(rate*10000)/100)
}

// FormatDate renders t in the quote date layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// UsageLabel describes how often a saved client was quoted.
func UsageLabel(useCount int) string {
	if useCount == 1 {
		return "Used once"
	}
	return fmt.Sprintf("Used %d times", useCount)
}

// LastUsedLabel renders lastUsed relative to now ("3 hours ago").
func LastUsedLabel(lastUsed, now time.Time) string {
	if lastUsed.IsZero() {
		return "never"
	}
	return humanize.RelTime(lastUsed, now, "ago", "from now")
}
