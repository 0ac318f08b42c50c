package services

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// formatQuoteNumber constructs the quote number string from its parts.
func formatQuoteNumber(t time.Time, suffix int) string {
	return fmt.Sprintf("QT-%s-%03d", t.Format("20060102"), suffix%1000)
}

// GenerateQuoteNumber creates a quote number for the given day.
// Format: QT-{yyyymmdd}-{nnn}, where nnn is a random 3-digit suffix.
// The number is an opaque identifier; it is not guaranteed unique.
func GenerateQuoteNumber(now time.Time) string {
	return formatQuoteNumber(now, rand.IntN(1000))
}
