package schema

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ratingSteps = 5
	// DefaultRatingSummary is used when a product has no stored summary,
	// giving a 1.0 rating.
	DefaultRatingSummary = 20
	validityDays         = 365
)

// RoundPrice rounds a price to two decimals, half away from zero.
func RoundPrice(p float64) float64 {
	return roundPlaces(p, 2)
}

// RoundRating rounds an averaged rating to one decimal.
func RoundRating(v float64) float64 {
	return roundPlaces(v, 1)
}

func roundPlaces(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// Stars converts a 0-100 vote percentage into filled stars, floor(p/100*5),
// bounded to [0,5].
func Stars(percent float64) int {
	if math.IsNaN(percent) {
		return 0
	}
	stars := int(math.Floor(percent * ratingSteps / 100))
	switch {
	case stars < 0:
		return 0
	case stars > ratingSteps:
		return ratingSteps
	}
	return stars
}

// RatingValue converts a 0-100 rating summary to the 1-5 scale. A zero
// summary is treated as missing.
func RatingValue(summary int) float64 {
	if summary == 0 {
		summary = DefaultRatingSummary
	}
	v := float64(summary) / 20
	return math.Max(0, math.Min(ratingSteps, v))
}

// PriceRange returns the lowest and highest of prices. ok is false for an
// empty slice.
func PriceRange(prices []float64) (low, high float64, ok bool) {
	if len(prices) == 0 {
		return 0, 0, false
	}
	low, high = prices[0], prices[0]
	for _, p := range prices[1:] {
		low = math.Min(low, p)
		high = math.Max(high, p)
	}
	return low, high, true
}

// PriceValidUntil returns now + 365 days as YYYY-MM-DD.
func PriceValidUntil(now time.Time) string {
	return now.AddDate(0, 0, validityDays).Format(time.DateOnly)
}

// Availability maps a stock flag to the schema.org availability URI.
func Availability(inStock bool) string {
	if inStock {
		return InStock
	}
	return OutOfStock
}

// SplitList splits a comma-separated value, trimming entries and dropping
// empty ones.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Marshal serializes a JSON-LD document.
func Marshal(doc any) (string, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
