package frame

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Rate formats numerator/denominator as a percentage with one decimal
// place. A zero denominator yields "0%"; it never divides by zero.
func Rate(numerator, denominator int) string {
	if denominator == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(numerator)/float64(denominator)*100)
}

// FormatDuration renders a duration in seconds as whole minutes below one
// hour ("42m") and hours-and-minutes from one hour up ("2h 5m").
//
// The upstream dashboards disagreed on the cutoff between the two styles
// (one switched above 60 minutes, the other at 3600 seconds); the single
// rule here is: hours appear once totalSeconds >= 3600.
func FormatDuration(totalSeconds float64) string {
	minutes := int(totalSeconds) / 60
	if int(totalSeconds) < 3600 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// numeric coerces a cell to float64. Collections synced from JSON carry
// float64, but seeds and upstream exports also produce ints, json.Number,
// and numeric strings.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
