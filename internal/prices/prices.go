// Package prices serves the commodity ticker: simulated quotes cached for a
// short window, with a static table to fall back on.
package prices

import (
	"fmt"
	"time"

	"samko/internal/model"
)

// Source tags reported alongside every Result.
const (
	SourceCache    = "cache"
	SourceAPI      = "api"
	SourceFallback = "fallback"
)

// DefaultWindow is how long a computed set of quotes is reused.
const DefaultWindow = 5 * time.Minute

// Result is what Cache.Get hands back. Err is advisory; Prices is always usable.
type Result struct {
	Prices      []model.OilPrice
	Source      string
	LastUpdated time.Time
	Err         string
}

var baseline = []model.OilPrice{
	{Name: "Brent Crude Oil", Code: "BRENT", Price: 78.45, Change: 0.85, ChangePercent: 1.09, Currency: "USD", Unit: "barrel"},
	{Name: "WTI Crude Oil", Code: "WTI", Price: 74.32, Change: 0.62, ChangePercent: 0.84, Currency: "USD", Unit: "barrel"},
	{Name: "Natural Gas", Code: "NG", Price: 2.85, Change: -0.05, ChangePercent: -1.72, Currency: "USD", Unit: "MMBtu"},
	{Name: "Heating Oil", Code: "HO", Price: 2.42, Change: 0.03, ChangePercent: 1.25, Currency: "USD", Unit: "gallon"},
	{Name: "Gasoline RBOB", Code: "RB", Price: 2.18, Change: 0.02, ChangePercent: 0.93, Currency: "USD", Unit: "gallon"},
}

// Baseline returns the static quote table stamped with at.
func Baseline(at time.Time) []model.OilPrice {
	out := make([]model.OilPrice, len(baseline))
	for i, p := range baseline {
		p.LastUpdated = at
		out[i] = p
	}
	return out
}

// FormatChange renders an absolute change with an explicit sign, e.g. "+0.85".
func FormatChange(change float64) string {
	if change >= 0 {
		return fmt.Sprintf("+%.2f", change)
	}
	return fmt.Sprintf("%.2f", change)
}

// FormatPercentChange renders a percent change with an explicit sign, e.g. "-1.72%".
func FormatPercentChange(percent float64) string {
	return FormatChange(percent) + "%"
}

// Trend is "up", "down" or "neutral".
func Trend(change float64) string {
	switch {
	case change > 0:
		return "up"
	case change < 0:
		return "down"
	default:
		return "neutral"
	}
}
