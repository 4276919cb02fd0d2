package utils

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// SignedPercent formats a percentage with a leading "+" for non-negative values,
// e.g. "+5.96%" or "-12.4%". Negative values keep their sign even when they
// round to zero, so -0.04 at one place is "-0.0%".
func SignedPercent(value decimal.Decimal, places int32) string {
	formatted := value.StringFixed(places)
	if !value.IsNegative() {
		formatted = "+" + formatted
	} else if !strings.HasPrefix(formatted, "-") {
		formatted = "-" + formatted
	}
	return formatted + "%"
}

// Money formats an amount as dollars with two decimals, e.g. "$12450.75" or "$-20.00"
func Money(value decimal.Decimal) string {
	return "$" + value.StringFixed(2)
}

// Count formats an integer with thousands separators
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// Date formats a calendar date for display, e.g. "Jun 15, 2023"
func Date(t time.Time) string {
	return t.In(GetLocation()).Format("Jan 2, 2006")
}

// Since renders a relative time such as "2 years ago"
func Since(t time.Time, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
