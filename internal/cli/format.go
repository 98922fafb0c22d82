// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats whole dollars with a dollar sign and separators.
// e.g., 12800 -> "$12,800"
func FormatMoney(dollars int64) string {
	if dollars < 0 {
		return "-" + FormatMoney(-dollars)
	}
	return "$" + FormatNumber(dollars)
}

// FormatMoneyf formats a fractional dollar amount rounded to whole dollars.
func FormatMoneyf(dollars float64) string {
	return FormatMoney(int64(math.Round(dollars)))
}

// FormatMoneyShort formats dollars with a k/M suffix for chart axis labels.
// e.g., 12800 -> "$12.8k", 1500000 -> "$1.5M"
func FormatMoneyShort(dollars int64) string {
	abs := dollars
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1_000_000:
		if dollars%1_000_000 == 0 {
			return fmt.Sprintf("$%dM", dollars/1_000_000)
		}
		return fmt.Sprintf("$%.1fM", float64(dollars)/1_000_000)
	case abs >= 1_000:
		if dollars%1_000 == 0 {
			return fmt.Sprintf("$%dk", dollars/1_000)
		}
		return fmt.Sprintf("$%.1fk", float64(dollars)/1_000)
	default:
		return "$" + strconv.FormatInt(dollars, 10)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatMonths formats an age in months as years and months.
// e.g., 0 -> "0 months", 13 -> "1 year 1 month", 48 -> "4 years"
func FormatMonths(n int) string {
	years := n / 12
	months := n % 12

	var yearPart string
	switch years {
	case 0:
	case 1:
		yearPart = "1 year"
	default:
		yearPart = fmt.Sprintf("%d years", years)
	}

	var monthPart string
	switch {
	case months == 1:
		monthPart = "1 month"
	case months > 1 || years == 0:
		monthPart = fmt.Sprintf("%d months", months)
	}

	if yearPart == "" {
		return monthPart
	}
	if monthPart == "" {
		return yearPart
	}
	return yearPart + " " + monthPart
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
