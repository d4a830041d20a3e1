// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney formats a dollar amount with comma separators and two
// decimals. e.g. 1234.5 -> "$1,234.50", -20 -> "-$20.00".
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(-amount)
	}
	whole := int64(amount)
	cents := int64(amount*100+0.5) - whole*100
	return fmt.Sprintf("$%s.%02d", FormatNumber(whole), cents)
}

// FormatSigned renders an amount with an explicit sign, inflows positive.
func FormatSigned(amount float64, inflow bool) string {
	if inflow {
		return "+" + FormatMoney(amount)
	}
	return "-" + FormatMoney(amount)
}

// FormatNumber adds comma separators to an integer.
// e.g. 1234567 -> "1,234,567"
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

// FormatPercent formats a 0-100 percentage value.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// FormatShares formats a share count.
func FormatShares(n int64) string {
	return FormatNumber(n)
}

// Truncate shortens s to limit runes, ellipsized.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
