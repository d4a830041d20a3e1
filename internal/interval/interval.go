// Package interval derives chart and table data from the interval bucket
// structure returned by the full-summary endpoint.
package interval

import (
	"fmt"
	"strings"
)

// Type names one of the recurring period kinds.
type Type string

const (
	Month  Type = "month"
	BiWeek Type = "biWeek"
	Week   Type = "week"
)

// Span is the first-date/last-date pair identifying one period bucket.
type Span struct {
	FirstDate string `json:"firstDate"`
	LastDate  string `json:"lastDate"`
}

// Summary is one interval bucket: its span, aggregate expense, and the
// per-category change/composition plus per-day expense breakdowns.
type Summary struct {
	FirstDate          string             `json:"firstDate"`
	LastDate           string             `json:"lastDate"`
	TotalExpense       float64            `json:"totalExpense"`
	ExpenseChange      map[string]float64 `json:"expenseChange"`
	ExpenseComposition map[string]float64 `json:"expenseComposition"`
	DailyExpense       map[string]float64 `json:"dailyExpense"`
}

// BucketMap maps an interval type to its ordered bucket list, newest first:
// index 0 is the latest period.
type BucketMap map[Type][]Summary

// ChartData is the subset of a bucket used to drive the comparison charts.
type ChartData struct {
	ChangePercentage      map[string]float64
	CompositionPercentage map[string]float64
	DailyExpense          map[string]float64
}

// ReformatDate re-delimits a three-token date string, e.g. "07/04/2026"
// with from "/" and to "-" becomes "07-04-2026". Token order is preserved;
// no calendar validation is performed. Returns an error unless the input
// splits into exactly three tokens.
func ReformatDate(date, fromDelimiter, toDelimiter string) (string, error) {
	tokens := strings.Split(date, fromDelimiter)
	if len(tokens) != 3 {
		return "", fmt.Errorf("interval: date %q does not split into three tokens on %q", date, fromDelimiter)
	}
	return strings.Join(tokens, toDelimiter), nil
}

// Latest returns the spans of the requested interval type in source order
// (newest first). A missing or empty bucket list yields an empty slice;
// callers must treat that as "not yet loaded" rather than indexing blindly.
func Latest(buckets BucketMap, intervalType Type) []Span {
	summaries := buckets[intervalType]
	spans := make([]Span, 0, len(summaries))
	for _, s := range summaries {
		spans = append(spans, Span{FirstDate: s.FirstDate, LastDate: s.LastDate})
	}
	return spans
}

// LatestExpense maps each bucket's first date to its total expense, for
// charting expense over time. First dates are unique within a type.
func LatestExpense(buckets BucketMap, intervalType Type) map[string]float64 {
	summaries := buckets[intervalType]
	expenses := make(map[string]float64, len(summaries))
	for _, s := range summaries {
		expenses[s.FirstDate] = s.TotalExpense
	}
	return expenses
}

// Chart scans the bucket list for the interval starting at firstDate and
// returns its chart breakdowns. The second return is false when no bucket
// matches; first match wins.
func Chart(buckets BucketMap, intervalType Type, firstDate string) (ChartData, bool) {
	for _, s := range buckets[intervalType] {
		if s.FirstDate == firstDate {
			return ChartData{
				ChangePercentage:      s.ExpenseChange,
				CompositionPercentage: s.ExpenseComposition,
				DailyExpense:          s.DailyExpense,
			}, true
		}
	}
	return ChartData{}, false
}
