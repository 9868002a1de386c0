// Package stats aggregates flight durations and renders them for the report.
package stats

import (
	"slices"
	"time"
)

const (
	SecondsPerDay = 86400

	clockLayout = "15:04:05"
	dayLayout   = "02:15:04:05"
)

// Mean returns the arithmetic average of durations, or 0 when there are none.
func Mean(durations []int64) float64 {
	if len(durations) == 0 {
		return 0
	}

	var sum float64
	for _, d := range durations {
		sum += float64(d)
	}
	return sum / float64(len(durations))
}

// PercentileIndex returns the position of the p-th percentile in a sorted
// slice of n values. It samples the lower bound: k = p*n/100, then k-1 when
// k is positive.
func PercentileIndex(n, p int) int {
	k := p * n / 100
	if k > 0 {
		return k - 1
	}
	return 0
}

// Percentile returns the p-th percentile of durations without modifying the
// input. It returns 0 for an empty input.
func Percentile(durations []int64, p int) int64 {
	if len(durations) == 0 {
		return 0
	}

	sorted := slices.Clone(durations)
	slices.Sort(sorted)
	return sorted[PercentileIndex(len(sorted), p)]
}

// Format renders seconds as HH:MM:SS. Values of a day or more lose one day
// and are rendered as DD:HH:MM:SS, where DD is the day of month of the
// remainder counted from 1970-01-01. The day field equals the number of
// whole days only below 32 days.
func Format(seconds float64) string {
	layout := clockLayout
	if seconds >= SecondsPerDay {
		layout = dayLayout
		seconds -= SecondsPerDay
	}

	return time.UnixMilli(int64(seconds * 1000)).UTC().Format(layout)
}
