// Package timecalc turns the loosely formatted date and time strings found in
// ticket files into instants and durations.
//
// A period string is a date and a clock joined by a dot, with the clock's
// colons replaced by dots, e.g. "12.05.18" and "16:20" become "12.05.18.16.20".
// Periods are read with the pattern yy.MM.dd.HH.mm after every token has been
// left padded to two digits.
package timecalc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/thomas-vilte/flighttime/internal/regex"
)

const (
	tokenWidth = 2
	maxTokens  = 5
	baseYear   = 2000
)

var ErrInvalidPeriod = errors.New("invalid period")

// Period joins a date and a clock into a period string.
func Period(date, clock string) string {
	return date + "." + strings.ReplaceAll(clock, ":", ".")
}

// Normalize pads every dot separated token to two digits and keeps the first
// five tokens. Trailing empty tokens are dropped before padding.
func Normalize(period string) string {
	tokens := strings.Split(period, ".")
	for len(tokens) > 1 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) > maxTokens {
		tokens = tokens[:maxTokens]
	}

	for i, token := range tokens {
		if len(token) < tokenWidth {
			tokens[i] = strings.Repeat("0", tokenWidth-len(token)) + token
		}
	}

	return strings.Join(tokens, ".")
}

// Parse reads a period string as a zone-less wall clock instant, returned in
// UTC. Days past the end of the month are clamped to its last day and 24:00
// is read as midnight of the following day.
func Parse(period string) (time.Time, error) {
	normalized := Normalize(period)

	m := regex.Period.FindStringSubmatch(normalized)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q does not match yy.MM.dd.HH.mm", ErrInvalidPeriod, period)
	}

	fields := make([]int, maxTokens)
	for i := range fields {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidPeriod, period, err)
		}
		fields[i] = v
	}

	year, month, day, hour, minute := baseYear+fields[0], fields[1], fields[2], fields[3], fields[4]

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: %q: month %d out of range", ErrInvalidPeriod, period, month)
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: %q: day %d out of range", ErrInvalidPeriod, period, day)
	}
	if minute > 59 {
		return time.Time{}, fmt.Errorf("%w: %q: minute %d out of range", ErrInvalidPeriod, period, minute)
	}

	nextDay := false
	switch {
	case hour == 24 && minute == 0:
		hour = 0
		nextDay = true
	case hour > 23:
		return time.Time{}, fmt.Errorf("%w: %q: hour %d out of range", ErrInvalidPeriod, period, hour)
	}

	if last := daysIn(year, time.Month(month)); day > last {
		day = last
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	if nextDay {
		t = t.AddDate(0, 0, 1)
	}
	return t, nil
}

// Between returns the whole seconds elapsed from departure to arrival. The
// result is negative when arrival precedes departure.
func Between(departure, arrival string) (int64, error) {
	from, err := Parse(departure)
	if err != nil {
		return 0, fmt.Errorf("departure: %w", err)
	}

	to, err := Parse(arrival)
	if err != nil {
		return 0, fmt.Errorf("arrival: %w", err)
	}

	return int64(to.Sub(from) / time.Second), nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
