package stats

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/flighttime/internal/timecalc"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name      string
		durations []int64
		want      float64
	}{
		{name: "no durations", durations: nil, want: 0},
		{name: "single duration", durations: []int64{82740}, want: 82740},
		{name: "fractional mean", durations: []int64{1, 2}, want: 1.5},
		{name: "mixed magnitudes", durations: []int64{0, 3600, 86400, 172800}, want: 65700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Mean(tt.durations), 1e-9)
		})
	}
}

func TestPercentileIndex(t *testing.T) {
	tests := []struct {
		n, p, want int
	}{
		{n: 0, p: 90, want: 0},
		{n: 1, p: 90, want: 0},
		{n: 2, p: 90, want: 0},
		{n: 5, p: 90, want: 3},
		{n: 10, p: 90, want: 8},
		{n: 11, p: 90, want: 8},
		{n: 20, p: 90, want: 17},
		{n: 5, p: 100, want: 4},
		{n: 5, p: 1, want: 0},
		{n: 4, p: 50, want: 1},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.n)+"/"+strconv.Itoa(tt.p), func(t *testing.T) {
			assert.Equal(t, tt.want, PercentileIndex(tt.n, tt.p))
		})
	}
}

func TestPercentile(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, int64(0), Percentile(nil, 90))
	})

	t.Run("sorts a copy", func(t *testing.T) {
		durations := []int64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}

		got := Percentile(durations, 90)

		assert.Equal(t, int64(9), got)
		assert.Equal(t, []int64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, durations)
	})

	t.Run("lower bound sampling", func(t *testing.T) {
		assert.Equal(t, int64(100), Percentile([]int64{300, 100}, 90))
		assert.Equal(t, int64(44880), Percentile([]int64{44880, 187800, 21000, 34500, 20700}, 90))
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{name: "zero", seconds: 0, want: "00:00:00"},
		{name: "under a day", seconds: 82740, want: "22:59:00"},
		{name: "fraction is truncated", seconds: 86399.9, want: "23:59:59"},
		{name: "exactly one day", seconds: 86400, want: "01:00:00:00"},
		{name: "two days and an hour", seconds: 2*86400 + 3600, want: "02:01:00:00"},
		{name: "three days", seconds: 3*86400 + 2*3600 + 16*60, want: "03:02:16:00"},
		{name: "day field wraps after a month", seconds: 32 * 86400, want: "01:00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.seconds))
		})
	}
}

// Formatted values read back through the period parser give the seconds
// they were rendered from.
func TestFormat_RoundTrip(t *testing.T) {
	const base = "00.01.01.00.00"

	values := []int64{0, 60, 9000, 82740, 86340, 86400, 90000, 267360, 2591940}

	for _, v := range values {
		t.Run(strconv.FormatInt(v, 10), func(t *testing.T) {
			formatted := Format(float64(v))
			parts := strings.Split(formatted, ":")

			day := "01"
			var overflow int64
			if len(parts) == 4 {
				day, parts = parts[0], parts[1:]
				overflow = SecondsPerDay
			}

			period := timecalc.Period("00.01."+day, parts[0]+":"+parts[1])
			seconds, err := strconv.ParseInt(parts[2], 10, 64)
			require.NoError(t, err)

			got, err := timecalc.Between(base, period)
			require.NoError(t, err)
			assert.Equal(t, v, got+seconds+overflow)
		})
	}
}
