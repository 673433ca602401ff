package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNew_RejectsInvertedAndZeroRanges(t *testing.T) {
	_, err := New(date(2025, 6, 5), date(2025, 6, 1))
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = New(date(2025, 6, 5), date(2025, 6, 5))
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = New(time.Time{}, date(2025, 6, 5))
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestNights(t *testing.T) {
	d := date(2025, 6, 1)

	same := DateRange{From: d, To: d}
	assert.Equal(t, 0, same.Nights())

	one := DateRange{From: d, To: d.AddDate(0, 0, 1)}
	assert.Equal(t, 1, one.Nights())

	// partial days round up
	partial := DateRange{From: d, To: d.Add(36 * time.Hour)}
	assert.Equal(t, 2, partial.Nights())

	// monotonically non-decreasing in span
	prev := 0
	for hours := 0; hours <= 24*10; hours += 7 {
		dr := DateRange{From: d, To: d.Add(time.Duration(hours) * time.Hour)}
		n := dr.Nights()
		require.GreaterOrEqual(t, n, prev, "nights shrank at span %dh", hours)
		prev = n
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b DateRange
		want bool
	}{
		{
			name: "disjoint",
			a:    DateRange{From: date(2025, 1, 1), To: date(2025, 1, 5)},
			b:    DateRange{From: date(2025, 2, 1), To: date(2025, 2, 5)},
			want: false,
		},
		{
			name: "back to back shares only a boundary",
			a:    DateRange{From: date(2025, 1, 1), To: date(2025, 1, 5)},
			b:    DateRange{From: date(2025, 1, 5), To: date(2025, 1, 10)},
			want: false,
		},
		{
			name: "partial overlap",
			a:    DateRange{From: date(2025, 1, 1), To: date(2025, 1, 6)},
			b:    DateRange{From: date(2025, 1, 5), To: date(2025, 1, 10)},
			want: true,
		},
		{
			name: "contained",
			a:    DateRange{From: date(2025, 1, 1), To: date(2025, 1, 10)},
			b:    DateRange{From: date(2025, 1, 3), To: date(2025, 1, 4)},
			want: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a), "overlap must be symmetric")
		})
	}
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 3000.0, TotalPrice(3, 1000))
	assert.Equal(t, 0.0, TotalPrice(0, 1000))
}
