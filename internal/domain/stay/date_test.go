package stay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDay(t *testing.T) {
	t.Run("strips time of day", func(t *testing.T) {
		in := time.Date(2024, 6, 1, 17, 45, 12, 999, time.UTC)
		assert.Equal(t, date(2024, 6, 1), Day(in))
	})

	t.Run("normalizes to UTC", func(t *testing.T) {
		loc := time.FixedZone("IST", 5*3600+1800)
		in := time.Date(2024, 6, 2, 1, 0, 0, 0, loc)
		// 01:00 IST is still the previous day in UTC
		assert.Equal(t, date(2024, 6, 1), Day(in))
	})
}

func TestParseDay(t *testing.T) {
	t.Run("valid ISO date", func(t *testing.T) {
		d, err := ParseDay("2024-06-01")
		require.NoError(t, err)
		assert.Equal(t, date(2024, 6, 1), d)
	})

	t.Run("malformed input rejected", func(t *testing.T) {
		for _, raw := range []string{"", "06/01/2024", "2024-13-01", "2024-06-41", "not-a-date"} {
			_, err := ParseDay(raw)
			assert.Error(t, err, raw)
		}
	})
}

func TestNights(t *testing.T) {
	assert.Equal(t, 0, Nights(date(2024, 6, 1), date(2024, 6, 1)))
	assert.Equal(t, 1, Nights(date(2024, 6, 1), date(2024, 6, 2)))
	assert.Equal(t, 30, Nights(date(2024, 6, 1), date(2024, 7, 1)))
	assert.Equal(t, -1, Nights(date(2024, 6, 2), date(2024, 6, 1)))
}

func TestDaysThrough(t *testing.T) {
	t.Run("inclusive of both ends", func(t *testing.T) {
		days := DaysThrough(date(2024, 6, 1), date(2024, 6, 3))
		require.Len(t, days, 3)
		assert.Equal(t, date(2024, 6, 1), days[0])
		assert.Equal(t, date(2024, 6, 3), days[2])
	})

	t.Run("single day range has one entry", func(t *testing.T) {
		days := DaysThrough(date(2024, 6, 1), date(2024, 6, 1))
		require.Len(t, days, 1)
	})

	t.Run("one more entry than nights", func(t *testing.T) {
		from, to := date(2024, 6, 1), date(2024, 6, 8)
		assert.Len(t, DaysThrough(from, to), Nights(from, to)+1)
	})

	t.Run("inverted range yields nothing", func(t *testing.T) {
		assert.Empty(t, DaysThrough(date(2024, 6, 2), date(2024, 6, 1)))
	})

	t.Run("crosses month boundary", func(t *testing.T) {
		days := DaysThrough(date(2024, 6, 29), date(2024, 7, 2))
		require.Len(t, days, 4)
		assert.Equal(t, date(2024, 7, 2), days[3])
	})
}

func TestMonthStart(t *testing.T) {
	assert.Equal(t, date(2024, 6, 1), MonthStart(date(2024, 6, 17)))
	assert.Equal(t, date(2024, 6, 1), MonthStart(date(2024, 6, 1)))
}
