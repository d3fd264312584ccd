package service

import (
	"math/rand"
	"testing"
	"time"

	"github.com/sangkips/salesledger/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDeriveWindow_MonthlyEnd(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		want  time.Time
	}{
		{"last day of january", date(2024, time.January, 31), date(2024, time.January, 31)},
		{"leap february", date(2024, time.February, 1), date(2024, time.February, 29)},
		{"common february", date(2023, time.February, 10), date(2023, time.February, 28)},
		{"december rolls into next year", date(2024, time.December, 15), date(2024, time.December, 31)},
		{"thirty day month", date(2024, time.April, 30), date(2024, time.April, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := DeriveWindow(enum.RevenuePeriodMonthly, tt.start, tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.start, w.Start)
			assert.Equal(t, tt.want, w.End)
		})
	}
}

func TestDeriveWindow_AnnualIgnoresBaseEnd(t *testing.T) {
	start := date(2023, time.March, 10)
	for _, end := range []time.Time{start, date(2025, time.July, 1), date(2020, time.January, 1)} {
		w, err := DeriveWindow(enum.RevenuePeriodAnnual, start, end)
		require.NoError(t, err)
		assert.Equal(t, date(2023, time.December, 31), w.End)
	}
}

func TestDeriveWindow_WeeklyIsSevenDays(t *testing.T) {
	starts := []time.Time{
		date(2024, time.June, 1),
		date(2024, time.February, 26),
		date(2023, time.December, 28),
		time.Date(2024, time.March, 30, 15, 45, 0, 0, time.UTC),
	}
	for _, start := range starts {
		for _, end := range []time.Time{start, start.AddDate(0, 2, 0), start.AddDate(0, 0, -3)} {
			w, err := DeriveWindow(enum.RevenuePeriodWeekly, start, end)
			require.NoError(t, err)
			assert.Equal(t, start, w.Start)
			assert.Equal(t, start.AddDate(0, 0, 6), w.End)
			assert.Equal(t, 6*24*time.Hour, w.End.Sub(w.Start))
		}
	}
}

func TestDeriveWindow_DailyIsBaseRange(t *testing.T) {
	start, end := date(2024, time.June, 1), date(2024, time.June, 10)
	w, err := DeriveWindow(enum.RevenuePeriodDaily, start, end)
	require.NoError(t, err)
	assert.Equal(t, start, w.Start)
	assert.Equal(t, end, w.End)

	// inverted ranges are kept as given
	w, err = DeriveWindow(enum.RevenuePeriodDaily, end, start)
	require.NoError(t, err)
	assert.Equal(t, end, w.Start)
	assert.Equal(t, start, w.End)
}

func TestDeriveWindow_KeepsClockTime(t *testing.T) {
	start := time.Date(2024, time.January, 31, 13, 30, 0, 0, time.UTC)

	monthly, err := DeriveWindow(enum.RevenuePeriodMonthly, start, start)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 31, 13, 30, 0, 0, time.UTC), monthly.End)

	annual, err := DeriveWindow(enum.RevenuePeriodAnnual, start, start)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.December, 31, 13, 30, 0, 0, time.UTC), annual.End)
}

func TestDeriveWindow_UnknownPeriod(t *testing.T) {
	_, err := DeriveWindow(enum.RevenuePeriod(42), date(2024, 1, 1), date(2024, 1, 2))
	assert.Error(t, err)
}

// Windows depend only on (start, end): deriving them in any order gives the same result.
func TestDeriveWindows_OrderIndependent(t *testing.T) {
	start, end := date(2024, time.December, 15), date(2025, time.January, 3)
	reference := DeriveWindows(start, end)
	require.Len(t, reference, 4)

	periods := enum.RevenuePeriods()
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 10; round++ {
		order := rng.Perm(len(periods))
		for _, idx := range order {
			w, err := DeriveWindow(periods[idx], start, end)
			require.NoError(t, err)
			assert.Equal(t, reference[idx], w)
		}
	}

	assert.Equal(t, enum.RevenuePeriodDaily, reference[0].Period)
	assert.Equal(t, end, reference[0].End)
	assert.Equal(t, date(2024, time.December, 21), reference[1].End)
	assert.Equal(t, date(2024, time.December, 31), reference[2].End)
	assert.Equal(t, date(2024, time.December, 31), reference[3].End)
}
