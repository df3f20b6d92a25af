package rent_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k12345663/Shop-Mauli/internal/rent"
)

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "Feb-2026", rent.Period{Year: 2026, Month: time.February}.Label())
	assert.Equal(t, "Dec-2025", rent.Period{Year: 2025, Month: time.December}.Label())
}

func TestPeriodNextRollsOverYear(t *testing.T) {
	p := rent.Period{Year: 2025, Month: time.December}

	next := p.Next()

	assert.Equal(t, rent.Period{Year: 2026, Month: time.January}, next)
	assert.Equal(t, rent.Period{Year: 2026, Month: time.February}, next.Next())
}

func TestPeriodOfUsesISTCalendar(t *testing.T) {
	// 2026-01-31 20:30 UTC is already 2026-02-01 02:00 in IST.
	utc := time.Date(2026, time.January, 31, 20, 30, 0, 0, time.UTC)

	p := rent.PeriodOf(utc)

	assert.Equal(t, rent.Period{Year: 2026, Month: time.February}, p)
}

func TestParseLabel(t *testing.T) {
	p, err := rent.ParseLabel("Feb-2026")
	require.NoError(t, err)
	assert.Equal(t, rent.Period{Year: 2026, Month: time.February}, p)

	_, err = rent.ParseLabel("2026-02")
	assert.Error(t, err)

	_, err = rent.ParseLabel("February 2026")
	assert.Error(t, err)
}

func TestParseMonthQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  rent.Period
	}{
		{"month input format", "2026-02", rent.Period{Year: 2026, Month: time.February}},
		{"canonical label", "Feb-2026", rent.Period{Year: 2026, Month: time.February}},
		{"december label", "Dec-2025", rent.Period{Year: 2025, Month: time.December}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := rent.ParseMonthQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}

	t.Run("empty query rejected", func(t *testing.T) {
		_, err := rent.ParseMonthQuery("")
		assert.Error(t, err)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := rent.ParseMonthQuery("next month")
		assert.Error(t, err)
	})
}
