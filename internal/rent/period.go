package rent

import (
	"fmt"
	"time"

	"github.com/k12345663/Shop-Mauli/internal/timeutil"
)

// Period is one calendar billing month. Payments are keyed by the period
// label (e.g. "Feb-2026"), never by a date range.
type Period struct {
	Year  int
	Month time.Month
}

// LabelLayout is the canonical period label format stored in rent_payments.
const LabelLayout = "Jan-2006"

// PeriodOf returns the billing period containing t (IST calendar).
func PeriodOf(t time.Time) Period {
	ist := timeutil.ToIST(t)
	return Period{Year: ist.Year(), Month: ist.Month()}
}

// CurrentPeriod returns the billing period for the current IST month.
func CurrentPeriod() Period {
	return PeriodOf(timeutil.Now())
}

func (p Period) Label() string {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).Format(LabelLayout)
}

// Next returns the following calendar month, rolling over the year.
func (p Period) Next() Period {
	if p.Month == time.December {
		return Period{Year: p.Year + 1, Month: time.January}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// ParseLabel parses a canonical period label such as "Feb-2026".
func ParseLabel(label string) (Period, error) {
	t, err := time.Parse(LabelLayout, label)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period label %q: %w", label, err)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// ParseMonthQuery accepts either the HTML month-input format "2026-02" or a
// canonical label, and normalizes to a Period. The UI sends the former, the
// database stores the latter.
func ParseMonthQuery(q string) (Period, error) {
	if q == "" {
		return Period{}, fmt.Errorf("month is required")
	}
	if t, err := time.Parse("2006-01", q); err == nil {
		return Period{Year: t.Year(), Month: t.Month()}, nil
	}
	return ParseLabel(q)
}
