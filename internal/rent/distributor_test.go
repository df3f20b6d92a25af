package rent_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k12345663/Shop-Mauli/internal/rent"
)

func feb2026() rent.Period {
	return rent.Period{Year: 2026, Month: time.February}
}

func TestPlanDistribution_ExactMonthCoverage(t *testing.T) {
	// GIVEN: monthly rent 5000, no prior payments
	// WHEN: an advance of 15000 arrives
	// THEN: exactly 3 consecutive fully-paid months starting at the current one

	plan := rent.PlanDistribution(rent.DistributionInput{
		MonthlyExpected:   5000,
		LumpSum:           15000,
		Start:             feb2026(),
		CollectedByPeriod: nil,
	})

	require.Len(t, plan, 3)

	wantLabels := []string{"Feb-2026", "Mar-2026", "Apr-2026"}
	var total float64
	for i, inst := range plan {
		assert.Equal(t, wantLabels[i], inst.Period.Label())
		assert.Equal(t, rent.StatusPaid, inst.Status)
		assert.True(t, inst.FullyPaid)
		assert.Equal(t, 5000.0, inst.Amount)
		assert.Equal(t, 5000.0, inst.Expected)
		total += inst.Amount
	}
	assert.Equal(t, 15000.0, total, "lump sum fully consumed")
}

func TestPlanDistribution_PartialRemainder(t *testing.T) {
	// 12000 against 5000/month: two paid months then a 2000 partial

	plan := rent.PlanDistribution(rent.DistributionInput{
		MonthlyExpected: 5000,
		LumpSum:         12000,
		Start:           feb2026(),
	})

	require.Len(t, plan, 3)
	assert.Equal(t, rent.StatusPaid, plan[0].Status)
	assert.Equal(t, rent.StatusPaid, plan[1].Status)
	assert.Equal(t, rent.StatusPartial, plan[2].Status)
	assert.Equal(t, 2000.0, plan[2].Amount)
	assert.False(t, plan[2].FullyPaid)
}

func TestPlanDistribution_SkipsAlreadyPaidCurrentMonth(t *testing.T) {
	// Current month already fully paid: the first new record lands on the
	// following month and no row is emitted for the paid one.

	plan := rent.PlanDistribution(rent.DistributionInput{
		MonthlyExpected: 5000,
		LumpSum:         5000,
		Start:           feb2026(),
		CollectedByPeriod: map[string]float64{
			"Feb-2026": 5000,
		},
	})

	require.Len(t, plan, 1)
	assert.Equal(t, "Mar-2026", plan[0].Period.Label())
	assert.Equal(t, rent.StatusPaid, plan[0].Status)
}

func TestPlanDistribution_SmallLumpSinglePartial(t *testing.T) {
	plan := rent.PlanDistribution(rent.DistributionInput{
		MonthlyExpected: 5000,
		LumpSum:         1200,
		Start:           feb2026(),
	})

	require.Len(t, plan, 1)
	assert.Equal(t, rent.StatusPartial, plan[0].Status)
	assert.Equal(t, 1200.0, plan[0].Amount)
}

func TestPlanDistribution_DeficitWithMultiplePartials(t *testing.T) {
	// Two prior partials summing 3000 against 5000 leave a 2000 deficit.
	// A remaining 1000 applies fully and the month stays partial
	// (cumulative 4000 < 5000).

	plan := rent.PlanDistribution(rent.DistributionInput{
		MonthlyExpected: 5000,
		LumpSum:         1000,
		Start:           feb2026(),
		CollectedByPeriod: map[string]float64{
			"Feb-2026": 3000, // 1800 + 1200 recorded earlier
		},
	})

	require.Len(t, plan, 1)
	assert.Equal(t, "Feb-2026", plan[0].Period.Label())
	assert.Equal(t, 1000.0, plan[0].Amount)
	assert.Equal(t, rent.StatusPartial, plan[0].Status)
}

func TestPlanDistribution_TopUpCompletesMonth(t *testing.T) {
	plan := rent.PlanDistribution(rent.DistributionInput{
		MonthlyExpected: 5000,
		LumpSum:         2000,
		Start:           feb2026(),
		CollectedByPeriod: map[string]float64{
			"Feb-2026": 3000,
		},
	})

	require.Len(t, plan, 1)
	assert.Equal(t, 2000.0, plan[0].Amount)
	assert.Equal(t, rent.StatusPaid, plan[0].Status)
}

func TestPlanDistribution_AllPeriodsPaid_HardBound(t *testing.T) {
	// Every one of the next 120 periods is already covered: the walk
	// terminates gracefully with zero records and nothing consumed.

	collected := make(map[string]float64)
	p := feb2026()
	for i := 0; i < rent.MaxAdvancePeriods+12; i++ {
		collected[p.Label()] = 5000
		p = p.Next()
	}

	plan := rent.PlanDistribution(rent.DistributionInput{
		MonthlyExpected:   5000,
		LumpSum:           25000,
		Start:             feb2026(),
		CollectedByPeriod: collected,
	})

	assert.Empty(t, plan)
}

func TestPlanDistribution_BoundCapsHugeLump(t *testing.T) {
	// A lump covering more than 120 months stops at the bound.

	plan := rent.PlanDistribution(rent.DistributionInput{
		MonthlyExpected: 100,
		LumpSum:         100 * 500,
		Start:           feb2026(),
	})

	assert.Len(t, plan, rent.MaxAdvancePeriods)
	for _, inst := range plan {
		assert.Equal(t, rent.StatusPaid, inst.Status)
	}
}

func TestPlanDistribution_NeverLooksBackward(t *testing.T) {
	// Arrears in past periods are invisible: the walk starts at Start and
	// only moves forward.

	plan := rent.PlanDistribution(rent.DistributionInput{
		MonthlyExpected: 5000,
		LumpSum:         5000,
		Start:           feb2026(),
		CollectedByPeriod: map[string]float64{
			"Dec-2025": 100, // old partial, must not be retired
		},
	})

	require.Len(t, plan, 1)
	assert.Equal(t, "Feb-2026", plan[0].Period.Label())
}

func TestPlanDistribution_Deterministic(t *testing.T) {
	in := rent.DistributionInput{
		MonthlyExpected: 3500,
		LumpSum:         9100,
		Start:           feb2026(),
		CollectedByPeriod: map[string]float64{
			"Mar-2026": 1000,
		},
	}

	first := rent.PlanDistribution(in)
	second := rent.PlanDistribution(in)
	assert.Equal(t, first, second)
}
