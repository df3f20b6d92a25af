package rent

// MaxAdvancePeriods bounds the distribution walk to roughly ten years of
// billing months. It is a failsafe against runaway loops, not an error:
// hitting the bound simply returns whatever instalments were planned.
const MaxAdvancePeriods = 120

// DistributionInput is the in-memory snapshot the planner works over.
// MonthlyExpected is frozen for the whole walk: if a shop's rent changes
// while a distribution is in flight, the stale snapshot wins.
type DistributionInput struct {
	// MonthlyExpected is the renter's combined rent over active shops.
	MonthlyExpected float64
	// LumpSum is the cash received, to be spread forward.
	LumpSum float64
	// Start is the first period considered, normally the current month.
	// The walk never looks backward; past arrears are not retired.
	Start Period
	// CollectedByPeriod sums received amounts of existing payment rows,
	// keyed by period label.
	CollectedByPeriod map[string]float64
}

// Instalment is one planned per-period payment produced by the distribution.
type Instalment struct {
	Period    Period
	Expected  float64
	Amount    float64
	Status    Status
	FullyPaid bool
}

// PlanDistribution walks forward one month at a time from in.Start, applying
// the lump sum to each period's deficit and skipping months that are already
// fully covered. Deterministic: same input, same plan.
func PlanDistribution(in DistributionInput) []Instalment {
	var plan []Instalment
	remaining := in.LumpSum
	period := in.Start

	for loops := 0; remaining > 0 && loops < MaxAdvancePeriods; loops++ {
		collected := in.CollectedByPeriod[period.Label()]

		deficit := in.MonthlyExpected - collected
		if deficit > 0 {
			amount := deficit
			if remaining < amount {
				amount = remaining
			}

			status := DeriveStatus(in.MonthlyExpected, collected+amount)
			plan = append(plan, Instalment{
				Period:    period,
				Expected:  in.MonthlyExpected,
				Amount:    amount,
				Status:    status,
				FullyPaid: status == StatusPaid,
			})
			remaining -= amount
		}
		// deficit <= 0: month already fully paid, skip silently.

		period = period.Next()
	}

	return plan
}
