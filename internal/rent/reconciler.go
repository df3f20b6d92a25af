package rent

import "sort"

// Assignment is one renter-to-shop link as the reconciler sees it: the rent
// attribution plus the deposit figures carried on the link itself.
type Assignment struct {
	RenterID         int
	RenterCode       string
	RenterName       string
	ShopID           int
	ShopActive       bool
	RentAmount       float64
	ExpectedDeposit  float64
	CollectedDeposit float64
}

// PeriodPayment is a recorded payment row reduced to what reconciliation
// needs. Multiple partial rows for one renter sum up.
type PeriodPayment struct {
	RenterID int
	Received float64
}

// RenterStatus is the per-renter reconciliation result for one period.
type RenterStatus struct {
	RenterID   int     `json:"renter_id"`
	RenterCode string  `json:"renter_code"`
	RenterName string  `json:"renter_name"`
	Status     Status  `json:"status"`
	Severity   int     `json:"severity"`
	Expected   float64 `json:"expected"`
	Collected  float64 `json:"collected"`
	Pending    float64 `json:"pending"`

	DepositExpected  float64 `json:"deposit_expected"`
	DepositCollected float64 `json:"deposit_collected"`
	DepositRemaining float64 `json:"deposit_remaining"`
}

// Reconcile joins the assignment graph with the period's payments and
// produces one status per renter, ranked for defaulter triage:
// severity descending, then pending amount descending, then renter code
// ascending so the order is total and stable across runs.
//
// Inactive shops contribute nothing to expected rent, matching the
// distribution planner's definition. Deposit figures aggregate over all of
// a renter's assignments and are informational only.
func Reconcile(assignments []Assignment, payments []PeriodPayment) []RenterStatus {
	byRenter := make(map[int]*RenterStatus)
	var order []int

	for _, a := range assignments {
		rs, ok := byRenter[a.RenterID]
		if !ok {
			rs = &RenterStatus{
				RenterID:   a.RenterID,
				RenterCode: a.RenterCode,
				RenterName: a.RenterName,
			}
			byRenter[a.RenterID] = rs
			order = append(order, a.RenterID)
		}
		if a.ShopActive {
			rs.Expected += a.RentAmount
		}
		rs.DepositExpected += a.ExpectedDeposit
		rs.DepositCollected += a.CollectedDeposit
	}

	for _, p := range payments {
		if rs, ok := byRenter[p.RenterID]; ok {
			rs.Collected += p.Received
		}
	}

	results := make([]RenterStatus, 0, len(order))
	for _, id := range order {
		rs := byRenter[id]
		rs.Status = DeriveStatus(rs.Expected, rs.Collected)
		rs.Severity = rs.Status.Severity()
		rs.Pending = rs.Expected - rs.Collected
		if rs.Pending < 0 {
			rs.Pending = 0
		}
		rs.DepositRemaining = rs.DepositExpected - rs.DepositCollected
		if rs.DepositRemaining < 0 {
			rs.DepositRemaining = 0
		}
		results = append(results, *rs)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Severity != results[j].Severity {
			return results[i].Severity > results[j].Severity
		}
		if results[i].Pending != results[j].Pending {
			return results[i].Pending > results[j].Pending
		}
		return results[i].RenterCode < results[j].RenterCode
	})

	return results
}

// MonthlyExpected sums rent over a renter's active shops. The distributor
// freezes this value for an entire distribution run.
func MonthlyExpected(assignments []Assignment) float64 {
	var total float64
	for _, a := range assignments {
		if a.ShopActive {
			total += a.RentAmount
		}
	}
	return total
}
