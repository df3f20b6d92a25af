package rent

// Status is derived from amounts and never stored independently of them.
type Status string

const (
	StatusPaid      Status = "paid"
	StatusPartial   Status = "partial"
	StatusUnpaid    Status = "unpaid"
	StatusNoRentDue Status = "no_rent_due"
)

// DeriveStatus is the single source of truth for payment status. Every
// component (distributor, reconciler, collection, admin edits) derives
// status through this function so the rules cannot drift.
//
// paid:        expected > 0 and collected >= expected
// partial:     0 < collected < expected
// unpaid:      collected == 0 and expected > 0
// no_rent_due: expected == 0 (assignments exist but carry no active rent)
func DeriveStatus(expected, collected float64) Status {
	if expected <= 0 {
		return StatusNoRentDue
	}
	if collected >= expected {
		return StatusPaid
	}
	if collected > 0 {
		return StatusPartial
	}
	return StatusUnpaid
}

// Severity ranks statuses for defaulter triage: unpaid is the most severe.
func (s Status) Severity() int {
	switch s {
	case StatusUnpaid:
		return 3
	case StatusPartial:
		return 2
	case StatusPaid:
		return 1
	default:
		return 0
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPaid, StatusPartial, StatusUnpaid, StatusNoRentDue:
		return true
	}
	return false
}
