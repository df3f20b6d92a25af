package models

import "time"

// RenterShop links one renter to one shop. Deposits live on the link and are
// independent of monthly rent.
type RenterShop struct {
	ID              int        `json:"id"`
	RenterID        int        `json:"renter_id"`
	ShopID          int        `json:"shop_id"`
	ExpectedDeposit float64    `json:"expected_deposit"`
	DepositAmount   float64    `json:"deposit_amount"` // collected so far
	DepositDate     *time.Time `json:"deposit_date,omitempty"`
	DepositRemarks  string     `json:"deposit_remarks"`
}

// AssignmentView is the joined row the reconciler and distributor consume:
// one renter-shop link with the renter identity and the shop's rent data.
type AssignmentView struct {
	AssignmentID     int     `json:"assignment_id"`
	RenterID         int     `json:"renter_id"`
	RenterCode       string  `json:"renter_code"`
	RenterName       string  `json:"renter_name"`
	ShopID           int     `json:"shop_id"`
	ShopNo           string  `json:"shop_no"`
	ComplexName      string  `json:"complex_name"`
	ShopActive       bool    `json:"shop_active"`
	RentAmount       float64 `json:"rent_amount"`
	ExpectedDeposit  float64 `json:"expected_deposit"`
	CollectedDeposit float64 `json:"collected_deposit"`
}

type CreateAssignmentRequest struct {
	RenterID        int     `json:"renter_id"`
	ShopID          int     `json:"shop_id"`
	ExpectedDeposit float64 `json:"expected_deposit"`
}

type UpdateDepositRequest struct {
	DepositAmount  float64 `json:"deposit_amount"`
	DepositDate    string  `json:"deposit_date"` // YYYY-MM-DD
	DepositRemarks string  `json:"deposit_remarks"`
}
