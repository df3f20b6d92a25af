package models

import "time"

// RentPayment is one payment row per (renter, billing period). Rows are an
// append/edit ledger: amounts and mode may be corrected afterward but rows
// are never deleted in normal operation. A unique constraint on
// (renter_id, period_month) prevents a second row for the same period.
type RentPayment struct {
	ID              int       `json:"id"`
	RenterID        int       `json:"renter_id"`
	CollectorUserID string    `json:"collector_user_id"`
	PeriodMonth     string    `json:"period_month"` // e.g. "Feb-2026"
	ExpectedAmount  float64   `json:"expected_amount"`
	ReceivedAmount  float64   `json:"received_amount"`
	Status          string    `json:"status"`
	PaymentMode     string    `json:"payment_mode"`
	Notes           string    `json:"notes"`
	CollectionDate  string    `json:"collection_date"` // YYYY-MM-DD
	CreatedAt       time.Time `json:"created_at"`

	// Joined for ledger views.
	RenterCode    string `json:"renter_code,omitempty"`
	RenterName    string `json:"renter_name,omitempty"`
	CollectorName string `json:"collector_name,omitempty"`
}

type CollectPaymentRequest struct {
	RenterID       int     `json:"renter_id"`
	PeriodMonth    string  `json:"period_month"`
	Amount         float64 `json:"amount"`
	PaymentMode    string  `json:"payment_mode"`
	Notes          string  `json:"notes"`
	CollectionDate string  `json:"collection_date"`
}

type AdvancePaymentRequest struct {
	RenterID       int     `json:"renter_id"`
	LumpSum        float64 `json:"lump_sum"`
	PaymentMode    string  `json:"payment_mode"`
	Notes          string  `json:"notes"`
	CollectionDate string  `json:"collection_date"`
}

type UpdatePaymentRequest struct {
	ReceivedAmount *float64 `json:"received_amount"`
	PaymentMode    *string  `json:"payment_mode"`
	CollectionDate *string  `json:"collection_date"`
	Notes          *string  `json:"notes"`
}
