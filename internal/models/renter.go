package models

import "time"

type Renter struct {
	ID         int       `json:"id"`
	RenterCode string    `json:"renter_code"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateRenterRequest struct {
	RenterCode string `json:"renter_code"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
}
