package models

import "time"

type Shop struct {
	ID                int       `json:"id"`
	ShopNo            string    `json:"shop_no"`
	ComplexID         int       `json:"complex_id"`
	ComplexName       string    `json:"complex_name,omitempty"` // joined from complexes
	Category          string    `json:"category"`
	RentAmount        float64   `json:"rent_amount"`
	RentCollectionDay int       `json:"rent_collection_day"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

type Complex struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CreateShopRequest struct {
	ShopNo            string  `json:"shop_no"`
	ComplexID         int     `json:"complex_id"`
	Category          string  `json:"category"`
	RentAmount        float64 `json:"rent_amount"`
	RentCollectionDay int     `json:"rent_collection_day"`
	IsActive          *bool   `json:"is_active"`
}
