package model

import "time"

// Product is a catalog entry available for purchase.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	CreatedAt   time.Time
}
