package entities

import "time"

// DeliveryMan is the single active assignment of a human courier to an order.
// Upserts overwrite; no assignment history is kept.
type DeliveryMan struct {
	OrderID   string
	Name      string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
