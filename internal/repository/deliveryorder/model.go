package deliveryorder

import "time"

type DeliveryOrderDB struct {
	ID             int64
	StoreID        int64
	StoreURL       string
	CourierService string
	OrderID        string
	OrderName      string
	CustomerID     string
	ConsignmentID  string
	FulfillmentID  string
	Events         []EventDB
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type DeliveryOrderModifyDB struct {
	StoreID        *int64
	StoreURL       *string
	CourierService *string
	OrderID        *string
	OrderName      *string
	CustomerID     *string
	ConsignmentID  *string
	FulfillmentID  *string
}

// EventDB is one element of the jsonb events column. Array order is the
// event order; nothing sorts by happened_at.
type EventDB struct {
	HappenedAt  time.Time `json:"happened_at"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
}

type InternalOrderSummaryDB struct {
	OrderID         string
	OrderName       string
	FulfillmentID   string
	ConsignmentID   string
	CustomerID      string
	LastEventStatus *string
}
