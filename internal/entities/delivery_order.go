package entities

import "time"

// CourierServiceType identifies which courier handles a consignment.
type CourierServiceType string

const (
	CourierPathao    CourierServiceType = "PATHAO"
	CourierRedx      CourierServiceType = "REDX"
	CourierSteadfast CourierServiceType = "STEADFAST"
	CourierECourier  CourierServiceType = "ECOURIER"
	CourierInternal  CourierServiceType = "INTERNAL"
)

func (t CourierServiceType) String() string {
	return string(t)
}

func (t CourierServiceType) IsValid() bool {
	switch t {
	case CourierPathao, CourierRedx, CourierSteadfast, CourierECourier, CourierInternal:
		return true
	default:
		return false
	}
}

// OrderEvent is one entry of a delivery order's append-only event sequence.
// The latest status of an order is the last element of the sequence, by
// position, never by comparing timestamps.
type OrderEvent struct {
	HappenedAt  time.Time
	Status      string
	Description string
}

// DeliveryOrder is the authoritative record per courier consignment.
// (StoreID, CourierService, ConsignmentID) is unique; FulfillmentID is
// globally unique.
type DeliveryOrder struct {
	ID             int64
	StoreID        int64
	StoreURL       string
	CourierService CourierServiceType
	OrderID        string
	OrderName      string
	CustomerID     string
	ConsignmentID  string
	FulfillmentID  string
	Events         []OrderEvent
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type DeliveryOrderModify struct {
	StoreID        *int64
	StoreURL       *string
	CourierService *CourierServiceType
	OrderID        *string
	OrderName      *string
	CustomerID     *string
	ConsignmentID  *string
	FulfillmentID  *string
}
