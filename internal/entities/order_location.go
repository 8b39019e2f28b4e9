package entities

import "time"

// DeliveryOptionType selects how an order is delivered.
type DeliveryOptionType int64

const (
	DeliveryOptionLocal   DeliveryOptionType = 1
	DeliveryOptionCourier DeliveryOptionType = 2
)

func (o DeliveryOptionType) IsValid() bool {
	return o == DeliveryOptionLocal || o == DeliveryOptionCourier
}

// DeliveryMethod is a tagged union: Local carries an internal delivery type,
// Courier carries a store id. The storage layer flattens it into two nullable
// columns; inside the domain only one variant can ever be populated.
type DeliveryMethod struct {
	option               DeliveryOptionType
	storeID              int64
	internalDeliveryType int64
}

// LocalDelivery builds the Local variant.
func LocalDelivery(internalDeliveryType int64) DeliveryMethod {
	return DeliveryMethod{
		option:               DeliveryOptionLocal,
		internalDeliveryType: internalDeliveryType,
	}
}

// CourierDelivery builds the Courier variant.
func CourierDelivery(storeID int64) DeliveryMethod {
	return DeliveryMethod{
		option:  DeliveryOptionCourier,
		storeID: storeID,
	}
}

func (m DeliveryMethod) Option() DeliveryOptionType {
	return m.option
}

// StoreID is populated only for the Courier variant.
func (m DeliveryMethod) StoreID() (int64, bool) {
	if m.option != DeliveryOptionCourier {
		return 0, false
	}
	return m.storeID, true
}

// InternalDeliveryType is populated only for the Local variant.
func (m DeliveryMethod) InternalDeliveryType() (int64, bool) {
	if m.option != DeliveryOptionLocal {
		return 0, false
	}
	return m.internalDeliveryType, true
}

// OrderLocation classifies how one order should be delivered. One record per
// order id; upserts overwrite.
type OrderLocation struct {
	OrderID   string
	Method    DeliveryMethod
	CreatedAt time.Time
	UpdatedAt time.Time
}
