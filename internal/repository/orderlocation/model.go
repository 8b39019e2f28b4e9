package orderlocation

import "time"

// OrderLocationDB is the flat storage shape of the delivery-method union:
// exactly one of StoreID / InternalDeliveryType is non-NULL, picked by
// DeliveryOption. The storage schema itself does not enforce this; the
// converters do.
type OrderLocationDB struct {
	OrderID              string
	DeliveryOption       int64
	StoreID              *int64
	InternalDeliveryType *int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
