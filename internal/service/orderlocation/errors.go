package orderlocation

import "errors"

var (
	ErrMissingRequiredFields = errors.New("order id and delivery option are required")
	ErrInvalidDeliveryOption = errors.New("delivery option out of range")
	ErrStoreIDRequired       = errors.New("store id required for courier delivery")
	ErrInternalTypeRequired  = errors.New("internal delivery type required for local delivery")
	ErrInvalidOrderID        = errors.New("invalid order id")

	ErrLocationNotFound = errors.New("order location not found")
)
