package deliveryman

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidName    = errors.New("invalid delivery man name")
	ErrInvalidPhone   = errors.New("invalid phone number")
)
