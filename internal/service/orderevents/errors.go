package orderevents

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCourierService = errors.New("invalid courier service")

	ErrConsignmentExists = errors.New("consignment already registered")
	ErrOrderNotFound     = errors.New("delivery order not found")
)
