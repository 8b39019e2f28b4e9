package orderlocation

import (
	"context"
	"fmt"
	"strings"

	"backoffice/internal/entities"
)

// Classification is the raw, unvalidated upsert input: the delivery option
// plus both optional union fields exactly as they arrive on the wire.
type Classification struct {
	OrderID              string
	DeliveryOption       int64
	StoreID              *int64
	InternalDeliveryType *int64
}

type Locations struct {
	repository Repository
}

func New(repository Repository) *Locations {
	return &Locations{
		repository: repository,
	}
}

// Upsert validates the conditional-required fields in contract order, folds
// the two optional fields into the delivery-method union and stores it. The
// field that does not apply to the chosen option is always cleared.
func (l *Locations) Upsert(ctx context.Context, input Classification) (*entities.OrderLocation, error) {
	if strings.TrimSpace(input.OrderID) == "" || input.DeliveryOption == 0 {
		return nil, ErrMissingRequiredFields
	}

	option := entities.DeliveryOptionType(input.DeliveryOption)
	if !option.IsValid() {
		return nil, ErrInvalidDeliveryOption
	}

	var method entities.DeliveryMethod
	switch option {
	case entities.DeliveryOptionCourier:
		if input.StoreID == nil || *input.StoreID == 0 {
			return nil, ErrStoreIDRequired
		}
		method = entities.CourierDelivery(*input.StoreID)
	case entities.DeliveryOptionLocal:
		if input.InternalDeliveryType == nil || *input.InternalDeliveryType == 0 {
			return nil, ErrInternalTypeRequired
		}
		method = entities.LocalDelivery(*input.InternalDeliveryType)
	}

	location, err := l.repository.Upsert(ctx, entities.OrderLocation{
		OrderID: input.OrderID,
		Method:  method,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert order location: %w", err)
	}

	return location, nil
}

func (l *Locations) GetByOrderID(ctx context.Context, orderID string) (*entities.OrderLocation, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	location, err := l.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return location, nil
}
