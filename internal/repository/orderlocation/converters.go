package orderlocation

import "backoffice/internal/entities"

func ToDomain(l *OrderLocationDB) *entities.OrderLocation {
	if l == nil {
		return nil
	}

	var method entities.DeliveryMethod
	switch entities.DeliveryOptionType(l.DeliveryOption) {
	case entities.DeliveryOptionCourier:
		var storeID int64
		if l.StoreID != nil {
			storeID = *l.StoreID
		}
		method = entities.CourierDelivery(storeID)
	default:
		// Local, and the fallback for rows written before the option range
		// was validated.
		var internalType int64
		if l.InternalDeliveryType != nil {
			internalType = *l.InternalDeliveryType
		}
		method = entities.LocalDelivery(internalType)
	}

	return &entities.OrderLocation{
		OrderID:   l.OrderID,
		Method:    method,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// FromDomain flattens the delivery-method union into the two-optional-column
// storage shape, leaving the inapplicable column NULL so upserts clear it.
func FromDomain(l *entities.OrderLocation) *OrderLocationDB {
	if l == nil {
		return nil
	}

	locationDB := &OrderLocationDB{
		OrderID:        l.OrderID,
		DeliveryOption: int64(l.Method.Option()),
	}

	if storeID, ok := l.Method.StoreID(); ok {
		locationDB.StoreID = &storeID
	}
	if internalType, ok := l.Method.InternalDeliveryType(); ok {
		locationDB.InternalDeliveryType = &internalType
	}

	return locationDB
}
