package deliveryorder

import "backoffice/internal/entities"

func ToDomain(o *DeliveryOrderDB) *entities.DeliveryOrder {
	if o == nil {
		return nil
	}
	events := make([]entities.OrderEvent, 0, len(o.Events))
	for _, e := range o.Events {
		events = append(events, entities.OrderEvent{
			HappenedAt:  e.HappenedAt,
			Status:      e.Status,
			Description: e.Description,
		})
	}
	return &entities.DeliveryOrder{
		ID:             o.ID,
		StoreID:        o.StoreID,
		StoreURL:       o.StoreURL,
		CourierService: entities.CourierServiceType(o.CourierService),
		OrderID:        o.OrderID,
		OrderName:      o.OrderName,
		CustomerID:     o.CustomerID,
		ConsignmentID:  o.ConsignmentID,
		FulfillmentID:  o.FulfillmentID,
		Events:         events,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func ToSummaryDomain(s *InternalOrderSummaryDB) entities.InternalOrderSummary {
	return entities.InternalOrderSummary{
		OrderID:         s.OrderID,
		OrderName:       s.OrderName,
		FulfillmentID:   s.FulfillmentID,
		ConsignmentID:   s.ConsignmentID,
		CustomerID:      s.CustomerID,
		LastEventStatus: s.LastEventStatus,
	}
}

func FromDomainEvent(e entities.OrderEvent) EventDB {
	return EventDB{
		HappenedAt:  e.HappenedAt,
		Status:      e.Status,
		Description: e.Description,
	}
}

func FromDomainModify(o *entities.DeliveryOrderModify) *DeliveryOrderModifyDB {
	if o == nil {
		return nil
	}
	modifyDB := &DeliveryOrderModifyDB{
		StoreID:       o.StoreID,
		StoreURL:      o.StoreURL,
		OrderID:       o.OrderID,
		OrderName:     o.OrderName,
		CustomerID:    o.CustomerID,
		ConsignmentID: o.ConsignmentID,
		FulfillmentID: o.FulfillmentID,
	}

	if o.CourierService != nil {
		service := o.CourierService.String()
		modifyDB.CourierService = &service
	}

	return modifyDB
}
