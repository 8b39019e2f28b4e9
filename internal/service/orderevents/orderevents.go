package orderevents

import (
	"context"
	"fmt"
	"time"

	"backoffice/internal/entities"
)

// Events maintains the delivery-order collection from the courier tracking
// stream: consignment registration creates the record, status updates append
// to its event sequence.
type Events struct {
	repository Repository
}

func New(repository Repository) *Events {
	return &Events{
		repository: repository,
	}
}

func (e *Events) RegisterConsignment(ctx context.Context, orderModify entities.DeliveryOrderModify) (*entities.DeliveryOrder, error) {
	if orderModify.StoreID == nil ||
		!isPresent(orderModify.StoreURL) ||
		!isPresent(orderModify.OrderID) ||
		!isPresent(orderModify.OrderName) ||
		!isPresent(orderModify.CustomerID) ||
		!isPresent(orderModify.ConsignmentID) ||
		!isPresent(orderModify.FulfillmentID) {
		return nil, ErrMissingRequiredFields
	}

	if orderModify.CourierService == nil || !orderModify.CourierService.IsValid() {
		return nil, ErrInvalidCourierService
	}

	order, err := e.repository.Create(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("register consignment: %w", err)
	}

	return order, nil
}

func (e *Events) AppendCourierEvent(ctx context.Context, fulfillmentID string, event entities.OrderEvent) error {
	if !isPresent(&fulfillmentID) || !isValidStatus(event.Status) {
		return ErrMissingRequiredFields
	}

	if event.HappenedAt.IsZero() {
		event.HappenedAt = time.Now().UTC()
	}

	err := e.repository.AppendEvent(ctx, fulfillmentID, event)
	if err != nil {
		return fmt.Errorf("append courier event: %w", err)
	}

	return nil
}
