package deliverystatus

import (
	"context"
	"fmt"

	"backoffice/internal/entities"
)

type Status struct {
	forwarder Forwarder
}

func New(forwarder Forwarder) *Status {
	return &Status{
		forwarder: forwarder,
	}
}

// UpdateDeliveryStatus hands the fulfillment event to the configured
// forwarder. It performs no persistence of its own; the delivery-order event
// log is maintained by the courier-events worker, not by this endpoint.
func (s *Status) UpdateDeliveryStatus(ctx context.Context, event entities.FulfillmentEvent) error {
	err := s.forwarder.Forward(ctx, event)
	if err != nil {
		return fmt.Errorf("forward fulfillment event: %w", err)
	}

	return nil
}
