package deliverystatus

import (
	"context"

	"backoffice/internal/entities"
	"backoffice/pkg/logger"
)

// NopForwarder acknowledges every event without calling anything. It stands
// in for the storefront event integration until that contract is defined.
type NopForwarder struct {
	log logger.Logger
}

func NewNopForwarder(log logger.Logger) *NopForwarder {
	return &NopForwarder{
		log: log.With(),
	}
}

func (f *NopForwarder) Forward(_ context.Context, event entities.FulfillmentEvent) error {
	f.log.With(
		logger.NewField("event", event.Event),
		logger.NewField("fulfillment_id", event.FulfillmentID),
		logger.NewField("order_id", event.OrderID),
	).Info("fulfillment event acknowledged without forwarding")

	return nil
}
