//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliverystatus_test
package deliverystatus

import (
	"context"

	"backoffice/internal/entities"
)

// Forwarder pushes a fulfillment status change to the storefront platform.
// The real integration contract is still undefined upstream; until it is,
// the service runs with NopForwarder and the endpoint is an acknowledgment
// only.
type Forwarder interface {
	Forward(ctx context.Context, event entities.FulfillmentEvent) error
}
