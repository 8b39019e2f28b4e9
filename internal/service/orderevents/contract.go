//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderevents_test
package orderevents

import (
	"context"

	"backoffice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderModify entities.DeliveryOrderModify) (*entities.DeliveryOrder, error)
	AppendEvent(ctx context.Context, fulfillmentID string, event entities.OrderEvent) error
}
