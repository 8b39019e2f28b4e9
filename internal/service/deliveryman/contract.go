//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveryman_test
package deliveryman

import (
	"context"

	"backoffice/internal/entities"
)

type Repository interface {
	Upsert(ctx context.Context, deliveryMan entities.DeliveryMan) error
}
