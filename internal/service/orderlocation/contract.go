//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderlocation_test
package orderlocation

import (
	"context"

	"backoffice/internal/entities"
)

type Repository interface {
	Upsert(ctx context.Context, location entities.OrderLocation) (*entities.OrderLocation, error)
	GetByOrderID(ctx context.Context, orderID string) (*entities.OrderLocation, error)
}
