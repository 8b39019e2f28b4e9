//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=listing_test
package listing

import (
	"context"

	"backoffice/internal/entities"
)

type OrdersRepository interface {
	ListInternalPage(ctx context.Context, storeID int64, search string, offset, limit uint64) ([]entities.InternalOrderSummary, error)
	CountInternal(ctx context.Context, storeID int64, search string) (int64, error)
}

type LocationsRepository interface {
	GetLocalTypesByOrderIDs(ctx context.Context, orderIDs []string) (map[string]int64, error)
}

type DeliveryMenRepository interface {
	GetByOrderIDs(ctx context.Context, orderIDs []string) (map[string]entities.DeliveryManContact, error)
}
