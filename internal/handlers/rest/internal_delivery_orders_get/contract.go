//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=internal_delivery_orders_get_test
package internal_delivery_orders_get

import (
	"context"

	"backoffice/internal/entities"
	"backoffice/internal/service/listing"
	"backoffice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListInternalDeliveryOrders(ctx context.Context, query listing.PageQuery) (*entities.OrderPage, error)
}
