//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_location_get_test
package order_location_get

import (
	"context"

	"backoffice/internal/entities"
	"backoffice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetByOrderID(ctx context.Context, orderID string) (*entities.OrderLocation, error)
}
