//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assign_delivery_man_post_test
package assign_delivery_man_post

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
	AssignDeliveryMan(ctx context.Context, deliveryMan entities.DeliveryMan) error
}
