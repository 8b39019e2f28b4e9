//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=update_delivery_status_post_test
package update_delivery_status_post

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
	UpdateDeliveryStatus(ctx context.Context, event entities.FulfillmentEvent) error
}
