//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_location_create_post_test
package order_location_create_post

import (
	"context"

	"backoffice/internal/entities"
	"backoffice/internal/service/orderlocation"
	"backoffice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Upsert(ctx context.Context, input orderlocation.Classification) (*entities.OrderLocation, error)
}
